package txs

import (
	"bytes"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
)

func newTestUnsignedTransaction(t *testing.T, version codec.Version, outputs []*TransferableOutput, inputs []*TransferableInput) *UnsignedTransaction {
	baseTransaction, err := NewBaseTransaction(version, 1, testBlockchainID(), outputs, inputs, []byte("memo"))
	require.NoError(t, err)

	return NewUnsignedTransaction(&testTransaction{BaseTransaction: baseTransaction})
}

func TestUnsignedTransaction_Accounting(t *testing.T) {
	unsignedTransaction := newTestUnsignedTransaction(t, codec.Version0,
		[]*TransferableOutput{
			newTestOutput(testAssetA, 12),
			newTestOutput(testAssetB, 3),
			NewTransferableOutput(testAssetA, &testLockOutput{locktime: 100}),
		},
		[]*TransferableInput{
			newTestInput(1, 0, testAssetA, 10, 1),
			newTestInput(2, 0, testAssetA, 5, 2),
			newTestInput(3, 0, testAssetB, 3, 3),
		},
	)

	inputTotal, err := unsignedTransaction.InputTotal(testAssetA)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), inputTotal)

	outputTotal, err := unsignedTransaction.OutputTotal(testAssetA)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), outputTotal)

	burn, err := unsignedTransaction.Burn(testAssetA)
	require.NoError(t, err)
	assert.Equal(t, inputTotal-outputTotal, burn)
	assert.Equal(t, uint64(3), burn)

	burn, err = unsignedTransaction.Burn(testAssetB)
	require.NoError(t, err)
	assert.Zero(t, burn)

	unknownAsset := ids.ID{0xcc}
	inputTotal, err = unsignedTransaction.InputTotal(unknownAsset)
	require.NoError(t, err)
	assert.Zero(t, inputTotal)
	outputTotal, err = unsignedTransaction.OutputTotal(unknownAsset)
	require.NoError(t, err)
	assert.Zero(t, outputTotal)
	burn, err = unsignedTransaction.Burn(unknownAsset)
	require.NoError(t, err)
	assert.Zero(t, burn)
}

func TestUnsignedTransaction_NegativeBurn(t *testing.T) {
	unsignedTransaction := newTestUnsignedTransaction(t, codec.Version0,
		[]*TransferableOutput{newTestOutput(testAssetA, 20)},
		[]*TransferableInput{newTestInput(1, 0, testAssetA, 10, 1)},
	)

	_, err := unsignedTransaction.Burn(testAssetA)
	assert.True(t, errors.Is(err, ErrNegativeBurn))
}

func TestUnsignedTransaction_Overflow(t *testing.T) {
	unsignedTransaction := newTestUnsignedTransaction(t, codec.Version0,
		[]*TransferableOutput{
			newTestOutput(testAssetA, math.MaxUint64),
			newTestOutput(testAssetA, 1),
		},
		[]*TransferableInput{
			newTestInput(1, 0, testAssetA, math.MaxUint64, 1),
			newTestInput(2, 0, testAssetA, 1, 2),
		},
	)

	_, err := unsignedTransaction.InputTotal(testAssetA)
	assert.True(t, errors.Is(err, ErrAmountOverflow))
	_, err = unsignedTransaction.OutputTotal(testAssetA)
	assert.True(t, errors.Is(err, ErrAmountOverflow))
	_, err = unsignedTransaction.Burn(testAssetA)
	assert.True(t, errors.Is(err, ErrAmountOverflow))
}

func TestUnsignedTransaction_Bytes(t *testing.T) {
	testCodec := newTestCodec()

	for _, version := range []codec.Version{codec.Version0, codec.Version1} {
		unsignedTransaction := newTestUnsignedTransaction(t, version,
			[]*TransferableOutput{newTestOutput(testAssetA, 7)},
			[]*TransferableInput{newTestInput(1, 0, testAssetA, 10, 1)},
		)

		marshaled := unsignedTransaction.Bytes()
		assert.Equal(t, version.Bytes(), marshaled[:2])
		assert.Equal(t, []byte{0, 0, 0, 0}, marshaled[2:6])
		assert.Equal(t, unsignedTransaction.Transaction().Bytes(), marshaled[6:])

		// the type tag of the first output follows networkID, blockchainID, output count and asset ID
		outputTypeOffset := 6 + 4 + 32 + 4 + 32
		expectedTypeID := (&testOutput{}).TypeIDs().For(version)
		assert.Equal(t, expectedTypeID, uint32(marshaled[outputTypeOffset])<<24|uint32(marshaled[outputTypeOffset+1])<<16|uint32(marshaled[outputTypeOffset+2])<<8|uint32(marshaled[outputTypeOffset+3]))

		restored, err := UnsignedTransactionFromBytes(marshaled, testCodec)
		require.NoError(t, err)
		assert.Equal(t, version, restored.CodecVersion())
		assert.Equal(t, marshaled, restored.Bytes())
		assert.Equal(t, unsignedTransaction.ID(), restored.ID())
		assert.Equal(t, testTransactionType, restored.Transaction().Type())
	}
}

func TestUnsignedTransaction_Malformed(t *testing.T) {
	testCodec := newTestCodec()
	marshaled := newTestUnsignedTransaction(t, codec.Version0, nil, nil).Bytes()

	unsupportedCodec := append([]byte{}, marshaled...)
	unsupportedCodec[1] = 2
	_, err := UnsignedTransactionFromBytes(unsupportedCodec, testCodec)
	assert.True(t, errors.Is(err, codecerrors.ErrUnsupportedCodec))

	unknownType := append([]byte{}, marshaled...)
	unknownType[5] = 7
	_, err = UnsignedTransactionFromBytes(unknownType, testCodec)
	assert.True(t, errors.Is(err, codecerrors.ErrUnknownType))

	_, err = UnsignedTransactionFromBytes(append(append([]byte{}, marshaled...), 0), testCodec)
	assert.True(t, errors.Is(err, codecerrors.ErrLength))

	_, err = UnsignedTransactionFromBytes(marshaled[:len(marshaled)-1], testCodec)
	assert.Error(t, err)

	_, err = UnsignedTransactionFromBytes(marshaled, NewCodec())
	assert.True(t, errors.Is(err, codecerrors.ErrUnknownType))
}

func TestUnsignedTransaction_Sign(t *testing.T) {
	unsignedTransaction := newTestUnsignedTransaction(t, codec.Version1,
		[]*TransferableOutput{newTestOutput(testAssetA, 10)},
		[]*TransferableInput{
			newTestInput(3, 0, testAssetA, 5, 3),
			newTestInput(1, 0, testAssetA, 5, 1),
			newTestInput(2, 0, testAssetB, 5, 2),
		},
	)
	unsignedBytes := unsignedTransaction.Bytes()
	hash := unsignedTransaction.ID()

	signedTransaction, err := unsignedTransaction.Sign(&testKeychain{keys: map[byte]bool{1: true, 2: true, 3: true}})
	require.NoError(t, err)
	assert.Equal(t, unsignedBytes, unsignedTransaction.Bytes())
	assert.Same(t, unsignedTransaction, signedTransaction.UnsignedTransaction())

	inputs := unsignedTransaction.Transaction().Inputs()
	credentials := signedTransaction.Credentials()
	require.Len(t, credentials, len(inputs))
	for i, input := range inputs {
		signatures := credentials[i].Signatures()
		require.Len(t, signatures, 1)
		assert.True(t, bytes.HasPrefix(signatures[0], hash[:testSignatureLength-1]))
		assert.Equal(t, input.Input().(*testInput).key, signatures[0][testSignatureLength-1])
	}

	_, err = unsignedTransaction.Sign(&testKeychain{keys: map[byte]bool{1: true, 3: true}})
	assert.True(t, errors.Is(err, errUnknownKey))
}

func TestUnsignedTransaction_SignWithoutInputs(t *testing.T) {
	unsignedTransaction := newTestUnsignedTransaction(t, codec.Version0, []*TransferableOutput{newTestOutput(testAssetA, 1)}, nil)

	signedTransaction, err := unsignedTransaction.Sign(&testKeychain{})
	require.NoError(t, err)
	assert.Empty(t, signedTransaction.Credentials())
	assert.Equal(t, append(unsignedTransaction.Bytes(), 0, 0, 0, 0), signedTransaction.Bytes())
}
