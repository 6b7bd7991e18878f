package txs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

func newTestSignedTransaction(t *testing.T, version codec.Version) *SignedTransaction {
	unsignedTransaction := newTestUnsignedTransaction(t, version,
		[]*TransferableOutput{
			newTestOutput(testAssetA, 8),
			newTestOutput(testAssetB, 2),
		},
		[]*TransferableInput{
			newTestInput(9, 1, testAssetA, 10, 2),
			newTestInput(4, 0, testAssetB, 2, 1),
		},
	)

	signedTransaction, err := unsignedTransaction.Sign(&testKeychain{keys: map[byte]bool{1: true, 2: true}})
	require.NoError(t, err)

	return signedTransaction
}

func TestSignedTransaction_RoundTrip(t *testing.T) {
	testCodec := newTestCodec()

	for _, version := range []codec.Version{codec.Version0, codec.Version1} {
		signedTransaction := newTestSignedTransaction(t, version)

		marshaled := signedTransaction.Bytes()
		unsignedBytes := signedTransaction.UnsignedTransaction().Bytes()
		assert.Equal(t, unsignedBytes, marshaled[:len(unsignedBytes)])

		// credential count followed by the first credential type tag of the codec version
		credentials := marshalutil.New(marshaled[len(unsignedBytes):])
		count, err := credentials.ReadUint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(2), count)
		typeID, err := credentials.ReadUint32()
		require.NoError(t, err)
		assert.Equal(t, (&testCredential{}).TypeIDs().For(version), typeID)

		restored, err := SignedTransactionFromBytes(marshaled, testCodec)
		require.NoError(t, err)
		assert.Equal(t, marshaled, restored.Bytes())
		assert.Equal(t, signedTransaction.ID(), restored.ID())

		// every credential stays aligned with the input it authorizes
		restoredInputs := restored.UnsignedTransaction().Transaction().Inputs()
		for i, credential := range restored.Credentials() {
			assert.Equal(t, restoredInputs[i].Input().(*testInput).key, credential.Signatures()[0][testSignatureLength-1])
		}

		fromCB58, err := SignedTransactionFromCB58(signedTransaction.CB58(), testCodec)
		require.NoError(t, err)
		assert.Equal(t, marshaled, fromCB58.Bytes())
	}
}

func TestSignedTransaction_Checksum(t *testing.T) {
	testCodec := newTestCodec()
	signedTransaction := newTestSignedTransaction(t, codec.Version1)

	decoded, err := base58.Decode(signedTransaction.CB58())
	require.NoError(t, err)
	for i := len(decoded) - cb58.ChecksumLength; i < len(decoded); i++ {
		tampered := append([]byte{}, decoded...)
		tampered[i] ^= 0x01

		_, err = SignedTransactionFromCB58(base58.Encode(tampered), testCodec)
		assert.True(t, errors.Is(err, codecerrors.ErrChecksum))
	}

	_, err = SignedTransactionFromCB58("0OIl", testCodec)
	assert.True(t, errors.Is(err, cerrors.ErrBase58DecodeFailed))
}

func TestSignedTransaction_CredentialCount(t *testing.T) {
	signedTransaction := newTestSignedTransaction(t, codec.Version0)

	_, err := NewSignedTransaction(signedTransaction.UnsignedTransaction(), signedTransaction.Credentials()[:1])
	assert.True(t, errors.Is(err, ErrCredentialCountMismatch))

	withoutCredentials := marshalutil.New().
		WriteBytes(signedTransaction.UnsignedTransaction().Bytes()).
		WriteUint32(0).
		Bytes()
	_, err = SignedTransactionFromBytes(withoutCredentials, newTestCodec())
	assert.True(t, errors.Is(err, ErrCredentialCountMismatch))
	assert.True(t, errors.Is(err, cerrors.ErrParseBytesFailed))

	hugeCount := marshalutil.New().
		WriteBytes(signedTransaction.UnsignedTransaction().Bytes()).
		WriteUint32(0xffffffff).
		Bytes()
	_, err = SignedTransactionFromBytes(hugeCount, newTestCodec())
	assert.True(t, errors.Is(err, codecerrors.ErrLength))

	_, err = SignedTransactionFromBytes(append(signedTransaction.Bytes(), 0), newTestCodec())
	assert.True(t, errors.Is(err, codecerrors.ErrLength))
}

func TestCodec_DuplicateRegistration(t *testing.T) {
	testCodec := newTestCodec()

	assert.True(t, errors.Is(testCodec.RegisterOutput(func() Output { return new(testOutput) }), codec.ErrDuplicateType))
	assert.True(t, errors.Is(testCodec.RegisterInput(func() Input { return new(testInput) }), codec.ErrDuplicateType))
	assert.True(t, errors.Is(testCodec.RegisterCredential(func() Credential { return new(testCredential) }), codec.ErrDuplicateType))
	assert.True(t, errors.Is(testCodec.RegisterTransaction(testTransactionType, parseTestTransaction), codec.ErrDuplicateType))
	assert.Error(t, testCodec.RegisterTransaction(TransactionType(1), nil))
}

func TestCodec_MissingFactory(t *testing.T) {
	testCodec := NewCodec()

	assert.NotPanics(t, func() {
		assert.True(t, errors.Is(testCodec.RegisterInput(nil), codec.ErrMissingFactory))
		assert.True(t, errors.Is(testCodec.RegisterOutput(nil), codec.ErrMissingFactory))
		assert.True(t, errors.Is(testCodec.RegisterCredential(nil), codec.ErrMissingFactory))
	})
}
