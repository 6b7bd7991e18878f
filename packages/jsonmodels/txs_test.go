package jsonmodels

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/avm"
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/secp256k1fx"
	"github.com/iotaledger/txcodec/packages/txs"
)

var testContext = Context{ChainAlias: "X", HRP: "avax"}

func newTestExportTx(t *testing.T) (*txs.UnsignedTransaction, *secp256k1fx.Keychain) {
	keychain := secp256k1fx.NewKeychain(nil)
	privateKey, _ := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{1}, btcec.PrivKeyBytesLen))
	owner := keychain.Add(privateKey)

	outputOwners, err := secp256k1fx.NewOutputOwners(0, 1, owner)
	require.NoError(t, err)

	transferInput, err := secp256k1fx.NewTransferInput(1000, secp256k1fx.SigIndex{Source: owner})
	require.NoError(t, err)

	baseTransaction, err := txs.NewBaseTransaction(codec.Version0, 1, ids.ID{0x10},
		[]*txs.TransferableOutput{
			txs.NewTransferableOutput(ids.ID{0xaa}, secp256k1fx.NewTransferOutput(400, outputOwners)),
			txs.NewTransferableOutput(ids.ID{0xbb}, secp256k1fx.NewMintOutput(outputOwners)),
		},
		[]*txs.TransferableInput{
			txs.NewTransferableInput(ids.ID{1}, 0, ids.ID{0xaa}, transferInput),
		},
		[]byte{0xca, 0xfe},
	)
	require.NoError(t, err)

	exportTx := avm.NewExportTx(baseTransaction, ids.ID{0x20}, []*txs.TransferableOutput{
		txs.NewTransferableOutput(ids.ID{0xaa}, secp256k1fx.NewTransferOutput(500, outputOwners)),
	})

	return txs.NewUnsignedTransaction(exportTx), keychain
}

func TestTransaction_RoundTrip(t *testing.T) {
	unsignedTransaction, _ := newTestExportTx(t)

	model, err := NewTransaction(unsignedTransaction, testContext)
	require.NoError(t, err)
	assert.Equal(t, "ExportTx", model.Type)
	assert.Equal(t, "cafe", model.Memo)
	assert.Equal(t, "1000", model.Inputs[0].Amount)
	require.Len(t, model.ExportedOutputs, 1)

	marshaled, err := json.Marshal(model)
	require.NoError(t, err)
	assert.Contains(t, string(marshaled), `"amount":"400"`)
	assert.Contains(t, string(marshaled), `"type":"MintOutput"`)

	restoredModel := &Transaction{}
	require.NoError(t, json.Unmarshal(marshaled, restoredModel))

	restored, err := restoredModel.ToUnsignedTransaction()
	require.NoError(t, err)
	assert.Equal(t, unsignedTransaction.Bytes(), restored.Bytes())
}

func TestSignedTransaction(t *testing.T) {
	unsignedTransaction, keychain := newTestExportTx(t)

	signedTransaction, err := unsignedTransaction.Sign(keychain)
	require.NoError(t, err)

	model, err := NewSignedTransaction(signedTransaction, testContext)
	require.NoError(t, err)
	assert.Equal(t, signedTransaction.ID().CB58(), model.ID)
	require.Len(t, model.Credentials, 1)
	assert.Equal(t, "Credential", model.Credentials[0].Type)
	require.Len(t, model.Credentials[0].Signatures, 1)
	assert.Len(t, model.Credentials[0].Signatures[0], 2*secp256k1fx.SignatureLength)

	for _, output := range model.Unsigned.Outputs {
		outputOwners := &OutputOwners{}
		require.NoError(t, json.Unmarshal(output.Output, outputOwners))
		require.Len(t, outputOwners.Addresses, 1)
		assert.True(t, strings.HasPrefix(outputOwners.Addresses[0], "X-avax1"))
	}
}

func TestTransaction_Invalid(t *testing.T) {
	unsignedTransaction, _ := newTestExportTx(t)

	model, err := NewTransaction(unsignedTransaction, testContext)
	require.NoError(t, err)

	model.Type = "CreateAssetTx"
	_, err = model.ToUnsignedTransaction()
	assert.Error(t, err)

	model.Type = "ExportTx"
	model.CodecVersion = 5
	_, err = model.ToUnsignedTransaction()
	assert.Error(t, err)

	model.CodecVersion = 0
	model.Inputs[0].Amount = "18446744073709551616"
	_, err = model.ToUnsignedTransaction()
	assert.Error(t, err)

	model.Inputs[0].Amount = "1000"
	model.Inputs[0].SigIndices = []uint32{0, 0}
	_, err = model.ToUnsignedTransaction()
	assert.True(t, errors.Is(err, secp256k1fx.ErrDuplicateSigIndex))
}
