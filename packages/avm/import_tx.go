package avm

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// ImportTx consumes outputs that another chain exported to this chain.
type ImportTx struct {
	*txs.BaseTransaction

	sourceChain    ids.ID
	importedInputs txs.TransferableInputs
}

// NewImportTx creates a new ImportTx. The imported inputs are brought into canonical order.
func NewImportTx(baseTransaction *txs.BaseTransaction, sourceChain ids.ID, importedInputs []*txs.TransferableInput) *ImportTx {
	return &ImportTx{
		BaseTransaction: baseTransaction,
		sourceChain:     sourceChain,
		importedInputs:  txs.NewTransferableInputs(baseTransaction.CodecVersion(), importedInputs...),
	}
}

func parseImportTx(marshalUtil *marshalutil.MarshalUtil, c *txs.Codec, version codec.Version) (txs.Transaction, error) {
	baseTransaction, err := txs.BaseTransactionFromMarshalUtil(marshalUtil, c, version)
	if err != nil {
		return nil, err
	}

	importTx := &ImportTx{BaseTransaction: baseTransaction}
	if importTx.sourceChain, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		return nil, errors.Errorf("failed to parse source chain: %w", err)
	}
	if importTx.importedInputs, err = txs.TransferableInputsFromMarshalUtil(marshalUtil, c, version); err != nil {
		return nil, errors.Errorf("failed to parse imported inputs: %w", err)
	}

	return importTx, nil
}

// Type returns the type tag of the ImportTx.
func (i *ImportTx) Type() txs.TransactionType {
	return ImportTxType
}

// Base returns the BaseTransaction of the ImportTx.
func (i *ImportTx) Base() *txs.BaseTransaction {
	return i.BaseTransaction
}

// SourceChain returns the chain that the inputs are imported from.
func (i *ImportTx) SourceChain() ids.ID {
	return i.sourceChain
}

// ImportedInputs returns the canonically ordered inputs that are imported from the source chain.
func (i *ImportTx) ImportedInputs() txs.TransferableInputs {
	return append(txs.TransferableInputs{}, i.importedInputs...)
}

// Inputs returns the inputs of the BaseTransaction followed by the imported inputs.
func (i *ImportTx) Inputs() txs.TransferableInputs {
	return append(i.BaseTransaction.Inputs(), i.importedInputs...)
}

// Bytes returns the marshaled body of the ImportTx.
func (i *ImportTx) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(i.BaseTransaction.Bytes()).
		Write(i.sourceChain).
		WriteBytes(i.importedInputs.Bytes(i.CodecVersion())).
		Bytes()
}

// CB58 returns the checksummed base58 encoding of the marshaled body of the ImportTx.
func (i *ImportTx) CB58() string {
	return cb58.Encode(i.Bytes())
}

// String returns a human-readable version of the ImportTx.
func (i *ImportTx) String() string {
	return stringify.Struct("ImportTx",
		stringify.StructField("baseTransaction", i.BaseTransaction),
		stringify.StructField("sourceChain", i.sourceChain),
		stringify.StructField("importedInputs", i.importedInputs),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Transaction = &ImportTx{}
