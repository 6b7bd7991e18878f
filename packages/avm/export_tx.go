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

// ExportTx moves outputs to another chain where they can be consumed by an import.
type ExportTx struct {
	*txs.BaseTransaction

	destinationChain ids.ID
	exportedOutputs  txs.TransferableOutputs
}

// NewExportTx creates a new ExportTx. The exported outputs are brought into canonical order.
func NewExportTx(baseTransaction *txs.BaseTransaction, destinationChain ids.ID, exportedOutputs []*txs.TransferableOutput) *ExportTx {
	return &ExportTx{
		BaseTransaction:  baseTransaction,
		destinationChain: destinationChain,
		exportedOutputs:  txs.NewTransferableOutputs(baseTransaction.CodecVersion(), exportedOutputs...),
	}
}

func parseExportTx(marshalUtil *marshalutil.MarshalUtil, c *txs.Codec, version codec.Version) (txs.Transaction, error) {
	baseTransaction, err := txs.BaseTransactionFromMarshalUtil(marshalUtil, c, version)
	if err != nil {
		return nil, err
	}

	exportTx := &ExportTx{BaseTransaction: baseTransaction}
	if exportTx.destinationChain, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		return nil, errors.Errorf("failed to parse destination chain: %w", err)
	}
	if exportTx.exportedOutputs, err = txs.TransferableOutputsFromMarshalUtil(marshalUtil, c, version); err != nil {
		return nil, errors.Errorf("failed to parse exported outputs: %w", err)
	}

	return exportTx, nil
}

// Type returns the type tag of the ExportTx.
func (e *ExportTx) Type() txs.TransactionType {
	return ExportTxType
}

// Base returns the BaseTransaction of the ExportTx.
func (e *ExportTx) Base() *txs.BaseTransaction {
	return e.BaseTransaction
}

// DestinationChain returns the chain that the outputs are exported to.
func (e *ExportTx) DestinationChain() ids.ID {
	return e.destinationChain
}

// ExportedOutputs returns the canonically ordered outputs that are exported to the destination chain.
func (e *ExportTx) ExportedOutputs() txs.TransferableOutputs {
	return append(txs.TransferableOutputs{}, e.exportedOutputs...)
}

// Outputs returns the outputs of the BaseTransaction followed by the exported outputs.
func (e *ExportTx) Outputs() txs.TransferableOutputs {
	return append(e.BaseTransaction.Outputs(), e.exportedOutputs...)
}

// Bytes returns the marshaled body of the ExportTx.
func (e *ExportTx) Bytes() []byte {
	return marshalutil.New().
		WriteBytes(e.BaseTransaction.Bytes()).
		Write(e.destinationChain).
		WriteBytes(e.exportedOutputs.Bytes(e.CodecVersion())).
		Bytes()
}

// CB58 returns the checksummed base58 encoding of the marshaled body of the ExportTx.
func (e *ExportTx) CB58() string {
	return cb58.Encode(e.Bytes())
}

// String returns a human-readable version of the ExportTx.
func (e *ExportTx) String() string {
	return stringify.Struct("ExportTx",
		stringify.StructField("baseTransaction", e.BaseTransaction),
		stringify.StructField("destinationChain", e.destinationChain),
		stringify.StructField("exportedOutputs", e.exportedOutputs),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Transaction = &ExportTx{}
