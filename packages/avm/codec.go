// Package avm contains the transaction kinds of the asset exchange chain and the Codec that is able to parse them.
package avm

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/secp256k1fx"
	"github.com/iotaledger/txcodec/packages/txs"
)

const (
	// BaseTxType is the type tag of the BaseTx.
	BaseTxType txs.TransactionType = 0

	// ImportTxType is the type tag of the ImportTx.
	ImportTxType txs.TransactionType = 3

	// ExportTxType is the type tag of the ExportTx.
	ExportTxType txs.TransactionType = 4
)

// NewCodec returns a Codec that knows the secp256k1 feature extension and the transaction kinds of the chain.
func NewCodec() (c *txs.Codec, err error) {
	c = txs.NewCodec()
	if err = secp256k1fx.Register(c); err != nil {
		return nil, errors.Errorf("failed to register secp256k1fx: %w", err)
	}
	if err = c.RegisterTransaction(BaseTxType, parseBaseTx); err != nil {
		return nil, errors.Errorf("failed to register BaseTx: %w", err)
	}
	if err = c.RegisterTransaction(ImportTxType, parseImportTx); err != nil {
		return nil, errors.Errorf("failed to register ImportTx: %w", err)
	}
	if err = c.RegisterTransaction(ExportTxType, parseExportTx); err != nil {
		return nil, errors.Errorf("failed to register ExportTx: %w", err)
	}

	return c, nil
}

// ParseUnsignedTransaction parses an UnsignedTransaction of the chain.
func ParseUnsignedTransaction(data []byte) (*txs.UnsignedTransaction, error) {
	c, err := NewCodec()
	if err != nil {
		return nil, err
	}

	return txs.UnsignedTransactionFromBytes(data, c)
}

// ParseSignedTransaction parses a SignedTransaction of the chain.
func ParseSignedTransaction(data []byte) (*txs.SignedTransaction, error) {
	c, err := NewCodec()
	if err != nil {
		return nil, err
	}

	return txs.SignedTransactionFromBytes(data, c)
}

// ParseSignedTransactionCB58 parses a SignedTransaction of the chain from its checksummed base58 form.
func ParseSignedTransactionCB58(text string) (*txs.SignedTransaction, error) {
	c, err := NewCodec()
	if err != nil {
		return nil, err
	}

	return txs.SignedTransactionFromCB58(text, c)
}
