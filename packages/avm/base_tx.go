package avm

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// BaseTx is the plain transfer of assets between addresses of the chain.
type BaseTx struct {
	*txs.BaseTransaction
}

// NewBaseTx creates a new BaseTx.
func NewBaseTx(baseTransaction *txs.BaseTransaction) *BaseTx {
	return &BaseTx{
		BaseTransaction: baseTransaction,
	}
}

func parseBaseTx(marshalUtil *marshalutil.MarshalUtil, c *txs.Codec, version codec.Version) (txs.Transaction, error) {
	baseTransaction, err := txs.BaseTransactionFromMarshalUtil(marshalUtil, c, version)
	if err != nil {
		return nil, err
	}

	return NewBaseTx(baseTransaction), nil
}

// Type returns the type tag of the BaseTx.
func (b *BaseTx) Type() txs.TransactionType {
	return BaseTxType
}

// Base returns the BaseTransaction of the BaseTx.
func (b *BaseTx) Base() *txs.BaseTransaction {
	return b.BaseTransaction
}

// String returns a human-readable version of the BaseTx.
func (b *BaseTx) String() string {
	return stringify.Struct("BaseTx",
		stringify.StructField("baseTransaction", b.BaseTransaction),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Transaction = &BaseTx{}
