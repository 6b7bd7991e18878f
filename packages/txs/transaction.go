package txs

import (
	"strconv"

	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// region TransactionType //////////////////////////////////////////////////////////////////////////////////////////////

// TransactionType is the numeric tag that identifies a concrete transaction kind on the wire.
type TransactionType uint32

// Bytes returns a marshaled version of the TransactionType.
func (t TransactionType) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint32Size).WriteUint32(uint32(t)).Bytes()
}

// String returns a human-readable version of the TransactionType.
func (t TransactionType) String() string {
	return "TransactionType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Transaction //////////////////////////////////////////////////////////////////////////////////////////////////

// Transaction is the capability set every concrete transaction kind has to provide. Kinds extend a BaseTransaction
// with their own fields and have to be registered in the Codec of their chain to be parseable.
type Transaction interface {
	// Type returns the tag that is written in front of the body of the Transaction.
	Type() TransactionType

	// Base returns the BaseTransaction that the kind extends.
	Base() *BaseTransaction

	// Bytes returns the marshaled body of the Transaction (the BaseTransaction followed by the fields of the kind).
	Bytes() []byte

	// Inputs returns every input of the Transaction that requires a Credential, in the order of its Credentials.
	Inputs() TransferableInputs

	// Outputs returns every output that is created by the Transaction.
	Outputs() TransferableOutputs

	// String returns a human-readable version of the Transaction.
	String() string
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
