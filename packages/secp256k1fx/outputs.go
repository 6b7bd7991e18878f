package secp256k1fx

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// region TransferOutput ///////////////////////////////////////////////////////////////////////////////////////////////

// TransferOutput is an Output that holds an amount of an asset which can be spent by its OutputOwners.
type TransferOutput struct {
	amount uint64
	owners *OutputOwners
}

// NewTransferOutput creates a new TransferOutput.
func NewTransferOutput(amount uint64, owners *OutputOwners) *TransferOutput {
	return &TransferOutput{
		amount: amount,
		owners: owners,
	}
}

// TypeIDs returns the type tags of the TransferOutput.
func (t *TransferOutput) TypeIDs() codec.TypeIDs {
	return TransferOutputTypeIDs
}

// Amount returns the amount of the asset that is held by the TransferOutput.
func (t *TransferOutput) Amount() uint64 {
	return t.amount
}

// Owners returns the OutputOwners that can spend the TransferOutput.
func (t *TransferOutput) Owners() *OutputOwners {
	return t.owners
}

// FromMarshalUtil fills the TransferOutput with the values read from the MarshalUtil.
func (t *TransferOutput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if t.amount, err = marshalUtil.ReadUint64(); err != nil {
		return errors.Errorf("failed to parse amount (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if t.owners, err = OutputOwnersFromMarshalUtil(marshalUtil); err != nil {
		return errors.Errorf("failed to parse OutputOwners: %w", err)
	}

	return nil
}

// Bytes returns a marshaled version of the TransferOutput.
func (t *TransferOutput) Bytes() []byte {
	return marshalutil.New().
		WriteUint64(t.amount).
		Write(t.owners).
		Bytes()
}

// String returns a human-readable version of the TransferOutput.
func (t *TransferOutput) String() string {
	return stringify.Struct("TransferOutput",
		stringify.StructField("amount", t.amount),
		stringify.StructField("owners", t.owners),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Output = &TransferOutput{}

var _ txs.Amounter = &TransferOutput{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MintOutput ///////////////////////////////////////////////////////////////////////////////////////////////////

// MintOutput grants its OutputOwners the right to mint more of an asset. It does not hold an amount.
type MintOutput struct {
	owners *OutputOwners
}

// NewMintOutput creates a new MintOutput.
func NewMintOutput(owners *OutputOwners) *MintOutput {
	return &MintOutput{
		owners: owners,
	}
}

// TypeIDs returns the type tags of the MintOutput.
func (m *MintOutput) TypeIDs() codec.TypeIDs {
	return MintOutputTypeIDs
}

// Owners returns the OutputOwners that are allowed to mint.
func (m *MintOutput) Owners() *OutputOwners {
	return m.owners
}

// FromMarshalUtil fills the MintOutput with the values read from the MarshalUtil.
func (m *MintOutput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if m.owners, err = OutputOwnersFromMarshalUtil(marshalUtil); err != nil {
		return errors.Errorf("failed to parse OutputOwners: %w", err)
	}

	return nil
}

// Bytes returns a marshaled version of the MintOutput.
func (m *MintOutput) Bytes() []byte {
	return m.owners.Bytes()
}

// String returns a human-readable version of the MintOutput.
func (m *MintOutput) String() string {
	return stringify.Struct("MintOutput",
		stringify.StructField("owners", m.owners),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Output = &MintOutput{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
