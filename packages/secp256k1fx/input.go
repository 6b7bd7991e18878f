package secp256k1fx

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// region SigIndex /////////////////////////////////////////////////////////////////////////////////////////////////////

// SigIndex points to the address in the OutputOwners of the spent output whose signature is provided. Source is the
// address itself; it is not marshaled and only used by the Keychain to pick the signing key.
type SigIndex struct {
	Index  uint32
	Source ids.ShortID
}

// String returns a human-readable version of the SigIndex.
func (s SigIndex) String() string {
	return stringify.Struct("SigIndex",
		stringify.StructField("index", s.Index),
		stringify.StructField("source", s.Source),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransferInput ////////////////////////////////////////////////////////////////////////////////////////////////

// TransferInput spends the amount of a TransferOutput. Its signature indices are kept in ascending order, which is
// the order of the signatures in the Credential that authorizes it.
type TransferInput struct {
	amount     uint64
	sigIndices []SigIndex
}

// NewTransferInput creates a new TransferInput. The signature indices are sorted and need to be unique.
func NewTransferInput(amount uint64, sigIndices ...SigIndex) (*TransferInput, error) {
	sortedSigIndices := append([]SigIndex{}, sigIndices...)
	sort.Slice(sortedSigIndices, func(i, j int) bool {
		return sortedSigIndices[i].Index < sortedSigIndices[j].Index
	})
	for i := 1; i < len(sortedSigIndices); i++ {
		if sortedSigIndices[i-1].Index == sortedSigIndices[i].Index {
			return nil, errors.Errorf("signature index %d is used more than once: %w", sortedSigIndices[i].Index, ErrDuplicateSigIndex)
		}
	}

	return &TransferInput{
		amount:     amount,
		sigIndices: sortedSigIndices,
	}, nil
}

// TypeIDs returns the type tags of the TransferInput.
func (t *TransferInput) TypeIDs() codec.TypeIDs {
	return TransferInputTypeIDs
}

// Amount returns the amount of the consumed TransferOutput.
func (t *TransferInput) Amount() uint64 {
	return t.amount
}

// SigIndices returns a copy of the signature indices of the TransferInput.
func (t *TransferInput) SigIndices() []SigIndex {
	return append([]SigIndex{}, t.sigIndices...)
}

// NewCredential packages the signatures (one per signature index) into a Credential.
func (t *TransferInput) NewCredential(signatures [][]byte) (txs.Credential, error) {
	if len(signatures) != len(t.sigIndices) {
		return nil, errors.Errorf("%d signatures for %d signature indices: %w", len(signatures), len(t.sigIndices), ErrSignatureCountMismatch)
	}

	return NewCredential(signatures...)
}

// FromMarshalUtil fills the TransferInput with the values read from the MarshalUtil.
func (t *TransferInput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if t.amount, err = marshalUtil.ReadUint64(); err != nil {
		return errors.Errorf("failed to parse amount (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	sigIndicesCount, err := marshalUtil.ReadUint32()
	if err != nil {
		return errors.Errorf("failed to parse signature indices count (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if int64(sigIndicesCount)*marshalutil.Uint32Size > int64(marshalUtil.RemainingBytes()) {
		return errors.Errorf("amount of signature indices (%d) exceeds remaining bytes (%d): %w", sigIndicesCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
	}

	t.sigIndices = make([]SigIndex, sigIndicesCount)
	for i := range t.sigIndices {
		if t.sigIndices[i].Index, err = marshalUtil.ReadUint32(); err != nil {
			return errors.Errorf("failed to parse signature index %d (%v): %w", i, err, cerrors.ErrParseBytesFailed)
		}
		if i > 0 && t.sigIndices[i-1].Index >= t.sigIndices[i].Index {
			return errors.Mark(errors.Errorf("signature index %d: %w", i, txs.ErrNonCanonicalOrder), cerrors.ErrParseBytesFailed)
		}
	}

	return nil
}

// Bytes returns a marshaled version of the TransferInput.
func (t *TransferInput) Bytes() []byte {
	marshalUtil := marshalutil.New(marshalutil.Uint64Size + marshalutil.Uint32Size*(1+len(t.sigIndices))).
		WriteUint64(t.amount).
		WriteUint32(uint32(len(t.sigIndices)))
	for _, sigIndex := range t.sigIndices {
		marshalUtil.WriteUint32(sigIndex.Index)
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the TransferInput.
func (t *TransferInput) String() string {
	sigIndices := stringify.StructBuilder("SigIndices")
	for i, sigIndex := range t.sigIndices {
		sigIndices.AddField(stringify.StructField(strconv.Itoa(i), sigIndex))
	}

	return stringify.Struct("TransferInput",
		stringify.StructField("amount", t.amount),
		stringify.StructField("sigIndices", sigIndices),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Input = &TransferInput{}

var _ txs.Amounter = &TransferInput{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
