package txs

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// BaseTransaction contains the fields that are shared by every transaction kind: the network and chain it is
// issued on, the consumed and created outputs and an arbitrary memo.
//
// The inputs and outputs are brought into their canonical order (sorted by their serialized bytes) when the
// BaseTransaction is created, so marshaling is a read-only operation that always yields the same bytes for the same
// logical content, regardless of the order the elements were handed in.
type BaseTransaction struct {
	codecVersion codec.Version
	networkID    uint32
	blockchainID ids.ID
	outputs      TransferableOutputs
	inputs       TransferableInputs
	memo         []byte
}

// NewBaseTransaction creates a new BaseTransaction whose components are serialized with the given codec version.
func NewBaseTransaction(version codec.Version, networkID uint32, blockchainID ids.ID, outputs []*TransferableOutput, inputs []*TransferableInput, memo []byte) (baseTransaction *BaseTransaction, err error) {
	if err = version.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(memo)) > uint64(^uint32(0)) {
		return nil, errors.Errorf("memo of %d bytes does not fit the length prefix: %w", len(memo), codecerrors.ErrLength)
	}

	return &BaseTransaction{
		codecVersion: version,
		networkID:    networkID,
		blockchainID: blockchainID,
		outputs:      NewTransferableOutputs(version, outputs...),
		inputs:       NewTransferableInputs(version, inputs...),
		memo:         append([]byte{}, memo...),
	}, nil
}

// BaseTransactionFromBytes unmarshals a BaseTransaction from a sequence of bytes.
func BaseTransactionFromBytes(data []byte, c *Codec, version codec.Version) (baseTransaction *BaseTransaction, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if baseTransaction, err = BaseTransactionFromMarshalUtil(marshalUtil, c, version); err != nil {
		err = errors.Errorf("failed to parse BaseTransaction from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BaseTransactionFromMarshalUtil unmarshals a BaseTransaction using a MarshalUtil (for easier unmarshaling).
func BaseTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (baseTransaction *BaseTransaction, err error) {
	if err = version.Validate(); err != nil {
		return
	}

	baseTransaction = &BaseTransaction{codecVersion: version}
	if baseTransaction.networkID, err = marshalUtil.ReadUint32(); err != nil {
		err = errors.Errorf("failed to parse network ID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}
	if baseTransaction.blockchainID, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse blockchain ID: %w", err)
		return nil, err
	}
	if baseTransaction.outputs, err = TransferableOutputsFromMarshalUtil(marshalUtil, c, version); err != nil {
		err = errors.Errorf("failed to parse TransferableOutputs: %w", err)
		return nil, err
	}
	if baseTransaction.inputs, err = TransferableInputsFromMarshalUtil(marshalUtil, c, version); err != nil {
		err = errors.Errorf("failed to parse TransferableInputs: %w", err)
		return nil, err
	}

	memoLength, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse memo length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}
	if int64(memoLength) > int64(marshalUtil.RemainingBytes()) {
		err = errors.Errorf("memo length (%d) exceeds remaining bytes (%d): %w", memoLength, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return nil, err
	}
	if baseTransaction.memo, err = marshalUtil.ReadBytes(int(memoLength)); err != nil {
		err = errors.Errorf("failed to parse memo: %w", err)
		return nil, err
	}

	return
}

// CodecVersion returns the codec version the components of the BaseTransaction are serialized with.
func (b *BaseTransaction) CodecVersion() codec.Version {
	return b.codecVersion
}

// NetworkID returns the identifier of the network the BaseTransaction is issued on.
func (b *BaseTransaction) NetworkID() uint32 {
	return b.networkID
}

// BlockchainID returns the identifier of the chain the BaseTransaction is issued on.
func (b *BaseTransaction) BlockchainID() ids.ID {
	return b.blockchainID
}

// Inputs returns the consumed outputs in canonical order.
func (b *BaseTransaction) Inputs() TransferableInputs {
	return append(TransferableInputs{}, b.inputs...)
}

// Outputs returns the created outputs in canonical order.
func (b *BaseTransaction) Outputs() TransferableOutputs {
	return append(TransferableOutputs{}, b.outputs...)
}

// Memo returns a copy of the memo.
func (b *BaseTransaction) Memo() []byte {
	return append([]byte{}, b.memo...)
}

// Bytes returns a marshaled version of the BaseTransaction.
func (b *BaseTransaction) Bytes() []byte {
	return marshalutil.New().
		WriteUint32(b.networkID).
		Write(b.blockchainID).
		WriteBytes(b.outputs.Bytes(b.codecVersion)).
		WriteBytes(b.inputs.Bytes(b.codecVersion)).
		WriteUint32(uint32(len(b.memo))).
		WriteBytes(b.memo).
		Bytes()
}

// CB58 returns the checksummed base58 encoded version of the marshaled BaseTransaction.
func (b *BaseTransaction) CB58() string {
	return cb58.Encode(b.Bytes())
}

// String returns a human-readable version of the BaseTransaction.
func (b *BaseTransaction) String() string {
	return stringify.Struct("BaseTransaction",
		stringify.StructField("codecVersion", b.codecVersion),
		stringify.StructField("networkID", b.networkID),
		stringify.StructField("blockchainID", b.blockchainID),
		stringify.StructField("outputs", b.outputs),
		stringify.StructField("inputs", b.inputs),
		stringify.StructField("memo", b.memo),
	)
}
