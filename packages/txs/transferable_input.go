package txs

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// region TransferableInput ////////////////////////////////////////////////////////////////////////////////////////////

// TransferableInput references a previously created output (by transaction ID and output index) together with the
// asset it holds and the Input that authorizes its consumption.
type TransferableInput struct {
	txID        ids.ID
	outputIndex uint32
	assetID     ids.ID
	input       Input
}

// NewTransferableInput creates a new TransferableInput from the given details.
func NewTransferableInput(txID ids.ID, outputIndex uint32, assetID ids.ID, input Input) *TransferableInput {
	return &TransferableInput{
		txID:        txID,
		outputIndex: outputIndex,
		assetID:     assetID,
		input:       input,
	}
}

// TransferableInputFromMarshalUtil unmarshals a TransferableInput using a MarshalUtil (for easier unmarshaling).
func TransferableInputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (transferableInput *TransferableInput, err error) {
	transferableInput = &TransferableInput{}
	if transferableInput.txID, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse transaction ID: %w", err)
		return
	}
	if transferableInput.outputIndex, err = marshalUtil.ReadUint32(); err != nil {
		err = errors.Errorf("failed to parse output index (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if transferableInput.assetID, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse asset ID: %w", err)
		return
	}
	if transferableInput.input, err = c.InputFromMarshalUtil(marshalUtil, version); err != nil {
		err = errors.Errorf("failed to parse Input: %w", err)
		return
	}

	return
}

// TxID returns the identifier of the transaction that created the consumed output.
func (t *TransferableInput) TxID() ids.ID {
	return t.txID
}

// OutputIndex returns the index of the consumed output in the transaction that created it.
func (t *TransferableInput) OutputIndex() uint32 {
	return t.outputIndex
}

// AssetID returns the identifier of the consumed asset.
func (t *TransferableInput) AssetID() ids.ID {
	return t.assetID
}

// Input returns the spend authorization.
func (t *TransferableInput) Input() Input {
	return t.input
}

// Amount returns the consumed amount. The second return value is false if the Input is not amount-bearing.
func (t *TransferableInput) Amount() (amount uint64, ok bool) {
	amounter, ok := t.input.(Amounter)
	if !ok {
		return 0, false
	}

	return amounter.Amount(), true
}

// Bytes returns a marshaled version of the TransferableInput in the given codec version.
func (t *TransferableInput) Bytes(version codec.Version) []byte {
	return marshalutil.New().
		Write(t.txID).
		WriteUint32(t.outputIndex).
		Write(t.assetID).
		WriteUint32(t.input.TypeIDs().For(version)).
		Write(t.input).
		Bytes()
}

// String returns a human-readable version of the TransferableInput.
func (t *TransferableInput) String() string {
	return stringify.Struct("TransferableInput",
		stringify.StructField("txID", t.txID),
		stringify.StructField("outputIndex", t.outputIndex),
		stringify.StructField("assetID", t.assetID),
		stringify.StructField("input", t.input),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransferableInputs ///////////////////////////////////////////////////////////////////////////////////////////

// TransferableInputs represents a collection of TransferableInputs in canonical order.
type TransferableInputs []*TransferableInput

// NewTransferableInputs returns a copy of the given TransferableInputs sorted by their serialized form in the given
// codec version.
func NewTransferableInputs(version codec.Version, inputs ...*TransferableInput) TransferableInputs {
	sortedInputs := make([]struct {
		input           *TransferableInput
		inputSerialized []byte
	}, len(inputs))

	for i, input := range inputs {
		sortedInputs[i].input = input
		sortedInputs[i].inputSerialized = input.Bytes(version)
	}

	sort.SliceStable(sortedInputs, func(i, j int) bool {
		return bytes.Compare(sortedInputs[i].inputSerialized, sortedInputs[j].inputSerialized) < 0
	})

	result := make(TransferableInputs, len(sortedInputs))
	for i, sortedInput := range sortedInputs {
		result[i] = sortedInput.input
	}

	return result
}

// TransferableInputsFromMarshalUtil unmarshals a collection of TransferableInputs using a MarshalUtil. It fails if
// the parsed TransferableInputs are not in canonical order.
func TransferableInputsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (inputs TransferableInputs, err error) {
	inputsCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse inputs count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if int64(inputsCount) > int64(marshalUtil.RemainingBytes()) {
		err = errors.Errorf("amount of Inputs (%d) exceeds remaining bytes (%d): %w", inputsCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return
	}

	var previousBytes []byte
	inputs = make(TransferableInputs, inputsCount)
	for i := uint32(0); i < inputsCount; i++ {
		readStartOffset := marshalUtil.ReadOffset()
		if inputs[i], err = TransferableInputFromMarshalUtil(marshalUtil, c, version); err != nil {
			err = errors.Errorf("failed to parse TransferableInput %d: %w", i, err)
			return nil, err
		}

		currentBytes := marshalUtil.Bytes()[readStartOffset:marshalUtil.ReadOffset()]
		if previousBytes != nil && bytes.Compare(previousBytes, currentBytes) > 0 {
			err = errors.Mark(errors.Errorf("TransferableInput %d: %w", i, ErrNonCanonicalOrder), cerrors.ErrParseBytesFailed)
			return nil, err
		}
		previousBytes = currentBytes
	}

	return
}

// Bytes returns a marshaled version of the TransferableInputs in the given codec version.
func (t TransferableInputs) Bytes(version codec.Version) []byte {
	marshalUtil := marshalutil.New().WriteUint32(uint32(len(t)))
	for _, input := range t {
		marshalUtil.WriteBytes(input.Bytes(version))
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the TransferableInputs.
func (t TransferableInputs) String() string {
	structBuilder := stringify.StructBuilder("TransferableInputs")
	for i, input := range t {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(i), input))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
