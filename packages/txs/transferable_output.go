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

// region TransferableOutput ///////////////////////////////////////////////////////////////////////////////////////////

// TransferableOutput binds an Output to the asset it holds.
type TransferableOutput struct {
	assetID ids.ID
	output  Output
}

// NewTransferableOutput creates a new TransferableOutput from the given details.
func NewTransferableOutput(assetID ids.ID, output Output) *TransferableOutput {
	return &TransferableOutput{
		assetID: assetID,
		output:  output,
	}
}

// TransferableOutputFromMarshalUtil unmarshals a TransferableOutput using a MarshalUtil (for easier unmarshaling).
func TransferableOutputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (transferableOutput *TransferableOutput, err error) {
	transferableOutput = &TransferableOutput{}
	if transferableOutput.assetID, err = ids.IDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse asset ID: %w", err)
		return
	}
	if transferableOutput.output, err = c.OutputFromMarshalUtil(marshalUtil, version); err != nil {
		err = errors.Errorf("failed to parse Output: %w", err)
		return
	}

	return
}

// AssetID returns the identifier of the asset that is held by the Output.
func (t *TransferableOutput) AssetID() ids.ID {
	return t.assetID
}

// Output returns the value and ownership descriptor.
func (t *TransferableOutput) Output() Output {
	return t.output
}

// Amount returns the amount held by the Output. The second return value is false if the Output is not amount-bearing.
func (t *TransferableOutput) Amount() (amount uint64, ok bool) {
	amounter, ok := t.output.(Amounter)
	if !ok {
		return 0, false
	}

	return amounter.Amount(), true
}

// Bytes returns a marshaled version of the TransferableOutput in the given codec version.
func (t *TransferableOutput) Bytes(version codec.Version) []byte {
	return marshalutil.New().
		Write(t.assetID).
		WriteUint32(t.output.TypeIDs().For(version)).
		Write(t.output).
		Bytes()
}

// String returns a human-readable version of the TransferableOutput.
func (t *TransferableOutput) String() string {
	return stringify.Struct("TransferableOutput",
		stringify.StructField("assetID", t.assetID),
		stringify.StructField("output", t.output),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransferableOutputs //////////////////////////////////////////////////////////////////////////////////////////

// TransferableOutputs represents a collection of TransferableOutputs in canonical order.
type TransferableOutputs []*TransferableOutput

// NewTransferableOutputs returns a copy of the given TransferableOutputs sorted by their serialized form in the given
// codec version.
func NewTransferableOutputs(version codec.Version, outputs ...*TransferableOutput) TransferableOutputs {
	sortedOutputs := make([]struct {
		output           *TransferableOutput
		outputSerialized []byte
	}, len(outputs))

	// store marshaled version so we don't need to marshal a second time during sort
	for i, output := range outputs {
		sortedOutputs[i].output = output
		sortedOutputs[i].outputSerialized = output.Bytes(version)
	}

	sort.SliceStable(sortedOutputs, func(i, j int) bool {
		return bytes.Compare(sortedOutputs[i].outputSerialized, sortedOutputs[j].outputSerialized) < 0
	})

	result := make(TransferableOutputs, len(sortedOutputs))
	for i, sortedOutput := range sortedOutputs {
		result[i] = sortedOutput.output
	}

	return result
}

// TransferableOutputsFromMarshalUtil unmarshals a collection of TransferableOutputs using a MarshalUtil. It fails if
// the parsed TransferableOutputs are not in canonical order.
func TransferableOutputsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (outputs TransferableOutputs, err error) {
	outputsCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse outputs count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if int64(outputsCount) > int64(marshalUtil.RemainingBytes()) {
		err = errors.Errorf("amount of Outputs (%d) exceeds remaining bytes (%d): %w", outputsCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return
	}

	var previousBytes []byte
	outputs = make(TransferableOutputs, outputsCount)
	for i := uint32(0); i < outputsCount; i++ {
		readStartOffset := marshalUtil.ReadOffset()
		if outputs[i], err = TransferableOutputFromMarshalUtil(marshalUtil, c, version); err != nil {
			err = errors.Errorf("failed to parse TransferableOutput %d: %w", i, err)
			return nil, err
		}

		currentBytes := marshalUtil.Bytes()[readStartOffset:marshalUtil.ReadOffset()]
		if previousBytes != nil && bytes.Compare(previousBytes, currentBytes) > 0 {
			err = errors.Mark(errors.Errorf("TransferableOutput %d: %w", i, ErrNonCanonicalOrder), cerrors.ErrParseBytesFailed)
			return nil, err
		}
		previousBytes = currentBytes
	}

	return
}

// Bytes returns a marshaled version of the TransferableOutputs in the given codec version.
func (t TransferableOutputs) Bytes(version codec.Version) []byte {
	marshalUtil := marshalutil.New().WriteUint32(uint32(len(t)))
	for _, output := range t {
		marshalUtil.WriteBytes(output.Bytes(version))
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the TransferableOutputs.
func (t TransferableOutputs) String() string {
	structBuilder := stringify.StructBuilder("TransferableOutputs")
	for i, output := range t {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(i), output))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
