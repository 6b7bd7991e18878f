package jsonmodels

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/address"
	"github.com/iotaledger/txcodec/packages/avm"
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/secp256k1fx"
	"github.com/iotaledger/txcodec/packages/serialization"
	"github.com/iotaledger/txcodec/packages/txs"
)

// region Context //////////////////////////////////////////////////////////////////////////////////////////////////////

// Context contains the chain specific values that are needed to render addresses.
type Context struct {
	ChainAlias string
	HRP        string
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputOwners /////////////////////////////////////////////////////////////////////////////////////////////////

// OutputOwners represents the JSON model of secp256k1fx.OutputOwners.
type OutputOwners struct {
	Locktime  string   `json:"locktime"`
	Threshold uint32   `json:"threshold"`
	Addresses []string `json:"addresses"`
}

// NewOutputOwners returns OutputOwners from the given secp256k1fx.OutputOwners.
func NewOutputOwners(outputOwners *secp256k1fx.OutputOwners, ctx Context) (*OutputOwners, error) {
	locktime, err := decimalString(outputOwners.Locktime())
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0)
	for _, shortID := range outputOwners.Addresses() {
		formattedAddress, formatErr := address.Format(ctx.ChainAlias, ctx.HRP, shortID)
		if formatErr != nil {
			return nil, formatErr
		}
		addresses = append(addresses, formattedAddress)
	}

	return &OutputOwners{
		Locktime:  locktime,
		Threshold: outputOwners.Threshold(),
		Addresses: addresses,
	}, nil
}

// ToOutputOwners converts the JSON model back into secp256k1fx.OutputOwners.
func (o *OutputOwners) ToOutputOwners() (*secp256k1fx.OutputOwners, error) {
	locktime, err := parseDecimalString(o.Locktime)
	if err != nil {
		return nil, errors.Errorf("failed to parse locktime: %w", err)
	}

	addresses := make([]ids.ShortID, len(o.Addresses))
	for i, formattedAddress := range o.Addresses {
		if _, _, addresses[i], err = address.Parse(formattedAddress); err != nil {
			return nil, errors.Errorf("failed to parse address %d: %w", i, err)
		}
	}

	return secp256k1fx.NewOutputOwners(locktime, o.Threshold, addresses...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Output ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Output represents the JSON model of a txs.TransferableOutput.
type Output struct {
	AssetID string          `json:"assetID"`
	Type    string          `json:"type"`
	Output  json.RawMessage `json:"output"`
}

// TransferOutput is the JSON model of a secp256k1fx.TransferOutput.
type TransferOutput struct {
	Amount string `json:"amount"`
	*OutputOwners
}

// MintOutput is the JSON model of a secp256k1fx.MintOutput.
type MintOutput struct {
	*OutputOwners
}

// NewOutput returns an Output from the given txs.TransferableOutput.
func NewOutput(output *txs.TransferableOutput, ctx Context) (*Output, error) {
	var model interface{}
	switch typedOutput := output.Output().(type) {
	case *secp256k1fx.TransferOutput:
		amount, err := decimalString(typedOutput.Amount())
		if err != nil {
			return nil, err
		}
		outputOwners, err := NewOutputOwners(typedOutput.Owners(), ctx)
		if err != nil {
			return nil, err
		}
		model = &TransferOutput{Amount: amount, OutputOwners: outputOwners}
	case *secp256k1fx.MintOutput:
		outputOwners, err := NewOutputOwners(typedOutput.Owners(), ctx)
		if err != nil {
			return nil, err
		}
		model = &MintOutput{OutputOwners: outputOwners}
	default:
		return nil, errors.Errorf("not supported output type: %T", typedOutput)
	}

	marshaledOutput, err := json.Marshal(model)
	if err != nil {
		return nil, errors.Errorf("failed to marshal output: %w", err)
	}

	return &Output{
		AssetID: output.AssetID().CB58(),
		Type:    typeName(output.Output()),
		Output:  marshaledOutput,
	}, nil
}

// ToTransferableOutput converts the JSON model back into a txs.TransferableOutput.
func (o *Output) ToTransferableOutput() (*txs.TransferableOutput, error) {
	assetID, err := ids.IDFromCB58(o.AssetID)
	if err != nil {
		return nil, errors.Errorf("failed to parse assetID: %w", err)
	}

	switch o.Type {
	case "TransferOutput":
		model := &TransferOutput{}
		if err = json.Unmarshal(o.Output, model); err != nil {
			return nil, errors.Errorf("failed to unmarshal TransferOutput: %w", err)
		}
		if model.OutputOwners == nil {
			return nil, errors.New("TransferOutput without owners")
		}
		amount, err := parseDecimalString(model.Amount)
		if err != nil {
			return nil, errors.Errorf("failed to parse amount: %w", err)
		}
		outputOwners, err := model.ToOutputOwners()
		if err != nil {
			return nil, err
		}

		return txs.NewTransferableOutput(assetID, secp256k1fx.NewTransferOutput(amount, outputOwners)), nil
	case "MintOutput":
		model := &MintOutput{}
		if err = json.Unmarshal(o.Output, model); err != nil {
			return nil, errors.Errorf("failed to unmarshal MintOutput: %w", err)
		}
		if model.OutputOwners == nil {
			return nil, errors.New("MintOutput without owners")
		}
		outputOwners, err := model.ToOutputOwners()
		if err != nil {
			return nil, err
		}

		return txs.NewTransferableOutput(assetID, secp256k1fx.NewMintOutput(outputOwners)), nil
	default:
		return nil, errors.Errorf("not supported output type: %s", o.Type)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Input ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Input represents the JSON model of a txs.TransferableInput.
type Input struct {
	TxID        string   `json:"txID"`
	OutputIndex uint32   `json:"outputIndex"`
	AssetID     string   `json:"assetID"`
	Type        string   `json:"type"`
	Amount      string   `json:"amount"`
	SigIndices  []uint32 `json:"sigIndices"`
}

// NewInput returns an Input from the given txs.TransferableInput.
func NewInput(input *txs.TransferableInput) (*Input, error) {
	transferInput, ok := input.Input().(*secp256k1fx.TransferInput)
	if !ok {
		return nil, errors.Errorf("not supported input type: %T", input.Input())
	}

	amount, err := decimalString(transferInput.Amount())
	if err != nil {
		return nil, err
	}

	sigIndices := make([]uint32, 0)
	for _, sigIndex := range transferInput.SigIndices() {
		sigIndices = append(sigIndices, sigIndex.Index)
	}

	return &Input{
		TxID:        input.TxID().CB58(),
		OutputIndex: input.OutputIndex(),
		AssetID:     input.AssetID().CB58(),
		Type:        typeName(transferInput),
		Amount:      amount,
		SigIndices:  sigIndices,
	}, nil
}

// ToTransferableInput converts the JSON model back into a txs.TransferableInput. The source addresses of the
// signature indices are not part of the JSON model and stay empty.
func (i *Input) ToTransferableInput() (*txs.TransferableInput, error) {
	if i.Type != "TransferInput" {
		return nil, errors.Errorf("not supported input type: %s", i.Type)
	}

	txID, err := ids.IDFromCB58(i.TxID)
	if err != nil {
		return nil, errors.Errorf("failed to parse txID: %w", err)
	}
	assetID, err := ids.IDFromCB58(i.AssetID)
	if err != nil {
		return nil, errors.Errorf("failed to parse assetID: %w", err)
	}
	amount, err := parseDecimalString(i.Amount)
	if err != nil {
		return nil, errors.Errorf("failed to parse amount: %w", err)
	}

	sigIndices := make([]secp256k1fx.SigIndex, len(i.SigIndices))
	for j, index := range i.SigIndices {
		sigIndices[j].Index = index
	}

	transferInput, err := secp256k1fx.NewTransferInput(amount, sigIndices...)
	if err != nil {
		return nil, errors.Errorf("failed to create TransferInput: %w", err)
	}

	return txs.NewTransferableInput(txID, i.OutputIndex, assetID, transferInput), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Credential ///////////////////////////////////////////////////////////////////////////////////////////////////

// Credential represents the JSON model of a txs.Credential.
type Credential struct {
	Type       string   `json:"type"`
	Signatures []string `json:"signatures"`
}

// NewCredential returns a Credential from the given txs.Credential. Signatures are hex encoded.
func NewCredential(credential txs.Credential) (*Credential, error) {
	signatures := make([]string, 0)
	for _, signature := range credential.Signatures() {
		encoded, err := serialization.Convert(signature, serialization.Buffer, serialization.Hex, 0)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, encoded.(string))
	}

	return &Credential{
		Type:       typeName(credential),
		Signatures: signatures,
	}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Transaction //////////////////////////////////////////////////////////////////////////////////////////////////

// Transaction represents the JSON model of a txs.UnsignedTransaction.
type Transaction struct {
	ID               string    `json:"id,omitempty"`
	CodecVersion     uint16    `json:"codecVersion"`
	Type             string    `json:"type"`
	NetworkID        uint32    `json:"networkID"`
	BlockchainID     string    `json:"blockchainID"`
	Outputs          []*Output `json:"outputs"`
	Inputs           []*Input  `json:"inputs"`
	Memo             string    `json:"memo"`
	SourceChain      string    `json:"sourceChain,omitempty"`
	ImportedInputs   []*Input  `json:"importedInputs,omitempty"`
	DestinationChain string    `json:"destinationChain,omitempty"`
	ExportedOutputs  []*Output `json:"exportedOutputs,omitempty"`
}

// NewTransaction returns a Transaction from the given txs.UnsignedTransaction.
func NewTransaction(unsignedTransaction *txs.UnsignedTransaction, ctx Context) (result *Transaction, err error) {
	baseTransaction := unsignedTransaction.Transaction().Base()

	memo, err := serialization.Convert(baseTransaction.Memo(), serialization.Buffer, serialization.Hex, 0)
	if err != nil {
		return nil, err
	}

	result = &Transaction{
		ID:           unsignedTransaction.ID().CB58(),
		CodecVersion: uint16(unsignedTransaction.CodecVersion()),
		Type:         typeName(unsignedTransaction.Transaction()),
		NetworkID:    baseTransaction.NetworkID(),
		BlockchainID: baseTransaction.BlockchainID().CB58(),
		Memo:         memo.(string),
	}
	if result.Outputs, err = newOutputs(baseTransaction.Outputs(), ctx); err != nil {
		return nil, err
	}
	if result.Inputs, err = newInputs(baseTransaction.Inputs()); err != nil {
		return nil, err
	}

	switch transaction := unsignedTransaction.Transaction().(type) {
	case *avm.ImportTx:
		result.SourceChain = transaction.SourceChain().CB58()
		if result.ImportedInputs, err = newInputs(transaction.ImportedInputs()); err != nil {
			return nil, err
		}
	case *avm.ExportTx:
		result.DestinationChain = transaction.DestinationChain().CB58()
		if result.ExportedOutputs, err = newOutputs(transaction.ExportedOutputs(), ctx); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ToUnsignedTransaction converts the JSON model back into a txs.UnsignedTransaction of the avm chain.
func (t *Transaction) ToUnsignedTransaction() (*txs.UnsignedTransaction, error) {
	version := codec.Version(t.CodecVersion)
	if err := version.Validate(); err != nil {
		return nil, err
	}

	blockchainID, err := ids.IDFromCB58(t.BlockchainID)
	if err != nil {
		return nil, errors.Errorf("failed to parse blockchainID: %w", err)
	}
	memo, err := serialization.ToBytes(t.Memo, serialization.Hex)
	if err != nil {
		return nil, errors.Errorf("failed to parse memo: %w", err)
	}
	outputs, err := toTransferableOutputs(t.Outputs)
	if err != nil {
		return nil, err
	}
	inputs, err := toTransferableInputs(t.Inputs)
	if err != nil {
		return nil, err
	}

	baseTransaction, err := txs.NewBaseTransaction(version, t.NetworkID, blockchainID, outputs, inputs, memo)
	if err != nil {
		return nil, err
	}

	switch t.Type {
	case "BaseTx":
		return txs.NewUnsignedTransaction(avm.NewBaseTx(baseTransaction)), nil
	case "ImportTx":
		sourceChain, err := ids.IDFromCB58(t.SourceChain)
		if err != nil {
			return nil, errors.Errorf("failed to parse sourceChain: %w", err)
		}
		importedInputs, err := toTransferableInputs(t.ImportedInputs)
		if err != nil {
			return nil, err
		}

		return txs.NewUnsignedTransaction(avm.NewImportTx(baseTransaction, sourceChain, importedInputs)), nil
	case "ExportTx":
		destinationChain, err := ids.IDFromCB58(t.DestinationChain)
		if err != nil {
			return nil, errors.Errorf("failed to parse destinationChain: %w", err)
		}
		exportedOutputs, err := toTransferableOutputs(t.ExportedOutputs)
		if err != nil {
			return nil, err
		}

		return txs.NewUnsignedTransaction(avm.NewExportTx(baseTransaction, destinationChain, exportedOutputs)), nil
	default:
		return nil, errors.Errorf("not supported transaction type: %s", t.Type)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SignedTransaction ////////////////////////////////////////////////////////////////////////////////////////////

// SignedTransaction represents the JSON model of a txs.SignedTransaction.
type SignedTransaction struct {
	ID          string        `json:"id"`
	Unsigned    *Transaction  `json:"unsignedTx"`
	Credentials []*Credential `json:"credentials"`
}

// NewSignedTransaction returns a SignedTransaction from the given txs.SignedTransaction.
func NewSignedTransaction(signedTransaction *txs.SignedTransaction, ctx Context) (*SignedTransaction, error) {
	unsigned, err := NewTransaction(signedTransaction.UnsignedTransaction(), ctx)
	if err != nil {
		return nil, err
	}

	credentials := make([]*Credential, 0)
	for _, credential := range signedTransaction.Credentials() {
		model, credentialErr := NewCredential(credential)
		if credentialErr != nil {
			return nil, credentialErr
		}
		credentials = append(credentials, model)
	}

	return &SignedTransaction{
		ID:          signedTransaction.ID().CB58(),
		Unsigned:    unsigned,
		Credentials: credentials,
	}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utils ////////////////////////////////////////////////////////////////////////////////////////////////////////

func typeName(object interface{}) string {
	switch object.(type) {
	case *secp256k1fx.TransferOutput:
		return "TransferOutput"
	case *secp256k1fx.MintOutput:
		return "MintOutput"
	case *secp256k1fx.TransferInput:
		return "TransferInput"
	case *secp256k1fx.Credential:
		return "Credential"
	case *avm.BaseTx:
		return "BaseTx"
	case *avm.ImportTx:
		return "ImportTx"
	case *avm.ExportTx:
		return "ExportTx"
	default:
		return "Unknown"
	}
}

func newOutputs(outputs txs.TransferableOutputs, ctx Context) ([]*Output, error) {
	models := make([]*Output, len(outputs))
	for i, output := range outputs {
		model, err := NewOutput(output, ctx)
		if err != nil {
			return nil, errors.Errorf("failed to convert output %d: %w", i, err)
		}
		models[i] = model
	}

	return models, nil
}

func newInputs(inputs txs.TransferableInputs) ([]*Input, error) {
	models := make([]*Input, len(inputs))
	for i, input := range inputs {
		model, err := NewInput(input)
		if err != nil {
			return nil, errors.Errorf("failed to convert input %d: %w", i, err)
		}
		models[i] = model
	}

	return models, nil
}

func toTransferableOutputs(models []*Output) ([]*txs.TransferableOutput, error) {
	outputs := make([]*txs.TransferableOutput, len(models))
	for i, model := range models {
		output, err := model.ToTransferableOutput()
		if err != nil {
			return nil, errors.Errorf("failed to convert output %d: %w", i, err)
		}
		outputs[i] = output
	}

	return outputs, nil
}

func toTransferableInputs(models []*Input) ([]*txs.TransferableInput, error) {
	inputs := make([]*txs.TransferableInput, len(models))
	for i, model := range models {
		input, err := model.ToTransferableInput()
		if err != nil {
			return nil, errors.Errorf("failed to convert input %d: %w", i, err)
		}
		inputs[i] = input
	}

	return inputs, nil
}

// decimalString renders an amount the way the interchange format expects it (a decimal string).
func decimalString(value uint64) (string, error) {
	converted, err := serialization.Convert(value, serialization.Number, serialization.DecimalString, 0)
	if err != nil {
		return "", err
	}

	return converted.(string), nil
}

// parseDecimalString parses a decimal string into an uint64 and fails for values that do not fit.
func parseDecimalString(value string) (uint64, error) {
	converted, err := serialization.Convert(value, serialization.DecimalString, serialization.Buffer, marshalutil.Uint64Size)
	if err != nil {
		return 0, err
	}

	return marshalutil.New(converted.([]byte)).ReadUint64()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
