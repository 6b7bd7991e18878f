package txs

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// TransactionParser parses the body of a concrete transaction kind (everything after its type tag).
type TransactionParser func(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (Transaction, error)

// Codec is the catalogue of a chain: it knows the Inputs, Outputs and Credentials of the feature extensions the
// chain supports and the concrete transaction kinds it accepts. It is passed explicitly to every parsing function.
type Codec struct {
	inputs       *codec.Registry[Input]
	outputs      *codec.Registry[Output]
	credentials  *codec.Registry[Credential]
	parsers      map[TransactionType]TransactionParser
	parsersMutex sync.RWMutex
}

// NewCodec creates an empty Codec.
func NewCodec() *Codec {
	return &Codec{
		inputs:      codec.NewRegistry[Input]("input"),
		outputs:     codec.NewRegistry[Output]("output"),
		credentials: codec.NewRegistry[Credential]("credential"),
		parsers:     make(map[TransactionType]TransactionParser),
	}
}

// RegisterInput registers an Input type.
func (c *Codec) RegisterInput(factory func() Input) error {
	return codec.RegisterFactory(c.inputs, factory)
}

// RegisterOutput registers an Output type.
func (c *Codec) RegisterOutput(factory func() Output) error {
	return codec.RegisterFactory(c.outputs, factory)
}

// RegisterCredential registers a Credential type.
func (c *Codec) RegisterCredential(factory func() Credential) error {
	return codec.RegisterFactory(c.credentials, factory)
}

// RegisterTransaction registers the parser of a concrete transaction kind.
func (c *Codec) RegisterTransaction(transactionType TransactionType, parser TransactionParser) error {
	if parser == nil {
		return errors.Errorf("missing parser for %s", transactionType)
	}

	c.parsersMutex.Lock()
	defer c.parsersMutex.Unlock()

	if _, exists := c.parsers[transactionType]; exists {
		return errors.Errorf("%s: %w", transactionType, codec.ErrDuplicateType)
	}
	c.parsers[transactionType] = parser

	return nil
}

// InputFromMarshalUtil parses a type tag followed by the Input it announces.
func (c *Codec) InputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, version codec.Version) (input Input, err error) {
	typeID, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse input type (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if input, err = c.inputs.New(version, typeID); err != nil {
		return
	}
	if err = input.FromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse %T: %w", input, err)
		return
	}

	return
}

// OutputFromMarshalUtil parses a type tag followed by the Output it announces.
func (c *Codec) OutputFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, version codec.Version) (output Output, err error) {
	typeID, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse output type (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if output, err = c.outputs.New(version, typeID); err != nil {
		return
	}
	if err = output.FromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse %T: %w", output, err)
		return
	}

	return
}

// CredentialFromMarshalUtil parses a type tag followed by the Credential it announces.
func (c *Codec) CredentialFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, version codec.Version) (credential Credential, err error) {
	typeID, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse credential type (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if credential, err = c.credentials.New(version, typeID); err != nil {
		return
	}
	if err = credential.FromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse %T: %w", credential, err)
		return
	}

	return
}

// TransactionFromMarshalUtil parses a transaction type tag followed by the body of the kind it announces.
func (c *Codec) TransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, version codec.Version) (transaction Transaction, err error) {
	typeValue, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse TransactionType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	transactionType := TransactionType(typeValue)

	c.parsersMutex.RLock()
	parser, exists := c.parsers[transactionType]
	c.parsersMutex.RUnlock()
	if !exists {
		err = errors.Errorf("%s: %w", transactionType, codecerrors.ErrUnknownType)
		return
	}

	if transaction, err = parser(marshalUtil, c, version); err != nil {
		err = errors.Errorf("failed to parse %s: %w", transactionType, err)
		return
	}
	if transaction.Type() != transactionType {
		err = errors.Errorf("parser of %s returned %s: %w", transactionType, transaction.Type(), cerrors.ErrParseBytesFailed)
		return
	}

	return
}
