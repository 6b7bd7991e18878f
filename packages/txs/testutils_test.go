package txs

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

const testSignatureLength = 5

var errUnknownKey = errors.New("unknown key")

// region testInput ////////////////////////////////////////////////////////////////////////////////////////////////////

type testInput struct {
	amount uint64
	key    byte
}

func (t *testInput) TypeIDs() codec.TypeIDs { return codec.TypeIDs{100, 1000} }

func (t *testInput) Amount() uint64 { return t.amount }

func (t *testInput) Bytes() []byte {
	return marshalutil.New().WriteUint64(t.amount).WriteByte(t.key).Bytes()
}

func (t *testInput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if t.amount, err = marshalUtil.ReadUint64(); err != nil {
		return errors.Errorf("failed to parse amount (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if t.key, err = marshalUtil.ReadByte(); err != nil {
		return errors.Errorf("failed to parse key (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	return nil
}

func (t *testInput) NewCredential(signatures [][]byte) (Credential, error) {
	return &testCredential{signatures: signatures}, nil
}

func (t *testInput) String() string {
	return stringify.Struct("testInput", stringify.StructField("amount", t.amount), stringify.StructField("key", t.key))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region testOutput ///////////////////////////////////////////////////////////////////////////////////////////////////

type testOutput struct {
	amount uint64
}

func (t *testOutput) TypeIDs() codec.TypeIDs { return codec.TypeIDs{101, 1001} }

func (t *testOutput) Amount() uint64 { return t.amount }

func (t *testOutput) Bytes() []byte { return marshalutil.New().WriteUint64(t.amount).Bytes() }

func (t *testOutput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if t.amount, err = marshalUtil.ReadUint64(); err != nil {
		return errors.Errorf("failed to parse amount (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	return nil
}

func (t *testOutput) String() string {
	return stringify.Struct("testOutput", stringify.StructField("amount", t.amount))
}

// testLockOutput does not carry an amount.
type testLockOutput struct {
	locktime uint64
}

func (t *testLockOutput) TypeIDs() codec.TypeIDs { return codec.TypeIDs{102, 1002} }

func (t *testLockOutput) Bytes() []byte { return marshalutil.New().WriteUint64(t.locktime).Bytes() }

func (t *testLockOutput) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if t.locktime, err = marshalUtil.ReadUint64(); err != nil {
		return errors.Errorf("failed to parse locktime (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	return nil
}

func (t *testLockOutput) String() string {
	return stringify.Struct("testLockOutput", stringify.StructField("locktime", t.locktime))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region testCredential ///////////////////////////////////////////////////////////////////////////////////////////////

type testCredential struct {
	signatures [][]byte
}

func (t *testCredential) TypeIDs() codec.TypeIDs { return codec.TypeIDs{103, 1003} }

func (t *testCredential) Signatures() [][]byte { return t.signatures }

func (t *testCredential) Bytes() []byte {
	marshalUtil := marshalutil.New().WriteUint32(uint32(len(t.signatures)))
	for _, signature := range t.signatures {
		marshalUtil.WriteBytes(signature)
	}

	return marshalUtil.Bytes()
}

func (t *testCredential) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) error {
	count, err := marshalUtil.ReadUint32()
	if err != nil {
		return errors.Errorf("failed to parse signature count (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	t.signatures = make([][]byte, count)
	for i := range t.signatures {
		if t.signatures[i], err = marshalUtil.ReadBytes(testSignatureLength); err != nil {
			return errors.Errorf("failed to parse signature (%v): %w", err, cerrors.ErrParseBytesFailed)
		}
	}

	return nil
}

func (t *testCredential) String() string {
	return stringify.Struct("testCredential", stringify.StructField("signatures", t.signatures))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region testTransaction //////////////////////////////////////////////////////////////////////////////////////////////

const testTransactionType TransactionType = 0

type testTransaction struct {
	*BaseTransaction
}

func (t *testTransaction) Type() TransactionType { return testTransactionType }

func (t *testTransaction) Base() *BaseTransaction { return t.BaseTransaction }

func parseTestTransaction(marshalUtil *marshalutil.MarshalUtil, c *Codec, version codec.Version) (Transaction, error) {
	baseTransaction, err := BaseTransactionFromMarshalUtil(marshalUtil, c, version)
	if err != nil {
		return nil, err
	}

	return &testTransaction{BaseTransaction: baseTransaction}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region testKeychain /////////////////////////////////////////////////////////////////////////////////////////////////

// testKeychain signs with "signatures" that consist of the first bytes of the hash followed by the key of the input.
type testKeychain struct {
	keys map[byte]bool
}

func (t *testKeychain) Sign(hash []byte, input Input) ([][]byte, error) {
	typedInput, ok := input.(*testInput)
	if !ok || !t.keys[typedInput.key] {
		return nil, errUnknownKey
	}

	return [][]byte{append(append([]byte{}, hash[:testSignatureLength-1]...), typedInput.key)}, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region helpers //////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	testAssetA = ids.ID{0xaa}
	testAssetB = ids.ID{0xbb}
)

func newTestCodec() *Codec {
	c := NewCodec()
	if err := c.RegisterInput(func() Input { return new(testInput) }); err != nil {
		panic(err)
	}
	if err := c.RegisterOutput(func() Output { return new(testOutput) }); err != nil {
		panic(err)
	}
	if err := c.RegisterOutput(func() Output { return new(testLockOutput) }); err != nil {
		panic(err)
	}
	if err := c.RegisterCredential(func() Credential { return new(testCredential) }); err != nil {
		panic(err)
	}
	if err := c.RegisterTransaction(testTransactionType, parseTestTransaction); err != nil {
		panic(err)
	}

	return c
}

func newTestInput(txIDByte byte, outputIndex uint32, assetID ids.ID, amount uint64, key byte) *TransferableInput {
	return NewTransferableInput(ids.ID{txIDByte}, outputIndex, assetID, &testInput{amount: amount, key: key})
}

func newTestOutput(assetID ids.ID, amount uint64) *TransferableOutput {
	return NewTransferableOutput(assetID, &testOutput{amount: amount})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
