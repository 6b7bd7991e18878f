package txs

import (
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// UnsignedTransaction wraps a concrete Transaction together with the codec version it is marshaled with. Its
// marshaled form is what gets hashed and signed.
type UnsignedTransaction struct {
	codecVersion codec.Version
	transaction  Transaction
}

// NewUnsignedTransaction creates a new UnsignedTransaction. The codec version is the one the BaseTransaction of the
// given Transaction was created with.
func NewUnsignedTransaction(transaction Transaction) *UnsignedTransaction {
	return &UnsignedTransaction{
		codecVersion: transaction.Base().CodecVersion(),
		transaction:  transaction,
	}
}

// UnsignedTransactionFromBytes unmarshals an UnsignedTransaction from a sequence of bytes. It fails if the bytes
// contain more than the UnsignedTransaction.
func UnsignedTransactionFromBytes(data []byte, c *Codec) (unsignedTransaction *UnsignedTransaction, err error) {
	marshalUtil := marshalutil.New(data)
	if unsignedTransaction, err = UnsignedTransactionFromMarshalUtil(marshalUtil, c); err != nil {
		err = errors.Errorf("failed to parse UnsignedTransaction from MarshalUtil: %w", err)
		return nil, err
	}
	if !marshalUtil.DoneReading() {
		err = errors.Errorf("%d trailing bytes after UnsignedTransaction: %w", marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return nil, err
	}

	return
}

// UnsignedTransactionFromMarshalUtil unmarshals an UnsignedTransaction using a MarshalUtil (for easier
// unmarshaling). The kind of the Transaction is looked up in the given Codec.
func UnsignedTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec) (unsignedTransaction *UnsignedTransaction, err error) {
	unsignedTransaction = &UnsignedTransaction{}
	if unsignedTransaction.codecVersion, err = codec.VersionFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse codec version: %w", err)
		return nil, err
	}
	if unsignedTransaction.transaction, err = c.TransactionFromMarshalUtil(marshalUtil, unsignedTransaction.codecVersion); err != nil {
		err = errors.Errorf("failed to parse Transaction: %w", err)
		return nil, err
	}

	return
}

// CodecVersion returns the codec version of the UnsignedTransaction.
func (u *UnsignedTransaction) CodecVersion() codec.Version {
	return u.codecVersion
}

// Transaction returns the wrapped concrete Transaction.
func (u *UnsignedTransaction) Transaction() Transaction {
	return u.transaction
}

// Bytes returns a marshaled version of the UnsignedTransaction: codec version, transaction type and body.
func (u *UnsignedTransaction) Bytes() []byte {
	return marshalutil.New().
		Write(u.codecVersion).
		Write(u.transaction.Type()).
		WriteBytes(u.transaction.Bytes()).
		Bytes()
}

// ID returns the sha256 hash of the marshaled UnsignedTransaction, which is the message that gets signed.
func (u *UnsignedTransaction) ID() ids.ID {
	return sha256.Sum256(u.Bytes())
}

// InputTotal returns the summed amount of the given asset that is consumed by the Transaction. Inputs that do not
// carry a plain amount contribute nothing.
func (u *UnsignedTransaction) InputTotal(assetID ids.ID) (total uint64, err error) {
	for _, input := range u.transaction.Inputs() {
		if input.AssetID() != assetID {
			continue
		}

		amount, ok := input.Amount()
		if !ok {
			continue
		}

		if total, err = safeAdd(total, amount); err != nil {
			return 0, errors.Errorf("failed to sum inputs of asset %s: %w", assetID, err)
		}
	}

	return total, nil
}

// OutputTotal returns the summed amount of the given asset that is created by the Transaction (including outputs
// that the kind creates beyond the ones of its BaseTransaction).
func (u *UnsignedTransaction) OutputTotal(assetID ids.ID) (total uint64, err error) {
	for _, output := range u.transaction.Outputs() {
		if output.AssetID() != assetID {
			continue
		}

		amount, ok := output.Amount()
		if !ok {
			continue
		}

		if total, err = safeAdd(total, amount); err != nil {
			return 0, errors.Errorf("failed to sum outputs of asset %s: %w", assetID, err)
		}
	}

	return total, nil
}

// Burn returns the amount of the given asset that is consumed but not created again by the Transaction. It fails
// with ErrNegativeBurn if the Transaction creates more than it consumes.
func (u *UnsignedTransaction) Burn(assetID ids.ID) (burn uint64, err error) {
	inputTotal, err := u.InputTotal(assetID)
	if err != nil {
		return 0, err
	}
	outputTotal, err := u.OutputTotal(assetID)
	if err != nil {
		return 0, err
	}

	if burn, err = safeSub(inputTotal, outputTotal); err != nil {
		return 0, errors.Errorf("failed to compute burn of asset %s: %w", assetID, err)
	}

	return burn, nil
}

// Sign asks the Keychain for the signatures of every input (in canonical order) over the ID of the
// UnsignedTransaction and returns the resulting SignedTransaction. The UnsignedTransaction is not modified.
func (u *UnsignedTransaction) Sign(keychain Keychain) (signedTransaction *SignedTransaction, err error) {
	hash := u.ID()

	inputs := u.transaction.Inputs()
	credentials := make([]Credential, len(inputs))
	for i, input := range inputs {
		signatures, signErr := keychain.Sign(hash[:], input.Input())
		if signErr != nil {
			return nil, errors.Wrapf(signErr, "failed to sign input %d", i)
		}

		if credentials[i], err = input.Input().NewCredential(signatures); err != nil {
			return nil, errors.Wrapf(err, "failed to create credential for input %d", i)
		}
	}

	return NewSignedTransaction(u, credentials)
}

// String returns a human-readable version of the UnsignedTransaction.
func (u *UnsignedTransaction) String() string {
	return stringify.Struct("UnsignedTransaction",
		stringify.StructField("codecVersion", u.codecVersion),
		stringify.StructField("type", u.transaction.Type()),
		stringify.StructField("transaction", u.transaction),
	)
}
