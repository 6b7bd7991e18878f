package txs

import (
	"crypto/sha256"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/ids"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// SignedTransaction is an UnsignedTransaction together with the Credentials that authorize its inputs. The
// Credential at index i authorizes the input at index i of the canonically ordered inputs.
type SignedTransaction struct {
	unsignedTransaction *UnsignedTransaction
	credentials         []Credential
}

// NewSignedTransaction creates a new SignedTransaction. It fails if the amount of Credentials does not match the
// amount of inputs.
func NewSignedTransaction(unsignedTransaction *UnsignedTransaction, credentials []Credential) (*SignedTransaction, error) {
	if inputCount := len(unsignedTransaction.Transaction().Inputs()); inputCount != len(credentials) {
		return nil, errors.Errorf("%d credentials for %d inputs: %w", len(credentials), inputCount, ErrCredentialCountMismatch)
	}

	return &SignedTransaction{
		unsignedTransaction: unsignedTransaction,
		credentials:         append([]Credential{}, credentials...),
	}, nil
}

// SignedTransactionFromBytes unmarshals a SignedTransaction from a sequence of bytes. It fails if the bytes contain
// more than the SignedTransaction.
func SignedTransactionFromBytes(data []byte, c *Codec) (signedTransaction *SignedTransaction, err error) {
	marshalUtil := marshalutil.New(data)
	if signedTransaction, err = SignedTransactionFromMarshalUtil(marshalUtil, c); err != nil {
		err = errors.Errorf("failed to parse SignedTransaction from MarshalUtil: %w", err)
		return nil, err
	}
	if !marshalUtil.DoneReading() {
		err = errors.Errorf("%d trailing bytes after SignedTransaction: %w", marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return nil, err
	}

	return
}

// SignedTransactionFromCB58 unmarshals a SignedTransaction from its checksummed base58 encoded form.
func SignedTransactionFromCB58(cb58String string, c *Codec) (signedTransaction *SignedTransaction, err error) {
	data, err := cb58.Decode(cb58String)
	if err != nil {
		err = errors.Errorf("failed to decode SignedTransaction: %w", err)
		return nil, err
	}

	return SignedTransactionFromBytes(data, c)
}

// SignedTransactionFromMarshalUtil unmarshals a SignedTransaction using a MarshalUtil (for easier unmarshaling).
func SignedTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, c *Codec) (signedTransaction *SignedTransaction, err error) {
	unsignedTransaction, err := UnsignedTransactionFromMarshalUtil(marshalUtil, c)
	if err != nil {
		err = errors.Errorf("failed to parse UnsignedTransaction: %w", err)
		return nil, err
	}

	credentialsCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse credentials count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return nil, err
	}
	if int64(credentialsCount) > int64(marshalUtil.RemainingBytes()) {
		err = errors.Errorf("amount of Credentials (%d) exceeds remaining bytes (%d): %w", credentialsCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
		return nil, err
	}

	credentials := make([]Credential, credentialsCount)
	for i := range credentials {
		if credentials[i], err = c.CredentialFromMarshalUtil(marshalUtil, unsignedTransaction.CodecVersion()); err != nil {
			err = errors.Errorf("failed to parse Credential %d: %w", i, err)
			return nil, err
		}
	}

	if signedTransaction, err = NewSignedTransaction(unsignedTransaction, credentials); err != nil {
		err = errors.Mark(err, cerrors.ErrParseBytesFailed)
		return nil, err
	}

	return
}

// UnsignedTransaction returns the signed UnsignedTransaction.
func (s *SignedTransaction) UnsignedTransaction() *UnsignedTransaction {
	return s.unsignedTransaction
}

// Credentials returns the Credentials in the order of the inputs they authorize.
func (s *SignedTransaction) Credentials() []Credential {
	return append([]Credential{}, s.credentials...)
}

// Bytes returns a marshaled version of the SignedTransaction.
func (s *SignedTransaction) Bytes() []byte {
	version := s.unsignedTransaction.CodecVersion()

	marshalUtil := marshalutil.New().
		WriteBytes(s.unsignedTransaction.Bytes()).
		WriteUint32(uint32(len(s.credentials)))
	for _, credential := range s.credentials {
		marshalUtil.
			WriteUint32(credential.TypeIDs().For(version)).
			Write(credential)
	}

	return marshalUtil.Bytes()
}

// ID returns the identifier of the SignedTransaction (the sha256 hash of its marshaled version).
func (s *SignedTransaction) ID() ids.ID {
	return sha256.Sum256(s.Bytes())
}

// CB58 returns the checksummed base58 encoded version of the SignedTransaction.
func (s *SignedTransaction) CB58() string {
	return cb58.Encode(s.Bytes())
}

// String returns a human-readable version of the SignedTransaction.
func (s *SignedTransaction) String() string {
	credentials := stringify.StructBuilder("Credentials")
	for i, credential := range s.credentials {
		credentials.AddField(stringify.StructField(strconv.Itoa(i), credential))
	}

	return stringify.Struct("SignedTransaction",
		stringify.StructField("id", s.ID()),
		stringify.StructField("unsignedTransaction", s.unsignedTransaction),
		stringify.StructField("credentials", credentials),
	)
}
