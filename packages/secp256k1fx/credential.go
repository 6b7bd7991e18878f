package secp256k1fx

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
	"github.com/iotaledger/txcodec/packages/txs"
)

// SignatureLength contains the length of a recoverable secp256k1 signature (R || S || V).
const SignatureLength = 65

// Credential contains the recoverable signatures that authorize a TransferInput.
type Credential struct {
	signatures [][]byte
}

// NewCredential creates a new Credential from the given signatures.
func NewCredential(signatures ...[]byte) (*Credential, error) {
	credential := &Credential{
		signatures: make([][]byte, len(signatures)),
	}
	for i, signature := range signatures {
		if len(signature) != SignatureLength {
			return nil, errors.Errorf("signature %d has %d bytes instead of %d: %w", i, len(signature), SignatureLength, ErrInvalidSignature)
		}
		credential.signatures[i] = append([]byte{}, signature...)
	}

	return credential, nil
}

// TypeIDs returns the type tags of the Credential.
func (c *Credential) TypeIDs() codec.TypeIDs {
	return CredentialTypeIDs
}

// Signatures returns the ordered signatures of the Credential.
func (c *Credential) Signatures() [][]byte {
	signatures := make([][]byte, len(c.signatures))
	for i, signature := range c.signatures {
		signatures[i] = append([]byte{}, signature...)
	}

	return signatures
}

// FromMarshalUtil fills the Credential with the values read from the MarshalUtil.
func (c *Credential) FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) error {
	signaturesCount, err := marshalUtil.ReadUint32()
	if err != nil {
		return errors.Errorf("failed to parse signatures count (%v): %w", err, cerrors.ErrParseBytesFailed)
	}
	if int64(signaturesCount)*SignatureLength > int64(marshalUtil.RemainingBytes()) {
		return errors.Errorf("amount of signatures (%d) exceeds remaining bytes (%d): %w", signaturesCount, marshalUtil.RemainingBytes(), codecerrors.ErrLength)
	}

	c.signatures = make([][]byte, signaturesCount)
	for i := range c.signatures {
		if c.signatures[i], err = marshalUtil.ReadBytes(SignatureLength); err != nil {
			return errors.Errorf("failed to parse signature %d (%v): %w", i, err, cerrors.ErrParseBytesFailed)
		}
	}

	return nil
}

// Bytes returns a marshaled version of the Credential.
func (c *Credential) Bytes() []byte {
	marshalUtil := marshalutil.New(marshalutil.Uint32Size + len(c.signatures)*SignatureLength).
		WriteUint32(uint32(len(c.signatures)))
	for _, signature := range c.signatures {
		marshalUtil.WriteBytes(signature)
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the Credential.
func (c *Credential) String() string {
	signatures := stringify.StructBuilder("Signatures")
	for i, signature := range c.signatures {
		signatures.AddField(stringify.StructField(strconv.Itoa(i), base58.Encode(signature)))
	}

	return stringify.Struct("Credential",
		stringify.StructField("signatures", signatures),
	)
}

// code contract (make sure the struct implements all required methods)
var _ txs.Credential = &Credential{}
