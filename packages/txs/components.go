package txs

import (
	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// Input represents the spend authorization of a TransferableInput. It describes which signatures are required to
// consume the referenced output. The type tag is written by the TransferableInput, not by the Input itself.
type Input interface {
	// TypeIDs returns the type tags of the Input for every codec version.
	TypeIDs() codec.TypeIDs

	// Bytes returns a marshaled version of the Input (without its type tag).
	Bytes() []byte

	// FromMarshalUtil fills the Input with the values read from the MarshalUtil.
	FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) error

	// NewCredential packages the signatures that a Keychain produced for this Input.
	NewCredential(signatures [][]byte) (Credential, error)

	// String returns a human-readable version of the Input.
	String() string
}

// Output represents the value and ownership descriptor of a TransferableOutput.
type Output interface {
	// TypeIDs returns the type tags of the Output for every codec version.
	TypeIDs() codec.TypeIDs

	// Bytes returns a marshaled version of the Output (without its type tag).
	Bytes() []byte

	// FromMarshalUtil fills the Output with the values read from the MarshalUtil.
	FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) error

	// String returns a human-readable version of the Output.
	String() string
}

// Amounter is implemented by the Inputs and Outputs that carry a plain amount. Inputs and Outputs that do not
// implement it contribute nothing to the accounting of a Transaction.
type Amounter interface {
	Amount() uint64
}

// Credential bundles the signatures that authorize a single Input.
type Credential interface {
	// TypeIDs returns the type tags of the Credential for every codec version.
	TypeIDs() codec.TypeIDs

	// Bytes returns a marshaled version of the Credential (without its type tag).
	Bytes() []byte

	// FromMarshalUtil fills the Credential with the values read from the MarshalUtil.
	FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) error

	// Signatures returns the ordered signatures of the Credential.
	Signatures() [][]byte

	// String returns a human-readable version of the Credential.
	String() string
}

// Keychain is the key management collaborator that is used to sign Transactions.
type Keychain interface {
	// Sign returns the ordered signatures that satisfy the spend authorization of the Input over the given hash.
	Sign(hash []byte, input Input) (signatures [][]byte, err error)
}
