// Package secp256k1fx implements the secp256k1 feature extension of the ledger: outputs that are owned by a
// threshold of secp256k1 addresses, the inputs that spend them and the credentials carrying the recoverable
// signatures that authorize those inputs.
package secp256k1fx

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/codec"
	"github.com/iotaledger/txcodec/packages/txs"
)

var (
	// TransferInputTypeIDs contains the type tags of the TransferInput.
	TransferInputTypeIDs = codec.TypeIDs{5, 65536}

	// MintOutputTypeIDs contains the type tags of the MintOutput.
	MintOutputTypeIDs = codec.TypeIDs{6, 65537}

	// TransferOutputTypeIDs contains the type tags of the TransferOutput.
	TransferOutputTypeIDs = codec.TypeIDs{7, 65538}

	// CredentialTypeIDs contains the type tags of the Credential.
	CredentialTypeIDs = codec.TypeIDs{9, 65539}
)

// Register adds the types of the feature extension to the given Codec.
func Register(c *txs.Codec) (err error) {
	if err = c.RegisterInput(func() txs.Input { return new(TransferInput) }); err != nil {
		return errors.Errorf("failed to register TransferInput: %w", err)
	}
	if err = c.RegisterOutput(func() txs.Output { return new(TransferOutput) }); err != nil {
		return errors.Errorf("failed to register TransferOutput: %w", err)
	}
	if err = c.RegisterOutput(func() txs.Output { return new(MintOutput) }); err != nil {
		return errors.Errorf("failed to register MintOutput: %w", err)
	}
	if err = c.RegisterCredential(func() txs.Credential { return new(Credential) }); err != nil {
		return errors.Errorf("failed to register Credential: %w", err)
	}

	return nil
}
