package secp256k1fx

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidThreshold is returned if the threshold of OutputOwners can not be reached by its addresses.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrDuplicateAddress is returned if OutputOwners contain the same address more than once.
	ErrDuplicateAddress = errors.New("duplicate address")

	// ErrDuplicateSigIndex is returned if a TransferInput references the same signature index more than once.
	ErrDuplicateSigIndex = errors.New("duplicate signature index")

	// ErrInvalidSignature is returned if a signature is malformed or can not be recovered.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrSignatureCountMismatch is returned if the amount of signatures does not match the signature indices.
	ErrSignatureCountMismatch = errors.New("amount of signatures does not match amount of signature indices")

	// ErrMissingKey is returned if the Keychain does not hold the key of a required address.
	ErrMissingKey = errors.New("missing key")

	// ErrUnsupportedInput is returned if the Keychain is asked to sign an Input of another feature extension.
	ErrUnsupportedInput = errors.New("unsupported input")
)
