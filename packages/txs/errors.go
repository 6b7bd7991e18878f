package txs

import "github.com/cockroachdb/errors"

var (
	// ErrAmountOverflow is returned if the accumulated amounts of a Transaction do not fit into an uint64.
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrNegativeBurn is returned if a Transaction creates more value of an asset than it consumes.
	ErrNegativeBurn = errors.New("outputs exceed inputs")

	// ErrCredentialCountMismatch is returned if the amount of Credentials does not match the amount of Inputs.
	ErrCredentialCountMismatch = errors.New("amount of credentials does not match amount of inputs")

	// ErrNonCanonicalOrder is returned if parsed Inputs or Outputs are not in their canonical order.
	ErrNonCanonicalOrder = errors.New("elements are not in canonical order")
)
