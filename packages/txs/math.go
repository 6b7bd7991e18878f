package txs

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

func safeAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Errorf("%d + %d: %w", a, b, ErrAmountOverflow)
	}

	return sum, nil
}

func safeSub(a, b uint64) (uint64, error) {
	difference, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, errors.Errorf("%d - %d: %w", a, b, ErrNegativeBurn)
	}

	return difference, nil
}
