// Package address formats and parses the bech32 addresses of a chain, e.g. "X-avax1...".
package address

import (
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/ids"
)

// Separator separates the chain alias from the bech32 part of an address.
const Separator = "-"

// ErrInvalidAddress is returned if an address can not be parsed.
var ErrInvalidAddress = errors.New("invalid address")

// Format returns the address of the ShortID on the chain with the given alias and human readable part.
func Format(chainAlias, hrp string, shortID ids.ShortID) (string, error) {
	bech32String, err := FormatBech32(hrp, shortID)
	if err != nil {
		return "", err
	}

	return chainAlias + Separator + bech32String, nil
}

// FormatBech32 returns the bech32 encoded ShortID without a chain alias.
func FormatBech32(hrp string, shortID ids.ShortID) (string, error) {
	fiveBitGroups, err := bech32.ConvertBits(shortID[:], 8, 5, true)
	if err != nil {
		return "", errors.Errorf("failed to convert address bits (%v): %w", err, ErrInvalidAddress)
	}

	encoded, err := bech32.Encode(hrp, fiveBitGroups)
	if err != nil {
		return "", errors.Errorf("failed to encode address (%v): %w", err, ErrInvalidAddress)
	}

	return encoded, nil
}

// Parse splits an address into its chain alias, its human readable part and the ShortID it encodes.
func Parse(text string) (chainAlias, hrp string, shortID ids.ShortID, err error) {
	separatorIndex := strings.Index(text, Separator)
	if separatorIndex < 1 {
		err = errors.Errorf("%q has no chain alias: %w", text, ErrInvalidAddress)
		return
	}
	chainAlias = text[:separatorIndex]

	if hrp, shortID, err = ParseBech32(text[separatorIndex+len(Separator):]); err != nil {
		chainAlias = ""
		return
	}

	return
}

// ParseBech32 parses a bech32 encoded ShortID without a chain alias.
func ParseBech32(text string) (hrp string, shortID ids.ShortID, err error) {
	hrp, fiveBitGroups, err := bech32.Decode(text)
	if err != nil {
		err = errors.Errorf("failed to decode %q (%v): %w", text, err, ErrInvalidAddress)
		return "", ids.ShortEmpty, err
	}

	decoded, err := bech32.ConvertBits(fiveBitGroups, 5, 8, false)
	if err != nil {
		err = errors.Errorf("failed to convert address bits (%v): %w", err, ErrInvalidAddress)
		return "", ids.ShortEmpty, err
	}
	if len(decoded) != ids.ShortIDLength {
		err = errors.Errorf("address has %d bytes instead of %d: %w", len(decoded), ids.ShortIDLength, ErrInvalidAddress)
		return "", ids.ShortEmpty, err
	}
	copy(shortID[:], decoded)

	return hrp, shortID, nil
}
