// Package cb58 implements the checksummed base-58 text encoding that is used for the textual form of transactions
// and identifiers: base58(payload || last 4 bytes of sha256(payload)).
package cb58

import (
	"bytes"
	"crypto/sha256"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/mr-tron/base58"

	"github.com/iotaledger/txcodec/packages/codecerrors"
)

// ChecksumLength contains the amount of checksum bytes that are appended to the payload.
const ChecksumLength = 4

// Encode returns the checksummed base-58 representation of the given payload.
func Encode(payload []byte) string {
	checked := make([]byte, 0, len(payload)+ChecksumLength)
	checked = append(checked, payload...)
	checked = append(checked, Checksum(payload)...)

	return base58.Encode(checked)
}

// Decode parses a checksummed base-58 string and returns the payload after verifying its checksum.
func Decode(text string) (payload []byte, err error) {
	decoded, err := base58.Decode(text)
	if err != nil {
		err = errors.Errorf("failed to decode %q (%v): %w", text, err, cerrors.ErrBase58DecodeFailed)
		return
	}
	if len(decoded) < ChecksumLength {
		err = errors.Errorf("decoded value is shorter (%d bytes) than the checksum: %w", len(decoded), codecerrors.ErrChecksum)
		return
	}

	payload = decoded[:len(decoded)-ChecksumLength]
	if !bytes.Equal(Checksum(payload), decoded[len(decoded)-ChecksumLength:]) {
		err = errors.Errorf("checksum of %q does not match its payload: %w", text, codecerrors.ErrChecksum)
		payload = nil
		return
	}

	return
}

// Checksum returns the last ChecksumLength bytes of the sha256 hash of the payload.
func Checksum(payload []byte) []byte {
	hash := sha256.Sum256(payload)

	return hash[len(hash)-ChecksumLength:]
}
