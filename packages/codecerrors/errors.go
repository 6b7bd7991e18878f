// Package codecerrors contains the sentinel errors that are shared by the different codecs of the module and that are
// not already provided by hive.go's cerrors. Callers are expected to match against them with errors.Is since they are
// always returned wrapped.
package codecerrors

import "github.com/cockroachdb/errors"

var (
	// ErrLength is returned if a declared length does not match the amount of bytes that are available.
	ErrLength = errors.New("length mismatch")

	// ErrChecksum is returned if the checksum embedded in a textual encoding does not match its payload.
	ErrChecksum = errors.New("invalid checksum")

	// ErrUnsupportedCodec is returned if an unknown codec version is encountered.
	ErrUnsupportedCodec = errors.New("unsupported codec version")

	// ErrUnknownType is returned if a type tag has not been registered for the given codec version.
	ErrUnknownType = errors.New("unknown type")

	// ErrHexDecodeFailed is returned if a hex encoded string can not be decoded.
	ErrHexDecodeFailed = errors.New("failed to decode hex encoded string")
)
