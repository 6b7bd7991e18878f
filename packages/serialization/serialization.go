// Package serialization converts field values between the representations that are used in the JSON interchange
// format of transactions: raw bytes, hex strings, cb58 strings, decimal strings and numbers.
package serialization

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codecerrors"
)

// region Encoding /////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Buffer represents a value as []byte.
	Buffer Encoding = iota

	// Hex represents a value as hex string (an optional "0x" prefix is accepted when decoding).
	Hex

	// CB58 represents a value as checksummed base58 string.
	CB58

	// DecimalString represents a big-endian unsigned integer as base 10 string.
	DecimalString

	// Number represents a big-endian unsigned integer as *big.Int.
	Number
)

// Encoding is the representation of a field value.
type Encoding uint8

// String returns a human-readable version of the Encoding.
func (e Encoding) String() string {
	switch e {
	case Buffer:
		return "Buffer"
	case Hex:
		return "Hex"
	case CB58:
		return "CB58"
	case DecimalString:
		return "DecimalString"
	case Number:
		return "Number"
	default:
		return "Encoding(" + strconv.Itoa(int(e)) + ")"
	}
}

// EncodingFromString parses the name of an Encoding (case-insensitive).
func EncodingFromString(name string) (Encoding, error) {
	for encoding := Buffer; encoding <= Number; encoding++ {
		if strings.EqualFold(encoding.String(), name) {
			return encoding, nil
		}
	}

	return 0, errors.Errorf("%q: %w", name, ErrUnknownEncoding)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region errors ///////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	// ErrUnknownEncoding is returned for Encodings that are not supported.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidValue is returned if a value does not have the type or format of its Encoding.
	ErrInvalidValue = errors.New("invalid value")

	// ErrValueTooLarge is returned if a value does not fit into the requested amount of bytes.
	ErrValueTooLarge = errors.New("value too large")
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region conversion ///////////////////////////////////////////////////////////////////////////////////////////////////

// Convert converts the value from one Encoding to another. If size is positive, the bytes of the value are left
// padded with zeros to size bytes (numbers) or need to have exactly size bytes (everything else) and values that do
// not fit fail with ErrValueTooLarge.
func Convert(value interface{}, from, to Encoding, size int) (interface{}, error) {
	data, err := ToBytes(value, from)
	if err != nil {
		return nil, err
	}
	if data, err = fitSize(data, from, size); err != nil {
		return nil, err
	}

	return FromBytes(data, to)
}

// ToBytes returns the bytes of a value in the given Encoding. Numbers are returned in their minimal big-endian form.
func ToBytes(value interface{}, encoding Encoding) (data []byte, err error) {
	switch encoding {
	case Buffer:
		typedValue, ok := value.([]byte)
		if !ok {
			return nil, errors.Errorf("expected []byte but got %T: %w", value, ErrInvalidValue)
		}

		return append([]byte{}, typedValue...), nil
	case Hex:
		typedValue, ok := value.(string)
		if !ok {
			return nil, errors.Errorf("expected hex string but got %T: %w", value, ErrInvalidValue)
		}
		if data, err = hex.DecodeString(strings.TrimPrefix(typedValue, "0x")); err != nil {
			return nil, errors.Errorf("failed to decode %q (%v): %w", typedValue, err, codecerrors.ErrHexDecodeFailed)
		}

		return data, nil
	case CB58:
		typedValue, ok := value.(string)
		if !ok {
			return nil, errors.Errorf("expected cb58 string but got %T: %w", value, ErrInvalidValue)
		}

		return cb58.Decode(typedValue)
	case DecimalString:
		typedValue, ok := value.(string)
		if !ok {
			return nil, errors.Errorf("expected decimal string but got %T: %w", value, ErrInvalidValue)
		}
		number, ok := new(big.Int).SetString(typedValue, 10)
		if !ok {
			return nil, errors.Errorf("%q is not a decimal number: %w", typedValue, ErrInvalidValue)
		}

		return numberToBytes(number)
	case Number:
		switch typedValue := value.(type) {
		case *big.Int:
			return numberToBytes(typedValue)
		case uint64:
			return numberToBytes(new(big.Int).SetUint64(typedValue))
		case uint32:
			return numberToBytes(new(big.Int).SetUint64(uint64(typedValue)))
		case int:
			return numberToBytes(big.NewInt(int64(typedValue)))
		default:
			return nil, errors.Errorf("expected number but got %T: %w", value, ErrInvalidValue)
		}
	default:
		return nil, errors.Errorf("%s: %w", encoding, ErrUnknownEncoding)
	}
}

// FromBytes returns the value of the bytes in the given Encoding. Bytes are interpreted as big-endian unsigned
// integers by the numeric Encodings.
func FromBytes(data []byte, encoding Encoding) (interface{}, error) {
	switch encoding {
	case Buffer:
		return append([]byte{}, data...), nil
	case Hex:
		return hex.EncodeToString(data), nil
	case CB58:
		return cb58.Encode(data), nil
	case DecimalString:
		return new(big.Int).SetBytes(data).String(), nil
	case Number:
		return new(big.Int).SetBytes(data), nil
	default:
		return nil, errors.Errorf("%s: %w", encoding, ErrUnknownEncoding)
	}
}

func numberToBytes(number *big.Int) ([]byte, error) {
	if number == nil || number.Sign() < 0 {
		return nil, errors.Errorf("%v is not an unsigned number: %w", number, ErrInvalidValue)
	}

	return number.Bytes(), nil
}

func fitSize(data []byte, from Encoding, size int) ([]byte, error) {
	if size <= 0 {
		return data, nil
	}
	if len(data) > size {
		return nil, errors.Errorf("%d bytes do not fit into %d bytes: %w", len(data), size, ErrValueTooLarge)
	}
	if len(data) == size {
		return data, nil
	}
	if from != DecimalString && from != Number {
		return nil, errors.Errorf("expected %d bytes but got %d: %w", size, len(data), ErrInvalidValue)
	}

	padded := make([]byte, size)
	copy(padded[size-len(data):], data)

	return padded, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
