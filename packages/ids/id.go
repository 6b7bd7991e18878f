// Package ids contains the fixed length identifiers that are used throughout the transaction codec.
package ids

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/mr-tron/base58"

	"github.com/iotaledger/txcodec/packages/cb58"
	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// region ID ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// IDLength contains the amount of bytes that a marshaled version of the ID contains.
const IDLength = 32

// ID is a 32 byte identifier of transactions, assets and blockchains.
type ID [IDLength]byte

// Empty represents the zero value of an ID.
var Empty ID

// IDFromBytes unmarshals an ID from a sequence of bytes.
func IDFromBytes(data []byte) (id ID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if id, err = IDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse ID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// IDFromMarshalUtil unmarshals an ID using a MarshalUtil (for easier unmarshaling).
func IDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (id ID, err error) {
	idBytes, err := marshalUtil.ReadBytes(IDLength)
	if err != nil {
		err = errors.Errorf("failed to parse ID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(id[:], idBytes)

	return
}

// IDFromBase58 creates an ID from a plain base58 encoded string.
func IDFromBase58(base58String string) (id ID, err error) {
	data, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded ID (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if id, _, err = IDFromBytes(data); err != nil {
		err = errors.Errorf("failed to parse ID from bytes: %w", err)
		return
	}

	return
}

// IDFromCB58 creates an ID from a checksummed base58 encoded string.
func IDFromCB58(cb58String string) (id ID, err error) {
	data, err := cb58.Decode(cb58String)
	if err != nil {
		err = errors.Errorf("error while decoding cb58 encoded ID: %w", err)
		return
	}
	if len(data) != IDLength {
		err = errors.Errorf("decoded ID has %d bytes instead of %d: %w", len(data), IDLength, codecerrors.ErrLength)
		return
	}
	copy(id[:], data)

	return
}

// Bytes returns a marshaled version of the ID.
func (i ID) Bytes() []byte {
	return i[:]
}

// Base58 returns a plain base58 encoded version of the ID.
func (i ID) Base58() string {
	return base58.Encode(i[:])
}

// CB58 returns the checksummed base58 encoded version of the ID.
func (i ID) CB58() string {
	return cb58.Encode(i[:])
}

// Compare offers a comparator for IDs which returns -1 if the other ID is bigger, 1 if it is smaller and 0 if they
// are the same.
func (i ID) Compare(other ID) int {
	return bytes.Compare(i[:], other[:])
}

// String returns the checksummed base58 representation of the ID which is how the network displays it.
func (i ID) String() string {
	return i.CB58()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ShortID //////////////////////////////////////////////////////////////////////////////////////////////////////

// ShortIDLength contains the amount of bytes that a marshaled version of the ShortID contains.
const ShortIDLength = 20

// ShortID is a 20 byte identifier that is used for addresses.
type ShortID [ShortIDLength]byte

// ShortEmpty represents the zero value of a ShortID.
var ShortEmpty ShortID

// ShortIDFromBytes unmarshals a ShortID from a sequence of bytes.
func ShortIDFromBytes(data []byte) (shortID ShortID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if shortID, err = ShortIDFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse ShortID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ShortIDFromMarshalUtil unmarshals a ShortID using a MarshalUtil (for easier unmarshaling).
func ShortIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (shortID ShortID, err error) {
	shortIDBytes, err := marshalUtil.ReadBytes(ShortIDLength)
	if err != nil {
		err = errors.Errorf("failed to parse ShortID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(shortID[:], shortIDBytes)

	return
}

// ShortIDFromCB58 creates a ShortID from a checksummed base58 encoded string.
func ShortIDFromCB58(cb58String string) (shortID ShortID, err error) {
	data, err := cb58.Decode(cb58String)
	if err != nil {
		err = errors.Errorf("error while decoding cb58 encoded ShortID: %w", err)
		return
	}
	if len(data) != ShortIDLength {
		err = errors.Errorf("decoded ShortID has %d bytes instead of %d: %w", len(data), ShortIDLength, codecerrors.ErrLength)
		return
	}
	copy(shortID[:], data)

	return
}

// Bytes returns a marshaled version of the ShortID.
func (s ShortID) Bytes() []byte {
	return s[:]
}

// CB58 returns the checksummed base58 encoded version of the ShortID.
func (s ShortID) CB58() string {
	return cb58.Encode(s[:])
}

// Compare offers a comparator for ShortIDs.
func (s ShortID) Compare(other ShortID) int {
	return bytes.Compare(s[:], other[:])
}

// String returns a human-readable version of the ShortID.
func (s ShortID) String() string {
	return s.CB58()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
