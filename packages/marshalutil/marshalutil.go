// Package marshalutil offers a cursor based helper to marshal and unmarshal the big-endian wire format of the
// network. Reads never go past the end of the buffer: a read that requires more bytes than are available fails with
// codecerrors.ErrLength.
package marshalutil

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/txcodec/packages/codecerrors"
)

// MarshalUtil is a utility that allows to sequentially write and read values from a byte buffer.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a new MarshalUtil. It accepts either an initial capacity (int) or a sequence of bytes that is used as
// the read buffer.
func New(args ...interface{}) *MarshalUtil {
	switch argsCount := len(args); argsCount {
	case 0:
		return &MarshalUtil{
			bytes: make([]byte, 1024),
		}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &MarshalUtil{
				bytes: make([]byte, param),
			}
		case []byte:
			return &MarshalUtil{
				bytes: param,
				size:  len(param),
			}
		default:
			panic(errors.Errorf("illegal argument type %T in marshalutil.New(...)", param))
		}
	default:
		panic(errors.Errorf("illegal argument count %d in marshalutil.New(...)", argsCount))
	}
}

// Write marshals the given object by calling its Bytes method.
func (util *MarshalUtil) Write(object interface{ Bytes() []byte }) *MarshalUtil {
	return util.WriteBytes(object.Bytes())
}

// WriteSeek sets the write offset of the internal buffer.
func (util *MarshalUtil) WriteSeek(offset int) {
	util.writeOffset = offset
	if util.writeOffset > util.size {
		util.size = util.writeOffset
	}
}

// ReadSeek sets the read offset of the internal buffer. Negative values move the offset relative to its current
// position.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		offset = util.readOffset + offset
	}

	util.readOffset = offset
}

// ReadOffset returns the current read offset of the internal buffer.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// WriteOffset returns the current write offset of the internal buffer.
func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

// RemainingBytes returns the amount of bytes that have not been read, yet.
func (util *MarshalUtil) RemainingBytes() int {
	return util.size - util.readOffset
}

// DoneReading returns true if all bytes of the buffer have been read.
func (util *MarshalUtil) DoneReading() bool {
	return util.readOffset == util.size
}

// Bytes returns the written bytes of the internal buffer.
func (util *MarshalUtil) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		clonedBytes := make([]byte, util.size)
		copy(clonedBytes, util.bytes[:util.size])

		return clonedBytes
	}

	return util.bytes[:util.size]
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	if length < 0 {
		err = errors.Errorf("negative read length %d: %w", length, codecerrors.ErrLength)
		return
	}

	readEndOffset = util.readOffset + length
	if readEndOffset > util.size {
		err = errors.Errorf("tried to read %d bytes from %d remaining bytes: %w", length, util.size-util.readOffset, codecerrors.ErrLength)
	}

	return
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	writeEndOffset = util.writeOffset + length

	if writeEndOffset > len(util.bytes) {
		extendedBytes := make([]byte, writeEndOffset-len(util.bytes)+len(util.bytes))
		copy(extendedBytes, util.bytes)
		util.bytes = extendedBytes
	}

	return
}
