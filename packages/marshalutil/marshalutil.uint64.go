package marshalutil

import "encoding/binary"

// Uint64Size contains the amount of bytes of a marshaled uint64 value.
const Uint64Size = 8

// WriteUint64 appends the big-endian representation of the given uint64 to the internal buffer.
func (util *MarshalUtil) WriteUint64(value uint64) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint64Size)

	binary.BigEndian.PutUint64(util.bytes[util.writeOffset:writeEndOffset], value)

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint64 reads a big-endian uint64 from the internal buffer.
func (util *MarshalUtil) ReadUint64() (uint64, error) {
	readEndOffset, err := util.checkReadCapacity(Uint64Size)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return binary.BigEndian.Uint64(util.bytes[util.readOffset:readEndOffset]), nil
}
