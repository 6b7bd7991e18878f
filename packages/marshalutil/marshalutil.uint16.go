package marshalutil

import "encoding/binary"

// Uint16Size contains the amount of bytes of a marshaled uint16 value.
const Uint16Size = 2

// WriteUint16 appends the big-endian representation of the given uint16 to the internal buffer.
func (util *MarshalUtil) WriteUint16(value uint16) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(Uint16Size)

	binary.BigEndian.PutUint16(util.bytes[util.writeOffset:writeEndOffset], value)

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadUint16 reads a big-endian uint16 from the internal buffer.
func (util *MarshalUtil) ReadUint16() (uint16, error) {
	readEndOffset, err := util.checkReadCapacity(Uint16Size)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return binary.BigEndian.Uint16(util.bytes[util.readOffset:readEndOffset]), nil
}
