package marshalutil

// WriteBytes appends the given bytes to the internal buffer.
func (util *MarshalUtil) WriteBytes(bytes []byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(len(bytes))

	copy(util.bytes[util.writeOffset:writeEndOffset], bytes)

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBytes reads the given amount of bytes from the internal buffer. The returned slice is a copy, so it can be
// retained by the caller.
func (util *MarshalUtil) ReadBytes(length int) ([]byte, error) {
	readEndOffset, err := util.checkReadCapacity(length)
	if err != nil {
		return nil, err
	}

	defer util.ReadSeek(readEndOffset)

	result := make([]byte, length)
	copy(result, util.bytes[util.readOffset:readEndOffset])

	return result, nil
}

// ReadRemainingBytes reads all bytes that have not been read, yet.
func (util *MarshalUtil) ReadRemainingBytes() []byte {
	result, _ := util.ReadBytes(util.RemainingBytes())

	return result
}

// WriteByte appends a single byte to the internal buffer.
func (util *MarshalUtil) WriteByte(byteToWrite byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(1)

	util.bytes[util.writeOffset] = byteToWrite

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadByte reads a single byte from the internal buffer.
func (util *MarshalUtil) ReadByte() (byte, error) {
	readEndOffset, err := util.checkReadCapacity(1)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset], nil
}
