package marshalutil

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/codecerrors"
)

func TestMarshalUtil_BigEndian(t *testing.T) {
	util := New(1).
		WriteUint16(1).
		WriteUint32(0x01020304).
		WriteUint64(5).
		WriteByte(0xff).
		WriteBytes([]byte{7, 8})

	assert.Equal(t, []byte{
		0x00, 0x01,
		0x01, 0x02, 0x03, 0x04,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05,
		0xff,
		0x07, 0x08,
	}, util.Bytes())

	reader := New(util.Bytes())
	uint16Value, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), uint16Value)

	uint32Value, err := reader.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), uint32Value)

	uint64Value, err := reader.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), uint64Value)

	byteValue, err := reader.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), byteValue)

	assert.Equal(t, 2, reader.RemainingBytes())
	assert.Equal(t, []byte{7, 8}, reader.ReadRemainingBytes())
	assert.True(t, reader.DoneReading())
}

func TestMarshalUtil_ReadOutOfBounds(t *testing.T) {
	reader := New([]byte{0, 0, 1})

	_, err := reader.ReadUint32()
	assert.True(t, errors.Is(err, codecerrors.ErrLength))
	assert.Equal(t, 0, reader.ReadOffset())

	_, err = reader.ReadBytes(4)
	assert.True(t, errors.Is(err, codecerrors.ErrLength))

	_, err = reader.ReadBytes(-1)
	assert.True(t, errors.Is(err, codecerrors.ErrLength))

	value, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), value)
	reader.ReadSeek(-2)
	assert.Equal(t, 0, reader.ReadOffset())
}

func TestMarshalUtil_BytesClone(t *testing.T) {
	util := New().WriteBytes([]byte{1, 2, 3})

	cloned := util.Bytes(true)
	cloned[0] = 9

	assert.Equal(t, []byte{1, 2, 3}, util.Bytes())
}
