package codec

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x01}, Version1.Bytes())

	version, err := VersionFromMarshalUtil(marshalutil.New(Version0.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Version0, version)

	_, err = VersionFromMarshalUtil(marshalutil.New([]byte{0x00, 0x02}))
	assert.True(t, errors.Is(err, codecerrors.ErrUnsupportedCodec))

	_, err = VersionFromMarshalUtil(marshalutil.New([]byte{0x00}))
	assert.True(t, errors.Is(err, cerrors.ErrParseBytesFailed))
}

func TestTypeIDs(t *testing.T) {
	typeIDs := TypeIDs{7, 65538}
	assert.Equal(t, uint32(7), typeIDs.For(Version0))
	assert.Equal(t, uint32(65538), typeIDs.For(Version1))
	assert.Panics(t, func() {
		typeIDs.For(Version(9))
	})
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry[string]("test")

	require.NoError(t, registry.Register(TypeIDs{5, 65536}, func() string { return "input" }))
	require.NoError(t, registry.Register(TypeIDs{7, 65538}, func() string { return "output" }))

	err := registry.Register(TypeIDs{9, 65538}, func() string { return "duplicate" })
	assert.True(t, errors.Is(err, ErrDuplicateType))
	assert.Equal(t, 2, registry.Size(Version0))

	instance, err := registry.New(Version0, 5)
	require.NoError(t, err)
	assert.Equal(t, "input", instance)

	instance, err = registry.New(Version1, 65538)
	require.NoError(t, err)
	assert.Equal(t, "output", instance)

	_, err = registry.New(Version1, 7)
	assert.True(t, errors.Is(err, codecerrors.ErrUnknownType))

	_, err = registry.New(Version(3), 7)
	assert.True(t, errors.Is(err, codecerrors.ErrUnsupportedCodec))

	assert.True(t, errors.Is(registry.Register(TypeIDs{1, 1}, nil), ErrMissingFactory))
}

type testTagged struct{}

func (testTagged) TypeIDs() TypeIDs {
	return TypeIDs{3, 65539}
}

func TestRegisterFactory(t *testing.T) {
	registry := NewRegistry[testTagged]("tagged")
	require.NoError(t, RegisterFactory(registry, func() testTagged { return testTagged{} }))

	_, err := registry.New(Version1, 65539)
	require.NoError(t, err)
	assert.True(t, errors.Is(RegisterFactory(registry, func() testTagged { return testTagged{} }), ErrDuplicateType))
	assert.True(t, errors.Is(RegisterFactory[testTagged](registry, nil), ErrMissingFactory))
}
