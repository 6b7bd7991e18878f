// Package codec contains the codec version tag of the wire format and the registries that map the numeric type tags
// of a codec version to the types they represent.
package codec

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"

	"github.com/iotaledger/txcodec/packages/codecerrors"
	"github.com/iotaledger/txcodec/packages/marshalutil"
)

// region Version //////////////////////////////////////////////////////////////////////////////////////////////////////

// Version selects the wire format variant. It only changes how numeric type tags are written, not the semantics of
// the fields.
type Version uint16

const (
	// Version0 is the original codec of the network.
	Version0 Version = iota

	// Version1 is the codec that namespaces the type tags of the feature extensions.
	Version1

	// VersionCount contains the amount of supported codec versions.
	VersionCount = int(Version1) + 1

	// LatestVersion is the codec version new transactions are built with by default.
	LatestVersion = Version1
)

// VersionFromMarshalUtil unmarshals a Version using a MarshalUtil (for easier unmarshaling).
func VersionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (version Version, err error) {
	versionValue, err := marshalUtil.ReadUint16()
	if err != nil {
		err = errors.Errorf("failed to parse codec Version (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	version = Version(versionValue)
	if err = version.Validate(); err != nil {
		return
	}

	return
}

// Validate returns an error if the Version is not supported.
func (v Version) Validate() error {
	if int(v) >= VersionCount {
		return errors.Errorf("codec version %d: %w", v, codecerrors.ErrUnsupportedCodec)
	}

	return nil
}

// Bytes returns a marshaled version of the Version.
func (v Version) Bytes() []byte {
	return marshalutil.New(marshalutil.Uint16Size).WriteUint16(uint16(v)).Bytes()
}

// String returns a human-readable version of the Version.
func (v Version) String() string {
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TypeIDs //////////////////////////////////////////////////////////////////////////////////////////////////////

// TypeIDs contains the numeric type tag of a type for every supported codec Version (indexed by the Version).
type TypeIDs [VersionCount]uint32

// For returns the type tag that is used in the given codec Version. It panics if the Version is not supported since
// Versions are validated before anything is serialized with them.
func (t TypeIDs) For(version Version) uint32 {
	if err := version.Validate(); err != nil {
		panic(err)
	}

	return t[version]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
