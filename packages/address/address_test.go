package address

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/constants"
	"github.com/iotaledger/txcodec/packages/ids"
)

func TestFormatParse(t *testing.T) {
	shortID := ids.ShortID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

	formatted, err := Format(constants.XChainAlias, constants.HRP(constants.MainnetID), shortID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(formatted, "X-avax1"))

	chainAlias, hrp, parsed, err := Parse(formatted)
	require.NoError(t, err)
	assert.Equal(t, constants.XChainAlias, chainAlias)
	assert.Equal(t, "avax", hrp)
	assert.Equal(t, shortID, parsed)
}

func TestParse_Invalid(t *testing.T) {
	_, _, _, err := Parse("avax1qqqqqq")
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	formatted, err := Format(constants.XChainAlias, "fuji", ids.ShortID{0xff})
	require.NoError(t, err)

	// flip the last checksum character
	tampered := []byte(formatted)
	if tampered[len(tampered)-1] == 'q' {
		tampered[len(tampered)-1] = 'p'
	} else {
		tampered[len(tampered)-1] = 'q'
	}
	_, _, _, err = Parse(string(tampered))
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	tooShort, err := bech32Of("avax", []byte{1, 2, 3})
	require.NoError(t, err)
	_, _, err = ParseBech32(tooShort)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}

func bech32Of(hrp string, data []byte) (string, error) {
	fiveBitGroups, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.Encode(hrp, fiveBitGroups)
}
