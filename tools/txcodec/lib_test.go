package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/txcodec/packages/cb58"
)

func TestDecodeInput(t *testing.T) {
	decoded, err := decodeInput("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, decoded)

	decoded, err = decodeInput(cb58.Encode([]byte{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, decoded)

	_, err = decodeInput("0xzz")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = newLogger("verbose", false)
	assert.Error(t, err)
}

func TestJSONContext(t *testing.T) {
	config.Chain.Alias = "X"
	config.Network.ID = 5
	config.Network.HRP = ""
	assert.Equal(t, "fuji", jsonContext().HRP)

	config.Network.HRP = "custom"
	assert.Equal(t, "custom", jsonContext().HRP)
	assert.Equal(t, "X", jsonContext().ChainAlias)
}

func TestParseTransaction(t *testing.T) {
	_, _, err := parseTransaction("0x0000", true)
	assert.Error(t, err)

	_, _, err = parseTransaction("0x0000", false)
	assert.Error(t, err)
}

func TestPrintUsage(t *testing.T) {
	command := newCommand("decode")
	assert.Equal(t, "decode", command.name)
	require.NotNil(t, command.Lookup("config"))

	assert.PanicsWithValue(t, Exit{1}, func() { printUsage(command, "x") })
	assert.PanicsWithValue(t, Exit{0}, func() { printUsage(command) })
	assert.PanicsWithValue(t, Exit{0}, func() { printUsage(nil) })
}
