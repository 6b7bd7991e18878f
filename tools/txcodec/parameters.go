package main

import (
	"github.com/spf13/pflag"

	"github.com/iotaledger/txcodec/packages/configuration"
)

// parameters are shared by all commands and can also be set via TXCODEC_* environment variables or a config file.
type parameters struct {
	Network struct {
		ID  uint32 `default:"1" usage:"the network ID (determines the address HRP if network.hrp is empty)"`
		HRP string `name:"hrp" default:"" usage:"the human readable part of addresses"`
	}
	Chain struct {
		Alias string `default:"X" usage:"the alias of the chain in addresses"`
	}
	Logger struct {
		Level       string `default:"info" usage:"the minimum enabled logging level"`
		Development bool   `default:"false" usage:"use the development logger"`
	}
}

var config = &parameters{}

// cliCommand is the FlagSet of a single command together with the name it was invoked with.
type cliCommand struct {
	*pflag.FlagSet
	name string
}

func newCommand(name string) *cliCommand {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.String("config", "", "path of an optional config file (json, yaml or toml)")
	configuration.DefineParameters(flagSet, config, "")

	return &cliCommand{
		FlagSet: flagSet,
		name:    name,
	}
}
