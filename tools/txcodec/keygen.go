package main

import (
	"fmt"

	"github.com/iotaledger/txcodec/packages/address"
	"github.com/iotaledger/txcodec/packages/secp256k1fx"
)

func execKeygenCommand(command *cliCommand) {
	helpPtr := command.Bool("help", false, "show this help screen")

	log := parseCommand(command)
	defer func() { _ = log.Sync() }()

	if *helpPtr {
		printUsage(command)
	}

	privateKey, shortID, err := secp256k1fx.NewKeychain(log.Named("keychain")).Generate()
	if err != nil {
		printUsage(command, err.Error())
	}

	ctx := jsonContext()
	formattedAddress, err := address.Format(ctx.ChainAlias, ctx.HRP, shortID)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Printf("private key: %s\n", secp256k1fx.PrivateKeyToString(privateKey))
	fmt.Printf("address:     %s\n", formattedAddress)
}
