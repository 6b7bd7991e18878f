package main

import (
	"fmt"

	"github.com/iotaledger/txcodec/packages/secp256k1fx"
	"github.com/iotaledger/txcodec/packages/serialization"
)

func execSignCommand(command *cliCommand) {
	helpPtr := command.Bool("help", false, "show this help screen")
	txPtr := command.String("tx", "", "the unsigned transaction (cb58 or 0x prefixed hex)")
	keysPtr := command.StringSlice("key", nil, "the private keys (PrivateKey-...) of the owners of the spent outputs")

	log := parseCommand(command)
	defer func() { _ = log.Sync() }()

	if *helpPtr {
		printUsage(command)
	}
	if *txPtr == "" {
		printUsage(command, "tx has to be set")
	}
	if len(*keysPtr) == 0 {
		printUsage(command, "at least one key has to be set")
	}

	keychain := secp256k1fx.NewKeychain(log.Named("keychain"))
	for _, key := range *keysPtr {
		privateKey, err := secp256k1fx.PrivateKeyFromString(key)
		if err != nil {
			printUsage(command, err.Error())
		}
		keychain.Add(privateKey)
	}

	unsignedTransaction, _, err := parseTransaction(*txPtr, true)
	if err != nil {
		printUsage(command, err.Error())
	}

	signedTransaction, err := unsignedTransaction.Sign(keychain)
	if err != nil {
		printUsage(command, err.Error())
	}

	hexTransaction, err := serialization.Convert(signedTransaction.Bytes(), serialization.Buffer, serialization.Hex, 0)
	if err != nil {
		printUsage(command, err.Error())
	}

	log.Infow("signed transaction", "id", signedTransaction.ID(), "credentials", len(signedTransaction.Credentials()))
	fmt.Printf("id:   %s\n", signedTransaction.ID())
	fmt.Printf("cb58: %s\n", signedTransaction.CB58())
	fmt.Printf("hex:  0x%s\n", hexTransaction)
}
