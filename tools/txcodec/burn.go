package main

import (
	"fmt"

	"github.com/iotaledger/txcodec/packages/ids"
)

func execBurnCommand(command *cliCommand) {
	helpPtr := command.Bool("help", false, "show this help screen")
	txPtr := command.String("tx", "", "the transaction (cb58 or 0x prefixed hex)")
	unsignedPtr := command.Bool("unsigned", false, "the transaction is not signed")
	assetPtr := command.String("asset", "", "the cb58 encoded ID of the asset")

	log := parseCommand(command)
	defer func() { _ = log.Sync() }()

	if *helpPtr {
		printUsage(command)
	}
	if *txPtr == "" {
		printUsage(command, "tx has to be set")
	}
	if *assetPtr == "" {
		printUsage(command, "asset has to be set")
	}

	assetID, err := ids.IDFromCB58(*assetPtr)
	if err != nil {
		printUsage(command, err.Error())
	}

	unsignedTransaction, _, err := parseTransaction(*txPtr, *unsignedPtr)
	if err != nil {
		printUsage(command, err.Error())
	}

	inputTotal, err := unsignedTransaction.InputTotal(assetID)
	if err != nil {
		printUsage(command, err.Error())
	}
	outputTotal, err := unsignedTransaction.OutputTotal(assetID)
	if err != nil {
		printUsage(command, err.Error())
	}
	burn, err := unsignedTransaction.Burn(assetID)
	if err != nil {
		printUsage(command, err.Error())
	}

	log.Debugw("computed burn", "asset", assetID, "burn", burn)
	fmt.Printf("inputs:  %d\n", inputTotal)
	fmt.Printf("outputs: %d\n", outputTotal)
	fmt.Printf("burn:    %d\n", burn)
}
