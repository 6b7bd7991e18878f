package main

import (
	"github.com/iotaledger/txcodec/packages/avm"
	"github.com/iotaledger/txcodec/packages/jsonmodels"
	"github.com/iotaledger/txcodec/packages/txs"
)

func execDecodeCommand(command *cliCommand) {
	helpPtr := command.Bool("help", false, "show this help screen")
	txPtr := command.String("tx", "", "the transaction (cb58 or 0x prefixed hex)")
	unsignedPtr := command.Bool("unsigned", false, "the transaction is not signed")

	log := parseCommand(command)
	defer func() { _ = log.Sync() }()

	if *helpPtr {
		printUsage(command)
	}
	if *txPtr == "" {
		printUsage(command, "tx has to be set")
	}

	unsignedTransaction, signedTransaction, err := parseTransaction(*txPtr, *unsignedPtr)
	if err != nil {
		printUsage(command, err.Error())
	}

	var model interface{}
	if signedTransaction != nil {
		model, err = jsonmodels.NewSignedTransaction(signedTransaction, jsonContext())
	} else {
		model, err = jsonmodels.NewTransaction(unsignedTransaction, jsonContext())
	}
	if err != nil {
		printUsage(command, err.Error())
	}

	log.Debugw("decoded transaction", "id", unsignedTransaction.ID(), "signed", signedTransaction != nil)
	if err = printJSON(model); err != nil {
		printUsage(command, err.Error())
	}
}

// parseTransaction parses a signed or unsigned transaction of the avm chain. The returned UnsignedTransaction is
// always set.
func parseTransaction(value string, unsigned bool) (*txs.UnsignedTransaction, *txs.SignedTransaction, error) {
	data, err := decodeInput(value)
	if err != nil {
		return nil, nil, err
	}

	if unsigned {
		unsignedTransaction, err := avm.ParseUnsignedTransaction(data)
		if err != nil {
			return nil, nil, err
		}

		return unsignedTransaction, nil, nil
	}

	signedTransaction, err := avm.ParseSignedTransaction(data)
	if err != nil {
		return nil, nil, err
	}

	return signedTransaction.UnsignedTransaction(), signedTransaction, nil
}
