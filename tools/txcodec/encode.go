package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iotaledger/txcodec/packages/jsonmodels"
	"github.com/iotaledger/txcodec/packages/serialization"
)

func execEncodeCommand(command *cliCommand) {
	helpPtr := command.Bool("help", false, "show this help screen")
	filePtr := command.String("file", "", "path of the JSON file that contains the unsigned transaction")

	log := parseCommand(command)
	defer func() { _ = log.Sync() }()

	if *helpPtr {
		printUsage(command)
	}
	if *filePtr == "" {
		printUsage(command, "file has to be set")
	}

	data, err := os.ReadFile(*filePtr)
	if err != nil {
		printUsage(command, err.Error())
	}

	model := &jsonmodels.Transaction{}
	if err = json.Unmarshal(data, model); err != nil {
		printUsage(command, err.Error())
	}

	unsignedTransaction, err := model.ToUnsignedTransaction()
	if err != nil {
		printUsage(command, err.Error())
	}

	hexTransaction, err := serialization.Convert(unsignedTransaction.Bytes(), serialization.Buffer, serialization.Hex, 0)
	if err != nil {
		printUsage(command, err.Error())
	}

	log.Debugw("encoded transaction", "id", unsignedTransaction.ID(), "codecVersion", unsignedTransaction.CodecVersion())
	fmt.Printf("id:  %s\n", unsignedTransaction.ID())
	fmt.Printf("hex: 0x%s\n", hexTransaction)
}
