package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "txcodec 0.1")

	defer func() {
		if r := recover(); r != nil {
			if exit, ok := r.(Exit); ok {
				os.Exit(exit.Code)
			}
			panic(r)
		}
	}()

	if len(os.Args) < 2 {
		printUsage(nil)
	}

	command := newCommand(os.Args[1])

	switch os.Args[1] {
	case "decode":
		execDecodeCommand(command)
	case "encode":
		execEncodeCommand(command)
	case "burn":
		execBurnCommand(command)
	case "sign":
		execSignCommand(command)
	case "keygen":
		execKeygenCommand(command)
	case "help":
		printUsage(nil)
	default:
		printUsage(nil, "unknown [COMMAND]: "+os.Args[1])
	}
}
