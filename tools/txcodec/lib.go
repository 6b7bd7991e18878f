package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/txcodec/packages/configuration"
	"github.com/iotaledger/txcodec/packages/constants"
	"github.com/iotaledger/txcodec/packages/jsonmodels"
	"github.com/iotaledger/txcodec/packages/serialization"
)

// Exit should be used inside panic instead of os.Exit(). This will allow to call deferred statements.
type Exit struct{ Code int }

func printUsage(command *cliCommand, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(os.Stderr, "\nERROR:\n  %s\n", optionalErrorMessage[0])
	}

	if command == nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "USAGE:")
		fmt.Fprintln(os.Stderr, "  txcodec [COMMAND] [FLAGS]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "COMMANDS:")
		fmt.Fprintln(os.Stderr, "  decode    decodes a signed or unsigned transaction and prints it as JSON")
		fmt.Fprintln(os.Stderr, "  encode    encodes the JSON form of an unsigned transaction")
		fmt.Fprintln(os.Stderr, "  burn      prints the amount of an asset that is burned by a transaction")
		fmt.Fprintln(os.Stderr, "  sign      signs an unsigned transaction")
		fmt.Fprintln(os.Stderr, "  keygen    generates a new private key and prints its address")
		fmt.Fprintln(os.Stderr, "  help      prints this usage information")
	} else {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "USAGE:")
		fmt.Fprintf(os.Stderr, "  txcodec %s [FLAGS]\n", command.name)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "FLAGS:")
		command.PrintDefaults()
	}

	if len(optionalErrorMessage) >= 1 {
		panic(Exit{1})
	}
	panic(Exit{0})
}

// parseCommand parses the flags of the command and loads the shared parameters.
func parseCommand(command *cliCommand) *zap.SugaredLogger {
	if err := command.Parse(os.Args[2:]); err != nil {
		printUsage(command, err.Error())
	}

	configFile, _ := command.GetString("config")
	if _, err := configuration.Load(command.FlagSet, config, "txcodec", configFile); err != nil {
		printUsage(command, err.Error())
	}

	log, err := newLogger(config.Logger.Level, config.Logger.Development)
	if err != nil {
		printUsage(command, err.Error())
	}

	return log
}

func newLogger(level string, development bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewProductionConfig()
	if development {
		loggerConfig = zap.NewDevelopmentConfig()
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	loggerConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	loggerConfig.OutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// decodeInput decodes a hex ("0x" prefixed) or cb58 encoded command line value.
func decodeInput(value string) ([]byte, error) {
	if strings.HasPrefix(value, "0x") {
		return serialization.ToBytes(value, serialization.Hex)
	}

	return serialization.ToBytes(value, serialization.CB58)
}

func jsonContext() jsonmodels.Context {
	hrp := config.Network.HRP
	if hrp == "" {
		hrp = constants.HRP(config.Network.ID)
	}

	return jsonmodels.Context{
		ChainAlias: config.Chain.Alias,
		HRP:        hrp,
	}
}

func printJSON(value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}
