// Package configuration defines command line parameters from tagged structs and binds them into viper, so that
// every parameter can be set by flag, environment variable or config file.
package configuration

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefineParameters defines a flag for every field of the struct that parameters points to. The flag is named
// "<prefix>.<name>" where name is taken from the "name" tag or the lower camel cased field name. Nested structs
// extend the prefix. Default values and usage are taken from the "default" and "usage" tags.
func DefineParameters(flagSet *pflag.FlagSet, parameters interface{}, prefix string) {
	val := reflect.ValueOf(parameters).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		valueAddr := valueField.Addr().Interface()
		name := typeField.Tag.Get("name")
		if name == "" {
			name = lowerCamelCase(typeField.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		usage := typeField.Tag.Get("usage")
		defaultValue := typeField.Tag.Get("default")

		switch valueField.Interface().(type) {
		case bool:
			parsedDefault, err := strconv.ParseBool(defaultValue)
			if err != nil {
				panic(err)
			}
			flagSet.BoolVar(valueAddr.(*bool), name, parsedDefault, usage)
		case int:
			parsedDefault, err := strconv.Atoi(defaultValue)
			if err != nil {
				panic(err)
			}
			flagSet.IntVar(valueAddr.(*int), name, parsedDefault, usage)
		case uint16:
			parsedDefault, err := strconv.ParseUint(defaultValue, 10, 16)
			if err != nil {
				panic(err)
			}
			flagSet.Uint16Var(valueAddr.(*uint16), name, uint16(parsedDefault), usage)
		case uint32:
			parsedDefault, err := strconv.ParseUint(defaultValue, 10, 32)
			if err != nil {
				panic(err)
			}
			flagSet.Uint32Var(valueAddr.(*uint32), name, uint32(parsedDefault), usage)
		case string:
			flagSet.StringVar(valueAddr.(*string), name, defaultValue, usage)
		default:
			DefineParameters(flagSet, valueAddr, name)
		}
	}
}

// Load binds the flags into a new viper instance, reads environment variables (dots replaced by underscores and
// prefixed with envPrefix) and the optional config file, and writes the resulting values back into parameters.
func Load(flagSet *pflag.FlagSet, parameters interface{}, envPrefix, configFile string) (*viper.Viper, error) {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.BindPFlags(flagSet); err != nil {
		return nil, errors.Errorf("failed to bind flags: %w", err)
	}
	if configFile != "" {
		config.SetConfigFile(configFile)
		if err := config.ReadInConfig(); err != nil {
			return nil, errors.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if err := apply(config, parameters, ""); err != nil {
		return nil, err
	}

	return config, nil
}

func apply(config *viper.Viper, parameters interface{}, prefix string) error {
	val := reflect.ValueOf(parameters).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := typeField.Tag.Get("name")
		if name == "" {
			name = lowerCamelCase(typeField.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch valueField.Interface().(type) {
		case bool:
			valueField.SetBool(config.GetBool(name))
		case int:
			valueField.SetInt(int64(config.GetInt(name)))
		case uint16, uint32:
			valueField.SetUint(uint64(config.GetUint32(name)))
		case string:
			valueField.SetString(config.GetString(name))
		default:
			if valueField.Kind() != reflect.Struct {
				return errors.Errorf("unsupported parameter type %s of %s", valueField.Type(), name)
			}
			if err := apply(config, valueField.Addr().Interface(), name); err != nil {
				return err
			}
		}
	}

	return nil
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
