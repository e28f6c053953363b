package cmdutil

import "strings"

// EnvPrefix prefixes every environment variable read through viper.
const EnvPrefix = "REPORTGEN"

// EnvKeyReplacer maps viper keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvName returns the environment variable of a viper key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(key))
}
