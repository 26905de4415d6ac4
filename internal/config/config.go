// Package config binds the pathfind CLI's flags to viper, giving
// flag > env > file > default precedence over a pathfind.yaml config file
// and PATHFIND_* environment variables, per SPEC_FULL.md §6.2.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved set of run options for one invocation.
type Config struct {
	OutDir    string
	Indexed   bool
	BandIndex bool
	LogLevel  string
	LogFormat string
}

// Bind registers the run command's flags on fs and wires them into a fresh
// viper instance with the pathfind.yaml / PATHFIND_* search path.
func Bind(fs *pflag.FlagSet) *viper.Viper {
	fs.String("out-dir", "out", "output directory")
	fs.Bool("indexed", false, "name output files out/<idx>.txt instead of out/<mapName>_<label>.txt")
	fs.Bool("band-index", true, "enable the latitude-band acceleration index")
	fs.String("log-level", "info", "one of debug|info|warn|error")
	fs.String("log-format", "console", "one of console|json")
	fs.BoolP("verbose", "v", false, "shorthand for --log-level=debug")

	v := viper.New()
	v.SetEnvPrefix("PATHFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("pathfind")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pathfind")

	_ = v.BindPFlags(fs)
	return v
}

// Resolve reads v (after flags have been parsed and the optional config file
// merged in) into a Config.
func Resolve(v *viper.Viper) Config {
	level := v.GetString("log-level")
	if v.GetBool("verbose") {
		level = "debug"
	}
	return Config{
		OutDir:    v.GetString("out-dir"),
		Indexed:   v.GetBool("indexed"),
		BandIndex: v.GetBool("band-index"),
		LogLevel:  level,
		LogFormat: v.GetString("log-format"),
	}
}

// ReadConfigFile merges pathfind.yaml into v if one is found on its search
// path. A missing file is not an error; a malformed one is.
func ReadConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return err
	}
	return nil
}
