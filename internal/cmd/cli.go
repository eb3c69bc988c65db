package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/keypoll/layout"
)

// CLI is the root of the keypoll command tree.
type CLI struct {
	ConfigFile string `name:"config" help:"Configuration file (json, yaml or toml); flags and env override it" env:"KEYPOLL_CONFIG"`
	Log        struct {
		Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"KEYPOLL_LOG_LEVEL"`
		File  string `help:"Also write logs to this file" env:"KEYPOLL_LOG_FILE"`
	} `embed:"" prefix:"log."`

	Listen  Listen        `cmd:"" help:"Print key events from the live keyboard"`
	Replay  Replay        `cmd:"" help:"Print key events from a frame script"`
	Symbols Symbols       `cmd:"" help:"List key names and dead-key compositions"`
	Config  ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// Vars holds the interpolation variables referenced by command struct tags.
func Vars() kong.Vars {
	return kong.Vars{
		"default_symbols": layout.DefaultSymbols,
	}
}
