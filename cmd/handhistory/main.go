package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse hand history files and print structured hands"`
	Watch   WatchCmd         `cmd:"" help:"Watch a directory and import new hand history files"`
	Rooms   RoomsCmd         `cmd:"" help:"List supported rooms"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handhistory"),
		kong.Description("Parse poker room hand history transcripts into structured hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
