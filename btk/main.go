package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hmlb/btctrack/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	cmd.Register(commander)

	// shell completion: exits by itself when invoked by the shell
	sub := make(map[string]*complete.Command, len(cmd.CommandNames()))
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{Args: predict.Files("*")}
	}
	complete.Complete("btk", &complete.Command{Sub: sub})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
