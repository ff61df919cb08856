package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/terassyi/goarp/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&cmd.ShowCommand{}, "")
	subcommands.Register(&cmd.GetCommand{}, "")
	subcommands.Register(&cmd.AddCommand{}, "")
	subcommands.Register(&cmd.DeleteCommand{}, "")
	subcommands.Register(&cmd.ApplyCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
