package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type AddCommand struct {
	handleFlags
}

func (a *AddCommand) Name() string {
	return "add"
}

func (a *AddCommand) Synopsis() string {
	return "add a permanent entry"
}

func (a *AddCommand) Usage() string {
	return `goarp add <ip address> <hardware address>:
	add a permanent, completed entry
`
}

func (a *AddCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	h, err := a.open()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer h.Close()

	if err := h.AddString(f.Arg(0), f.Arg(1)); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s at %s added\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}
