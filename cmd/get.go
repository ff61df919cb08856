package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type GetCommand struct {
	handleFlags
}

func (g *GetCommand) Name() string {
	return "get"
}

func (g *GetCommand) Synopsis() string {
	return "print the hardware address of an entry"
}

func (g *GetCommand) Usage() string {
	return `goarp get <ip address>:
	print the entry for the address
`
}

func (g *GetCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	h, err := g.open()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer h.Close()

	mac, err := h.GetString(f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s at %s\n", f.Arg(0), mac)
	return subcommands.ExitSuccess
}
