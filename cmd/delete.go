package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type DeleteCommand struct {
	handleFlags
}

func (d *DeleteCommand) Name() string {
	return "delete"
}

func (d *DeleteCommand) Synopsis() string {
	return "delete an entry"
}

func (d *DeleteCommand) Usage() string {
	return `goarp delete <ip address>:
	delete the entry for the address
`
}

func (d *DeleteCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	h, err := d.open()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer h.Close()

	if err := h.DeleteString(f.Arg(0)); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s deleted\n", f.Arg(0))
	return subcommands.ExitSuccess
}
