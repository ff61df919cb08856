package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/terassyi/goarp/arp"
	"github.com/terassyi/goarp/logger"
)

// handleFlags are accepted by every subcommand.
type handleFlags struct {
	Debug bool
}

func (h *handleFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&h.Debug, "d", false, "debug mode")
}

func (h *handleFlags) open() (*arp.Handle, error) {
	return arp.Open(arp.WithLogger(logger.New(h.Debug, "arp")))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
}
