package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/terassyi/goarp/arp"
	"github.com/terassyi/goarp/config"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

type ApplyCommand struct {
	handleFlags
	Config string
	Delete bool
}

func (a *ApplyCommand) Name() string {
	return "apply"
}

func (a *ApplyCommand) Synopsis() string {
	return "add or delete the static entries of a config file"
}

func (a *ApplyCommand) Usage() string {
	return `goarp apply -c <config file> [-delete]:
	add every [[entry]] of the file, or delete them with -delete
`
}

func (a *ApplyCommand) SetFlags(f *flag.FlagSet) {
	a.handleFlags.SetFlags(f)
	f.StringVar(&a.Config, "c", "", "config file")
	f.BoolVar(&a.Delete, "delete", false, "delete the entries instead of adding them")
}

func (a *ApplyCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if a.Config == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	c, err := config.Load(a.Config)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	h, err := a.open()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer h.Close()

	if failed := apply(h, c, a.Delete); failed > 0 {
		fmt.Printf("%d of %d entries failed\n", failed, len(c.Entries))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type table interface {
	Add(pa ipv4.IPAddress, ha ethernet.HardwareAddress) error
	Delete(pa ipv4.IPAddress) error
}

// apply keeps going past a failed entry and returns the number of failures.
func apply(t table, c *config.Config, del bool) int {
	failed := 0
	for _, e := range c.Entries {
		ip, mac, err := e.Addresses()
		if err == nil {
			if del {
				err = t.Delete(ip)
			} else {
				err = t.Add(ip, mac)
			}
		}
		if err != nil {
			fail(err)
			failed++
			continue
		}
		if del {
			fmt.Printf("%s deleted\n", ip)
		} else {
			fmt.Println(arp.Entry{IP: ip, MAC: mac})
		}
	}
	return failed
}
