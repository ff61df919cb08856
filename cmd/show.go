package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/terassyi/goarp/arp"
	"github.com/valyala/fasttemplate"
)

const (
	TMPL_IP  = "ip"
	TMPL_MAC = "mac"

	defaultFormat = "{{" + TMPL_IP + "}} at {{" + TMPL_MAC + "}}"
)

type ShowCommand struct {
	handleFlags
	Format string
}

func (s *ShowCommand) Name() string {
	return "show"
}

func (s *ShowCommand) Synopsis() string {
	return "print every resolved entry"
}

func (s *ShowCommand) Usage() string {
	return `goarp show [-f <format>]:
	print the kernel ARP table. Available variables: {{ip}}, {{mac}}.
`
}

func (s *ShowCommand) SetFlags(f *flag.FlagSet) {
	s.handleFlags.SetFlags(f)
	f.StringVar(&s.Format, "f", defaultFormat, "output format")
}

func (s *ShowCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := s.open()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer h.Close()

	if _, err := show(os.Stdout, h, s.Format); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// show writes one line per entry and returns how many were written.
func show(w io.Writer, walker arp.Walker, format string) (int, error) {
	t, err := fasttemplate.NewTemplate(format, "{{", "}}")
	if err != nil {
		return 0, fmt.Errorf("invalid format %q: %w", format, err)
	}
	n := 0
	var werr error
	_, err = walker.Walk(func(e arp.Entry) int {
		line := t.ExecuteString(map[string]interface{}{
			TMPL_IP:  e.IP.String(),
			TMPL_MAC: e.MAC.String(),
		})
		if _, werr = fmt.Fprintln(w, line); werr != nil {
			return 1
		}
		n++
		return arp.Continue
	})
	if err != nil {
		return n, err
	}
	return n, werr
}
