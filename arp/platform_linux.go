package arp

import (
	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/transport"
)

// Linux scopes SIOCSARP/SIOCGARP to a device through arp_dev and exposes
// the table as text under /proc.
func openPlatform(h *Handle) error {
	s, err := transport.OpenSocket()
	if err != nil {
		return newError("open", KindTransport, err)
	}
	h.ctl = s
	if h.resolver == nil {
		reg, err := interfaces.NewNetlink()
		if err != nil {
			s.Close()
			return newError("open", KindTransport, err)
		}
		h.resolver = NewResolver(reg)
	}
	if h.walker == nil {
		h.walker = &ProcWalker{Path: ProcNetArp}
	}
	return nil
}
