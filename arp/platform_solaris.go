package arp

import (
	"github.com/terassyi/goarp/transport"
)

// Solaris and illumos take control calls and the MIB2 stream on /dev/ip.
// SIOCSARP alone does not put the entry in ipNetToMediaTable, so add is
// followed by a forced registration.
func openPlatform(h *Handle) error {
	d, err := transport.OpenDevice()
	if err != nil {
		return newError("open", KindTransport, err)
	}
	h.ctl = d
	if h.walker == nil {
		h.walker = NewMIB2Walker(d, h.logger)
	}
	if h.register == nil {
		h.register = forceRegistration
	}
	return nil
}
