// Package arp reads and mutates the kernel ARP table.
//
// A Handle binds the platform's control channel. Add, Delete and Get each
// perform one synchronous control call. Walk visits every resolved entry
// through a Walker chosen at build time for the target platform.
package arp

import (
	"fmt"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

// Entry maps a protocol address to the link address the kernel resolved
// for it.
type Entry struct {
	IP  ipv4.IPAddress
	MAC ethernet.HardwareAddress
}

func (e Entry) String() string {
	return fmt.Sprintf("%s at %s", e.IP, e.MAC)
}

// Handler is called once per entry during a walk. Returning anything other
// than Continue stops the walk, and the value becomes the walk's result.
type Handler func(e Entry) int

const Continue int = 0

type Table []Entry

func (t Table) SearchMAC(ip ipv4.IPAddress) (ethernet.HardwareAddress, bool) {
	for _, e := range t {
		if e.IP == ip {
			return e.MAC, true
		}
	}
	return ethernet.HardwareAddress{}, false
}

func (t Table) SearchIP(mac ethernet.HardwareAddress) (ipv4.IPAddress, bool) {
	for _, e := range t {
		if e.MAC == mac {
			return e.IP, true
		}
	}
	return ipv4.IPAddress{}, false
}

// Collect walks w to the end and returns every entry seen.
func Collect(w Walker) (Table, error) {
	var t Table
	if _, err := w.Walk(func(e Entry) int {
		t = append(t, e)
		return Continue
	}); err != nil {
		return nil, err
	}
	return t, nil
}
