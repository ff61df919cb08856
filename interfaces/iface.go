// Package interfaces enumerates the host's configured IPv4 interfaces.
package interfaces

import (
	"fmt"

	"github.com/terassyi/goarp/packet/ipv4"
)

// Interface is one configured address on a device.
type Interface struct {
	Name      string
	Addr      ipv4.IPAddress
	PrefixLen int
}

func (i Interface) String() string {
	return fmt.Sprintf("%s %s/%d", i.Name, i.Addr, i.PrefixLen)
}

// Registry visits interfaces in enumeration order until fn returns false.
type Registry interface {
	Loop(fn func(iface Interface) bool) error
	Close() error
}

// Static is a fixed list of interfaces.
type Static []Interface

func (s Static) Loop(fn func(iface Interface) bool) error {
	for _, i := range s {
		if !fn(i) {
			return nil
		}
	}
	return nil
}

func (s Static) Close() error {
	return nil
}
