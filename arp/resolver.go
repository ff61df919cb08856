package arp

import (
	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/packet/ipv4"
)

// Resolver finds the device that owns the subnet of a protocol address.
type Resolver struct {
	registry interfaces.Registry
}

func NewResolver(r interfaces.Registry) *Resolver {
	return &Resolver{registry: r}
}

// Resolve returns the first interface, in registry order, whose configured
// network contains pa.
func (r *Resolver) Resolve(pa ipv4.IPAddress) (string, error) {
	var (
		device string
		found  bool
	)
	err := r.registry.Loop(func(iface interfaces.Interface) bool {
		if iface.Addr.Contains(iface.PrefixLen, pa) {
			device, found = iface.Name, true
			return false
		}
		return true
	})
	if err != nil {
		return "", newError("resolve", KindTransport, err)
	}
	if !found {
		return "", newError("resolve", KindNotFound, nil)
	}
	return device, nil
}

func (r *Resolver) Close() error {
	return r.registry.Close()
}
