package interfaces

import (
	"fmt"

	"github.com/terassyi/goarp/packet/ipv4"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// Netlink reads links and their IPv4 addresses over a route netlink socket
// owned by the registry.
type Netlink struct {
	handle *netlink.Handle
}

func NewNetlink() (*Netlink, error) {
	h, err := netlink.NewHandle(unix.NETLINK_ROUTE)
	if err != nil {
		return nil, fmt.Errorf("netlink open error: %w", err)
	}
	return &Netlink{handle: h}, nil
}

func (n *Netlink) Loop(fn func(iface Interface) bool) error {
	links, err := n.handle.LinkList()
	if err != nil {
		return fmt.Errorf("failed to list links: %w", err)
	}
	for _, link := range links {
		attrs := link.Attrs()
		addrs, err := n.handle.AddrList(link, netlink.FAMILY_V4)
		if err != nil {
			return fmt.Errorf("failed to list addresses of %s: %w", attrs.Name, err)
		}
		for _, addr := range addrs {
			ip := addr.IP.To4()
			if ip == nil {
				continue
			}
			ones, _ := addr.Mask.Size()
			if !fn(Interface{Name: attrs.Name, Addr: ipv4.NewIPAddress(ip), PrefixLen: ones}) {
				return nil
			}
		}
	}
	return nil
}

func (n *Netlink) Close() error {
	n.handle.Close()
	return nil
}
