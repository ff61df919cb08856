package ioctl

import (
	"fmt"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

type Op int

const (
	SIOCSARP Op = iota
	SIOCDARP
	SIOCGARP
)

func (op Op) String() string {
	switch op {
	case SIOCSARP:
		return "SIOCSARP"
	case SIOCDARP:
		return "SIOCDARP"
	case SIOCGARP:
		return "SIOCGARP"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

type Flags int32

// arp_flags bits, identical on every platform we bind.
const (
	ATF_COM  Flags = 0x02
	ATF_PERM Flags = 0x04
)

const DeviceNameSize int = 16

// Request is a control-call ARP request. Device is only sent on platforms
// whose arpreq carries an interface name.
type Request struct {
	Protocol ipv4.IPAddress
	Hardware ethernet.HardwareAddress
	Flags    Flags
	Device   string
}

func (r *Request) Completed() bool {
	return r.Flags&ATF_COM != 0
}

func (r *Request) String() string {
	s := fmt.Sprintf("pa=%s ha=%s flags=%#x", r.Protocol, r.Hardware, int32(r.Flags))
	if r.Device != "" {
		s += " dev=" + r.Device
	}
	return s
}

func checkDevice(name string) error {
	if len(name) >= DeviceNameSize {
		return fmt.Errorf("device name %q is too long", name)
	}
	return nil
}
