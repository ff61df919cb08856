package ioctl

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

type sockaddr struct {
	family uint16
	addr   [14]byte
}

// arpreq mirrors struct arpreq from <net/if_arp.h>.
type arpreq struct {
	pa      sockaddr
	ha      sockaddr
	flags   int32
	netmask sockaddr
	dev     [DeviceNameSize]byte
}

func (op Op) number() uintptr {
	switch op {
	case SIOCSARP:
		return unix.SIOCSARP
	case SIOCDARP:
		return unix.SIOCDARP
	default:
		return unix.SIOCGARP
	}
}

func marshal(r *Request) (*arpreq, error) {
	if err := checkDevice(r.Device); err != nil {
		return nil, err
	}
	ar := &arpreq{}
	ar.pa.family = unix.AF_INET
	// sockaddr_in: port in addr[0:2], address in addr[2:6]
	copy(ar.pa.addr[2:6], r.Protocol[:])
	ar.ha.family = unix.ARPHRD_ETHER
	copy(ar.ha.addr[:6], r.Hardware[:])
	ar.flags = int32(r.Flags)
	copy(ar.dev[:DeviceNameSize-1], r.Device)
	return ar, nil
}

func unmarshal(ar *arpreq, r *Request) {
	copy(r.Hardware[:], ar.ha.addr[:6])
	r.Flags = Flags(ar.flags)
	if i := bytes.IndexByte(ar.dev[:], 0); i > 0 {
		r.Device = string(ar.dev[:i])
	}
}

// Do issues op on fd. For SIOCGARP the reply is written back into r.
func Do(fd int, op Op, r *Request) error {
	ar, err := marshal(r)
	if err != nil {
		return err
	}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), op.number(), uintptr(unsafe.Pointer(ar))); errno != 0 {
		return errno
	}
	if op == SIOCGARP {
		unmarshal(ar, r)
	}
	return nil
}
