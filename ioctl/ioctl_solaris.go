package ioctl

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

type sockaddr struct {
	family uint16
	addr   [14]byte
}

// arpreq mirrors struct arpreq from <net/if_arp.h>. There is no device
// field here.
type arpreq struct {
	pa    sockaddr
	ha    sockaddr
	flags int32
}

func (op Op) number() int32 {
	switch op {
	case SIOCSARP:
		return int32(unix.SIOCSARP)
	case SIOCDARP:
		return int32(unix.SIOCDARP)
	default:
		return int32(unix.SIOCGARP)
	}
}

func marshal(r *Request) *arpreq {
	ar := &arpreq{}
	ar.pa.family = unix.AF_INET
	copy(ar.pa.addr[2:6], r.Protocol[:])
	ar.ha.family = unix.AF_UNSPEC
	copy(ar.ha.addr[:6], r.Hardware[:])
	ar.flags = int32(r.Flags)
	return ar
}

// Do issues op on a STREAMS descriptor through I_STR. For SIOCGARP the
// reply is written back into r.
func Do(fd int, op Op, r *Request) error {
	ar := marshal(r)
	s := &unix.Strioctl{
		Cmd: op.number(),
		Len: int32(unsafe.Sizeof(*ar)),
		Dp:  (*int8)(unsafe.Pointer(ar)),
	}
	if _, err := unix.IoctlSetStrioctlRetInt(fd, unix.I_STR, s); err != nil {
		return err
	}
	if op == SIOCGARP {
		copy(r.Hardware[:], ar.ha.addr[:6])
		r.Flags = Flags(ar.flags)
	}
	return nil
}
