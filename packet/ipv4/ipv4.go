package ipv4

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	AddressLength int = 4
	AddressBits   int = 32
)

type IPAddress [4]byte

func NewIPAddress(addr []byte) IPAddress {
	return IPAddress{addr[0], addr[1], addr[2], addr[3]}
}

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func (ipaddr IPAddress) Uint32() uint32 {
	return binary.BigEndian.Uint32(ipaddr[:])
}

// Address copies a 4 byte network order address.
func Address(addr []byte) (*IPAddress, error) {
	if len(addr) != AddressLength {
		return nil, fmt.Errorf("invalid address %v", addr)
	}
	return &IPAddress{addr[0], addr[1], addr[2], addr[3]}, nil
}

// StringToIPAddress parses dotted decimal notation. A trailing "/32" is
// accepted since a protocol address always carries a full host prefix.
func StringToIPAddress(addr string) (*IPAddress, error) {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		if addr[i+1:] != strconv.Itoa(AddressBits) {
			return nil, fmt.Errorf("invalid host address %q", addr)
		}
		addr = addr[:i]
	}
	s := strings.Split(addr, ".")
	if len(s) != AddressLength {
		return nil, fmt.Errorf("invalid address %q", addr)
	}
	var address []byte
	for _, v := range s {
		if len(v) == 0 || len(v) > 3 || strings.Trim(v, "0123456789") != "" {
			return nil, fmt.Errorf("invalid address %q", addr)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", addr, err)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("invalid address %q: octet %d out of range", addr, n)
		}
		address = append(address, byte(n))
	}
	return Address(address)
}

// Mask returns the netmask for a prefix length. Lengths outside 0..32 are
// clamped.
func Mask(bits int) IPAddress {
	if bits <= 0 {
		return IPAddress{}
	}
	if bits > AddressBits {
		bits = AddressBits
	}
	var m IPAddress
	binary.BigEndian.PutUint32(m[:], ^uint32(0)<<(AddressBits-bits))
	return m
}

func (ipaddr IPAddress) And(mask IPAddress) IPAddress {
	var r IPAddress
	for i := range ipaddr {
		r[i] = ipaddr[i] & mask[i]
	}
	return r
}

// Contains reports whether other lies in the network ipaddr/bits.
func (ipaddr IPAddress) Contains(bits int, other IPAddress) bool {
	m := Mask(bits)
	return ipaddr.And(m) == other.And(m)
}
