package ethernet

import (
	"fmt"
	"net"
	"strings"
)

const AddressLength int = 6

type HardwareAddress [6]byte

var BroadcastAddress = HardwareAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

// Address copies the first six bytes of data.
func Address(data []byte) (*HardwareAddress, error) {
	if len(data) < AddressLength {
		return nil, fmt.Errorf("invalid hardware address %v", data)
	}
	addr := &HardwareAddress{}
	copy(addr[:], data[:AddressLength])
	return addr, nil
}

// StringToHardwareAddress parses colon or dash separated notation, one
// separator kind per address. Octets may be written with a single digit
// ("0:d:e:a:d:0").
func StringToHardwareAddress(s string) (*HardwareAddress, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	comp := strings.Split(s, sep)
	if len(comp) != AddressLength {
		return nil, fmt.Errorf("invalid hardware address %q", s)
	}
	for i, c := range comp {
		if len(c) == 0 || len(c) > 2 || !isHex(c) {
			return nil, fmt.Errorf("invalid hardware address %q", s)
		}
		if len(c) == 1 {
			comp[i] = "0" + c
		}
	}
	mac, err := net.ParseMAC(strings.Join(comp, ":"))
	if err != nil {
		return nil, err
	}
	return Address(mac)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
