package arp

import (
	"net"

	"github.com/terassyi/goarp/packet/ipv4"
)

const registrationPort int = 666

// forceRegistration connects a throwaway datagram socket to pa and writes
// nothing, which makes the kernel materialize its neighbor entry.
func forceRegistration(pa ipv4.IPAddress) error {
	conn, err := net.DialUDP("udp4", nil, &net.UDPAddr{IP: net.IP(pa.Bytes()), Port: registrationPort})
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Write(nil)
	return err
}
