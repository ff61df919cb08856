package arp

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/terassyi/goarp/ioctl"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

const ProcNetArp = "/proc/net/arp"

const (
	fieldIPAddr int = iota
	fieldHWType
	fieldFlags
	fieldHWAddr
	fieldMask
	fieldDevice
)

// ProcWalker reads the text table exposed at Path, one entry per line:
// address, hw type, flags, hw address, mask, device.
type ProcWalker struct {
	Path string
}

func (w *ProcWalker) Walk(fn Handler) (int, error) {
	f, err := os.Open(w.Path)
	if err != nil {
		return Continue, newError("walk", KindTransport, err)
	}
	defer f.Close()
	return walkText(f, fn)
}

func walkText(r io.Reader, fn Handler) (int, error) {
	ret := Continue
	s := bufio.NewScanner(r)
	for s.Scan() {
		e, ok := parseLine(s.Text())
		if !ok {
			continue
		}
		if ret = fn(e); ret != Continue {
			return ret, nil
		}
	}
	if err := s.Err(); err != nil {
		return ret, newError("walk", KindTransport, err)
	}
	return ret, nil
}

// parseLine accepts only completed entries with well formed addresses. The
// header line fails the hex parse and is dropped like any malformed line.
func parseLine(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) <= fieldHWAddr {
		return Entry{}, false
	}
	if _, err := parseHex(fields[fieldHWType]); err != nil {
		return Entry{}, false
	}
	flags, err := parseHex(fields[fieldFlags])
	if err != nil || ioctl.Flags(flags)&ioctl.ATF_COM == 0 {
		return Entry{}, false
	}
	ip, err := ipv4.StringToIPAddress(fields[fieldIPAddr])
	if err != nil {
		return Entry{}, false
	}
	mac, err := ethernet.StringToHardwareAddress(fields[fieldHWAddr])
	if err != nil {
		return Entry{}, false
	}
	return Entry{IP: *ip, MAC: *mac}, true
}

func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
}
