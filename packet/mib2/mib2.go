// Package mib2 encodes and decodes the TPI option management messages used
// to read the IP neighbor table from a STREAMS /dev/ip device.
package mib2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

/*
   request:  T_optmgmt_req | opthdr{level=MIB2_IP, name=0, len=0}
   reply:    T_optmgmt_ack | opthdr   (control part)
             ipNetToMediaEntry...      (data part, possibly split)
*/

// TPI primitive types.
const (
	T_ERROR_ACK   int32 = 5
	T_OPTMGMT_REQ int32 = 9
	T_OPTMGMT_ACK int32 = 22
)

// MGMT_flags values.
const (
	T_SUCCESS int32 = 0x020
	T_FAILURE int32 = 0x040
	T_CURRENT int32 = 0x080
)

// Option levels and names.
const (
	MIB2_IP       uint32 = 0
	MIB2_IP_MEDIA uint32 = 22
)

// ipNetToMediaType values.
const (
	MEDIA_TYPE_OTHER   int32 = 1
	MEDIA_TYPE_INVALID int32 = 2
	MEDIA_TYPE_DYNAMIC int32 = 3
	MEDIA_TYPE_STATIC  int32 = 4
)

// ntm_flags bits, from <inet/arp.h>.
const (
	ACE_F_PERMANENT int32 = 0x0001
	ACE_F_RESOLVED  int32 = 0x0008
)

const OctetLength int = 32

var order = binary.NativeEndian

type OptMgmtReq struct {
	PrimType  int32
	OptLength int32
	OptOffset int32
	MgmtFlags int32
}

type OptMgmtAck struct {
	PrimType  int32
	OptLength int32
	OptOffset int32
	MgmtFlags int32
}

type ErrorAck struct {
	PrimType  int32
	ErrorPrim int32
	TLIError  int32
	UnixError int32
}

type OptHeader struct {
	Level uint32
	Name  uint32
	Len   uint32
}

type Octet struct {
	Length int32
	Bytes  [OctetLength]byte
}

type NetToMediaEntry struct {
	IfIndex     Octet
	PhysAddress Octet
	NetAddress  [4]byte
	Type        int32
	Mask        Octet
	Flags       int32
}

var (
	AckSize       = binary.Size(OptMgmtAck{})
	ErrorAckSize  = binary.Size(ErrorAck{})
	OptHeaderSize = binary.Size(OptHeader{})
	EntrySize     = binary.Size(NetToMediaEntry{})
)

// NewRequest builds the control part asking for every object at the IP
// level in its current state.
func NewRequest() ([]byte, error) {
	req := OptMgmtReq{
		PrimType:  T_OPTMGMT_REQ,
		OptLength: int32(OptHeaderSize),
		OptOffset: int32(binary.Size(OptMgmtReq{})),
		MgmtFlags: T_CURRENT,
	}
	opt := OptHeader{Level: MIB2_IP}
	buf := bytes.NewBuffer(make([]byte, 0, int(req.OptOffset)+OptHeaderSize))
	if err := binary.Write(buf, order, req); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, order, opt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrimType returns the primitive type of a control message.
func PrimType(ctl []byte) (int32, bool) {
	if len(ctl) < 4 {
		return 0, false
	}
	return int32(order.Uint32(ctl)), true
}

// ParseAck decodes an option management ack and the option header that
// follows it. A missing option header decodes as zero.
func ParseAck(ctl []byte) (*OptMgmtAck, *OptHeader, error) {
	if len(ctl) < AckSize {
		return nil, nil, fmt.Errorf("short ack: %d bytes", len(ctl))
	}
	ack := &OptMgmtAck{}
	buf := bytes.NewReader(ctl)
	if err := binary.Read(buf, order, ack); err != nil {
		return nil, nil, err
	}
	opt := &OptHeader{}
	if len(ctl) >= AckSize+OptHeaderSize {
		if err := binary.Read(buf, order, opt); err != nil {
			return nil, nil, err
		}
	}
	return ack, opt, nil
}

func ParseErrorAck(ctl []byte) (*ErrorAck, error) {
	if len(ctl) < ErrorAckSize {
		return nil, fmt.Errorf("short error ack: %d bytes", len(ctl))
	}
	ea := &ErrorAck{}
	if err := binary.Read(bytes.NewReader(ctl), order, ea); err != nil {
		return nil, err
	}
	return ea, nil
}

// AnnouncedLength returns how many data bytes a successful ack says will
// follow, or 0 for anything else.
func AnnouncedLength(ctl []byte) int {
	if len(ctl) < AckSize+OptHeaderSize {
		return 0
	}
	ack, opt, err := ParseAck(ctl)
	if err != nil || ack.PrimType != T_OPTMGMT_ACK || ack.MgmtFlags != T_SUCCESS {
		return 0
	}
	return int(opt.Len)
}

func (opt *OptHeader) IsNetToMedia() bool {
	return opt.Level == MIB2_IP && opt.Name == MIB2_IP_MEDIA
}

// ParseEntries decodes packed neighbor records. A trailing partial record
// is ignored.
func ParseEntries(data []byte) ([]NetToMediaEntry, error) {
	n := len(data) / EntrySize
	entries := make([]NetToMediaEntry, n)
	buf := bytes.NewReader(data[:n*EntrySize])
	for i := range entries {
		if err := binary.Read(buf, order, &entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (e *NetToMediaEntry) IPAddress() ipv4.IPAddress {
	return ipv4.IPAddress(e.NetAddress)
}

func (e *NetToMediaEntry) HardwareAddress() ethernet.HardwareAddress {
	var ha ethernet.HardwareAddress
	copy(ha[:], e.PhysAddress.Bytes[:ethernet.AddressLength])
	return ha
}

// Resolved reports whether the kernel marked the entry resolved and holds a
// full link address for it.
func (e *NetToMediaEntry) Resolved() bool {
	if e.Flags&ACE_F_RESOLVED == 0 {
		return false
	}
	return e.Type != MEDIA_TYPE_INVALID && int(e.PhysAddress.Length) >= ethernet.AddressLength
}

// NewEntry builds a resolved entry.
func NewEntry(ip ipv4.IPAddress, ha ethernet.HardwareAddress, typ int32) NetToMediaEntry {
	e := NetToMediaEntry{
		NetAddress: ip,
		Type:       typ,
		Flags:      ACE_F_RESOLVED,
	}
	e.PhysAddress.Length = int32(ethernet.AddressLength)
	copy(e.PhysAddress.Bytes[:], ha[:])
	return e
}

func (e *NetToMediaEntry) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, EntrySize))
	if err := binary.Write(buf, order, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serialize encodes the ack followed by opt.
func (ack *OptMgmtAck) Serialize(opt *OptHeader) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, AckSize+OptHeaderSize))
	if err := binary.Write(buf, order, ack); err != nil {
		return nil, err
	}
	if opt != nil {
		if err := binary.Write(buf, order, opt); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (ea *ErrorAck) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, ErrorAckSize))
	if err := binary.Write(buf, order, ea); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
