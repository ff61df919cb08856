package mib2

import (
	"testing"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

func TestSizes(t *testing.T) {
	if AckSize != 16 {
		t.Fatalf("ack: actual %d", AckSize)
	}
	if ErrorAckSize != 16 {
		t.Fatalf("error ack: actual %d", ErrorAckSize)
	}
	if OptHeaderSize != 12 {
		t.Fatalf("opthdr: actual %d", OptHeaderSize)
	}
	if EntrySize != 120 {
		t.Fatalf("ipNetToMediaEntry: actual %d", EntrySize)
	}
}

func TestNewRequest(t *testing.T) {
	b, err := NewRequest()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 28 {
		t.Fatalf("actual length %d", len(b))
	}
	if p, _ := PrimType(b); p != T_OPTMGMT_REQ {
		t.Fatalf("actual prim %d", p)
	}
	// the request shares its layout with the ack.
	req, opt, err := ParseAck(b)
	if err != nil {
		t.Fatal(err)
	}
	if req.MgmtFlags != T_CURRENT || req.OptOffset != 16 || req.OptLength != 12 {
		t.Fatalf("actual %+v", req)
	}
	if opt.Level != MIB2_IP || opt.Name != 0 || opt.Len != 0 {
		t.Fatalf("actual %+v", opt)
	}
}

func TestAnnouncedLength(t *testing.T) {
	ack := &OptMgmtAck{PrimType: T_OPTMGMT_ACK, MgmtFlags: T_SUCCESS}
	b, err := ack.Serialize(&OptHeader{Level: MIB2_IP, Name: MIB2_IP_MEDIA, Len: 240})
	if err != nil {
		t.Fatal(err)
	}
	if n := AnnouncedLength(b); n != 240 {
		t.Fatalf("actual %d", n)
	}
	if n := AnnouncedLength(b[:AckSize]); n != 0 {
		t.Fatalf("without opthdr: actual %d", n)
	}
	ea, _ := (&ErrorAck{PrimType: T_ERROR_ACK}).Serialize()
	if n := AnnouncedLength(append(ea, make([]byte, OptHeaderSize)...)); n != 0 {
		t.Fatalf("error ack: actual %d", n)
	}
}

func TestParseEntries(t *testing.T) {
	e1 := NewEntry(ipv4.IPAddress{10, 0, 0, 1}, ethernet.HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, MEDIA_TYPE_DYNAMIC)
	e2 := NewEntry(ipv4.IPAddress{10, 0, 0, 2}, ethernet.HardwareAddress{}, MEDIA_TYPE_INVALID)
	b1, _ := e1.Serialize()
	b2, _ := e2.Serialize()
	data := append(append(b1, b2...), 0x01, 0x02)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("actual length %d", len(entries))
	}
	if entries[0].IPAddress().String() != "10.0.0.1" {
		t.Fatalf("actual %s", entries[0].IPAddress())
	}
	if entries[0].HardwareAddress().String() != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("actual %s", entries[0].HardwareAddress())
	}
	if !entries[0].Resolved() {
		t.Fatalf("dynamic entry should be resolved")
	}
	if entries[1].Resolved() {
		t.Fatalf("invalid entry should not be resolved")
	}
}

func TestResolvedFlag(t *testing.T) {
	e := NewEntry(ipv4.IPAddress{10, 0, 0, 1}, ethernet.HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, MEDIA_TYPE_DYNAMIC)
	if !e.Resolved() {
		t.Fatalf("actual flags %#x", e.Flags)
	}
	e.Flags = ACE_F_PERMANENT
	if e.Resolved() {
		t.Fatalf("entry without ACE_F_RESOLVED should not be resolved")
	}
	e.Flags = ACE_F_RESOLVED
	e.PhysAddress.Length = 0
	if e.Resolved() {
		t.Fatalf("entry without a link address should not be resolved")
	}
}
