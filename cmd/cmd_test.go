package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/terassyi/goarp/arp"
	"github.com/terassyi/goarp/config"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

type sliceWalker []arp.Entry

func (s sliceWalker) Walk(fn arp.Handler) (int, error) {
	for _, e := range s {
		if r := fn(e); r != arp.Continue {
			return r, nil
		}
	}
	return arp.Continue, nil
}

var entries = sliceWalker{
	{IP: ipv4.IPAddress{10, 0, 0, 1}, MAC: ethernet.HardwareAddress{0x02, 0, 0, 0, 0, 1}},
	{IP: ipv4.IPAddress{10, 0, 0, 2}, MAC: ethernet.HardwareAddress{0x02, 0, 0, 0, 0, 2}},
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	n, err := show(&buf, entries, defaultFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "10.0.0.1 at 02:00:00:00:00:01\n10.0.0.2 at 02:00:00:00:00:02\n"
	if n != 2 || buf.String() != want {
		t.Fatalf("actual %d %q", n, buf.String())
	}

	buf.Reset()
	if _, err := show(&buf, entries, "{{mac}},{{ip}},{{unknown}}"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "02:00:00:00:00:01,10.0.0.1,\n02:00:00:00:00:02,10.0.0.2,\n" {
		t.Fatalf("actual %q", buf.String())
	}
}

func TestShowInvalidFormat(t *testing.T) {
	if _, err := show(&bytes.Buffer{}, entries, "{{ip"); err == nil {
		t.Fatalf("expected error")
	}
}

type fakeTable struct {
	added   []arp.Entry
	deleted []ipv4.IPAddress
	err     error
}

func (f *fakeTable) Add(pa ipv4.IPAddress, ha ethernet.HardwareAddress) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, arp.Entry{IP: pa, MAC: ha})
	return nil
}

func (f *fakeTable) Delete(pa ipv4.IPAddress) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, pa)
	return nil
}

func TestApply(t *testing.T) {
	c, err := config.Parse([]byte("[[entry]]\nip = \"10.0.0.1\"\nmac = \"02:00:00:00:00:01\"\n[[entry]]\nip = \"10.0.0.2\"\nmac = \"02:00:00:00:00:02\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	tbl := &fakeTable{}
	if failed := apply(tbl, c, false); failed != 0 {
		t.Fatalf("actual %d failures", failed)
	}
	if len(tbl.added) != 2 || tbl.added[1] != entries[1] {
		t.Fatalf("actual %v", tbl.added)
	}
	if failed := apply(tbl, c, true); failed != 0 || len(tbl.deleted) != 2 {
		t.Fatalf("actual %d %v", failed, tbl.deleted)
	}

	tbl = &fakeTable{err: errors.New("permission denied")}
	if failed := apply(tbl, c, false); failed != 2 {
		t.Fatalf("actual %d failures", failed)
	}
}
