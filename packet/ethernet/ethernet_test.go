package ethernet

import "testing"

func TestStringToHardwareAddress(t *testing.T) {
	want := HardwareAddress{0x00, 0x0d, 0x0e, 0x0a, 0x0d, 0x00}
	for _, s := range []string{"00:0d:0e:0a:0d:00", "0:d:E:a:D:0", "00-0d-0e-0a-0d-00"} {
		addr, err := StringToHardwareAddress(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if *addr != want {
			t.Fatalf("%q: actual %s", s, addr)
		}
	}
	if want.String() != "00:0d:0e:0a:0d:00" {
		t.Fatalf("actual %s", want.String())
	}
}

func TestStringToHardwareAddressInvalid(t *testing.T) {
	for _, s := range []string{"", "12:34:56:78:910", "aa:bb:cc:dd:ee", "zz:bb:cc:dd:ee:ff", "00:00:00:00:00:00:00:01", "aa:bb::cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff:", ":aa:bb:cc:dd:ee", "aa:bb-cc:dd:ee:ff", "aa-bb-cc-dd-ee-ff-", "+a:bb:cc:dd:ee:ff", "aaa:b:cc:dd:ee:ff"} {
		if addr, err := StringToHardwareAddress(s); err == nil {
			t.Fatalf("%q: expected error, actual %s", s, addr)
		}
	}
}

func TestAddress(t *testing.T) {
	addr, err := Address([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	if *addr != (HardwareAddress{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("actual %s", addr)
	}
	if _, err := Address([]byte{1, 2, 3}); err == nil {
		t.Fatalf("short address should fail")
	}
}
