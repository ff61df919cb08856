package ipv4

import "testing"

func TestStringToIPAddress(t *testing.T) {
	tests := []struct {
		in     string
		want   IPAddress
		wantOK bool
	}{
		{"192.168.0.3", IPAddress{192, 168, 0, 3}, true},
		{"10.0.0.1/32", IPAddress{10, 0, 0, 1}, true},
		{"10.0.0.1/24", IPAddress{}, false},
		{"10.0.0", IPAddress{}, false},
		{"10.0.0.256", IPAddress{}, false},
		{"a.b.c.d", IPAddress{}, false},
		{"", IPAddress{}, false},
		{"+10.0.0.1", IPAddress{}, false},
		{"10.-0.0.1", IPAddress{}, false},
		{"10..0.1", IPAddress{}, false},
		{"10.0.0.1.", IPAddress{}, false},
		{" 10.0.0.1", IPAddress{}, false},
		{"10.0.0.0001", IPAddress{}, false},
		{"010.0.0.1", IPAddress{10, 0, 0, 1}, true},
	}
	for _, tt := range tests {
		addr, err := StringToIPAddress(tt.in)
		if !tt.wantOK {
			if err == nil {
				t.Fatalf("%q: expected error, actual %v", tt.in, addr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if *addr != tt.want {
			t.Fatalf("%q: actual %s", tt.in, addr)
		}
	}
}

func TestMask(t *testing.T) {
	tests := map[int]string{
		0:  "0.0.0.0",
		8:  "255.0.0.0",
		19: "255.255.224.0",
		24: "255.255.255.0",
		31: "255.255.255.254",
		32: "255.255.255.255",
		40: "255.255.255.255",
		-1: "0.0.0.0",
	}
	for bits, want := range tests {
		if m := Mask(bits).String(); m != want {
			t.Fatalf("/%d: actual %s", bits, m)
		}
	}
}

func TestContains(t *testing.T) {
	network := IPAddress{10, 0, 1, 7}
	if !network.Contains(23, IPAddress{10, 0, 0, 200}) {
		t.Fatalf("10.0.0.200 should be in 10.0.1.7/23")
	}
	if network.Contains(24, IPAddress{10, 0, 0, 200}) {
		t.Fatalf("10.0.0.200 should not be in 10.0.1.7/24")
	}
	if !network.Contains(0, IPAddress{192, 168, 1, 1}) {
		t.Fatalf("/0 should contain everything")
	}
}
