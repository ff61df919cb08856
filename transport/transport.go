// Package transport binds the kernel channel an ARP handle talks through.
package transport

import "github.com/terassyi/goarp/ioctl"

// Control issues synchronous ARP control calls.
type Control interface {
	Ioctl(op ioctl.Op, req *ioctl.Request) error
	Close() error
}

// Stream is a message channel with separate control and data parts. Each
// receive reports whether more of the current message is pending. Reset
// drops anything still queued for reading.
type Stream interface {
	Reset() error
	PutControl(ctl []byte) error
	GetControl(buf []byte) (n int, more bool, err error)
	GetData(buf []byte) (n int, more bool, err error)
}
