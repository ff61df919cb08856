package arp

import (
	"errors"
	"syscall"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/ioctl"
	"github.com/terassyi/goarp/packet/ipv4"
	"github.com/terassyi/goarp/transport"
)

// fakeControl keeps an in-memory kernel table.
type fakeControl struct {
	table    map[ipv4.IPAddress]ioctl.Request
	calls    []ioctl.Request
	ops      []ioctl.Op
	fail     map[ioctl.Op]error
	closeErr error
	closed   bool
}

func newFakeControl() *fakeControl {
	return &fakeControl{
		table: make(map[ipv4.IPAddress]ioctl.Request),
		fail:  make(map[ioctl.Op]error),
	}
}

func (f *fakeControl) Ioctl(op ioctl.Op, req *ioctl.Request) error {
	f.ops = append(f.ops, op)
	f.calls = append(f.calls, *req)
	if err := f.fail[op]; err != nil {
		return &transport.OpError{Op: op.String(), Err: err}
	}
	switch op {
	case ioctl.SIOCSARP:
		f.table[req.Protocol] = *req
	case ioctl.SIOCDARP:
		if _, ok := f.table[req.Protocol]; !ok {
			return &transport.OpError{Op: op.String(), Err: syscall.ENXIO}
		}
		delete(f.table, req.Protocol)
	case ioctl.SIOCGARP:
		e, ok := f.table[req.Protocol]
		if !ok {
			return &transport.OpError{Op: op.String(), Err: syscall.ENXIO}
		}
		req.Hardware = e.Hardware
		req.Flags = e.Flags
	}
	return nil
}

func (f *fakeControl) Close() error {
	f.closed = true
	return f.closeErr
}

type message struct {
	data bool
	b    []byte
	more bool
	err  error
}

// fakeStream queues the next scripted reply on every request. script is
// what is currently readable; Reset empties it.
type fakeStream struct {
	replies  [][]message
	script   []message
	sent     [][]byte
	received int
	resets   int
}

func newFakeStream(replies ...[]message) *fakeStream {
	return &fakeStream{replies: replies}
}

var errScriptExhausted = errors.New("script exhausted")

func (f *fakeStream) Reset() error {
	f.resets++
	f.script = nil
	return nil
}

func (f *fakeStream) PutControl(ctl []byte) error {
	f.sent = append(f.sent, append([]byte(nil), ctl...))
	if len(f.replies) > 0 {
		f.script = append(f.script, f.replies[0]...)
		f.replies = f.replies[1:]
	}
	return nil
}

func (f *fakeStream) next(data bool, buf []byte) (int, bool, error) {
	if len(f.script) == 0 {
		return 0, false, errScriptExhausted
	}
	m := f.script[0]
	f.script = f.script[1:]
	f.received++
	if m.err != nil {
		return 0, false, m.err
	}
	if m.data != data {
		return 0, false, errors.New("read the wrong message part")
	}
	return copy(buf, m.b), m.more, nil
}

func (f *fakeStream) GetControl(buf []byte) (int, bool, error) {
	return f.next(false, buf)
}

func (f *fakeStream) GetData(buf []byte) (int, bool, error) {
	return f.next(true, buf)
}

type fakeRegistry struct {
	interfaces.Static
	loopErr  error
	closeErr error
	closed   bool
}

func (f *fakeRegistry) Loop(fn func(iface interfaces.Interface) bool) error {
	if f.loopErr != nil {
		return f.loopErr
	}
	return f.Static.Loop(fn)
}

func (f *fakeRegistry) Close() error {
	f.closed = true
	return f.closeErr
}
