package arp

import "fmt"

type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindUnsupported
	KindTransport
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindUnsupported:
		return "not supported on this platform"
	case KindTransport:
		return "transport error"
	case KindProtocol:
		return "protocol error"
	default:
		return "unknown error"
	}
}

// Error is returned by every fallible handle operation. Err holds the cause,
// which for transport faults wraps the native errno.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arp %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("arp %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the Err* sentinels work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Op == "" && t.Err == nil && e.Kind == t.Kind
}

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrUnsupported     = &Error{Kind: KindUnsupported}
	ErrTransport       = &Error{Kind: KindTransport}
	ErrProtocol        = &Error{Kind: KindProtocol}
)

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
