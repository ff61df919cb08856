package arp

import (
	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/ipv4"
	"github.com/terassyi/goarp/transport"
)

// Handle owns one transport and, where the platform tags requests with a
// device, one Resolver. A Handle is not safe for concurrent use.
type Handle struct {
	ctl      transport.Control
	resolver *Resolver
	walker   Walker
	// register runs after a successful SIOCSARP on platforms that need the
	// entry forced into the kernel's table.
	register func(pa ipv4.IPAddress) error
	logger   *logger.Logger
}

type Option func(h *Handle)

// WithRegistry tags add and get requests with the device whose network
// contains the target address.
func WithRegistry(r interfaces.Registry) Option {
	return func(h *Handle) {
		h.resolver = NewResolver(r)
	}
}

func WithWalker(w Walker) Option {
	return func(h *Handle) {
		h.walker = w
	}
}

func WithRegistration(fn func(pa ipv4.IPAddress) error) Option {
	return func(h *Handle) {
		h.register = fn
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(h *Handle) {
		h.logger = l
	}
}

// NewHandle builds a handle over an already bound transport. Without
// WithWalker the handle cannot enumerate.
func NewHandle(ctl transport.Control, opts ...Option) (*Handle, error) {
	if ctl == nil {
		return nil, newError("open", KindInvalidArgument, nil)
	}
	h := &Handle{ctl: ctl}
	for _, opt := range opts {
		opt(h)
	}
	if h.walker == nil {
		h.walker = unsupportedWalker{}
	}
	if h.logger == nil {
		h.logger = logger.New(false, "arp")
	}
	return h, nil
}

// Open binds the platform transport and, where needed, the interface
// registry. Options override the platform defaults.
func Open(opts ...Option) (*Handle, error) {
	h := &Handle{}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logger.New(false, "arp")
	}
	if err := openPlatform(h); err != nil {
		return nil, err
	}
	if h.walker == nil {
		h.walker = unsupportedWalker{}
	}
	h.logger.Debugf("opened handle: device tagging=%v walker=%T", h.resolver != nil, h.walker)
	return h, nil
}

// Close releases the transport and the resolver. Both are released even if
// the first fails; the first error is returned.
func (h *Handle) Close() error {
	if h == nil {
		return newError("close", KindInvalidArgument, nil)
	}
	var first error
	if h.ctl != nil {
		if err := h.ctl.Close(); err != nil {
			first = newError("close", KindTransport, err)
		}
	}
	if h.resolver != nil {
		if err := h.resolver.Close(); err != nil && first == nil {
			first = newError("close", KindTransport, err)
		}
	}
	return first
}
