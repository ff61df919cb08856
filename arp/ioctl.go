package arp

import (
	"errors"

	"github.com/terassyi/goarp/ioctl"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
	"github.com/terassyi/goarp/transport"
)

// Add installs a permanent entry for pa.
func (h *Handle) Add(pa ipv4.IPAddress, ha ethernet.HardwareAddress) error {
	if h == nil {
		return newError("add", KindInvalidArgument, nil)
	}
	req := &ioctl.Request{Protocol: pa, Hardware: ha}
	if err := h.tag(req); err != nil {
		return err
	}
	req.Flags = ioctl.ATF_PERM | ioctl.ATF_COM
	if err := h.call("add", ioctl.SIOCSARP, req, false); err != nil {
		return err
	}
	if h.register != nil {
		if err := h.register(pa); err != nil {
			h.logger.Debugf("registration of %s failed: %v", pa, err)
			return newError("add", KindTransport, err)
		}
	}
	return nil
}

// Delete removes the entry for pa. Deleting an absent entry reports
// whatever the kernel reports, which is NotFound on Linux and Solaris.
func (h *Handle) Delete(pa ipv4.IPAddress) error {
	if h == nil {
		return newError("delete", KindInvalidArgument, nil)
	}
	req := &ioctl.Request{Protocol: pa}
	return h.call("delete", ioctl.SIOCDARP, req, true)
}

// Get returns the link address of a completed entry for pa.
func (h *Handle) Get(pa ipv4.IPAddress) (ethernet.HardwareAddress, error) {
	if h == nil {
		return ethernet.HardwareAddress{}, newError("get", KindInvalidArgument, nil)
	}
	req := &ioctl.Request{Protocol: pa}
	if err := h.tag(req); err != nil {
		return ethernet.HardwareAddress{}, err
	}
	if err := h.call("get", ioctl.SIOCGARP, req, true); err != nil {
		return ethernet.HardwareAddress{}, err
	}
	if !req.Completed() {
		return ethernet.HardwareAddress{}, newError("get", KindNotFound, nil)
	}
	return req.Hardware, nil
}

func (h *Handle) AddString(pa, ha string) error {
	ip, err := ipv4.StringToIPAddress(pa)
	if err != nil {
		return newError("add", KindInvalidArgument, err)
	}
	mac, err := ethernet.StringToHardwareAddress(ha)
	if err != nil {
		return newError("add", KindInvalidArgument, err)
	}
	return h.Add(*ip, *mac)
}

func (h *Handle) DeleteString(pa string) error {
	ip, err := ipv4.StringToIPAddress(pa)
	if err != nil {
		return newError("delete", KindInvalidArgument, err)
	}
	return h.Delete(*ip)
}

func (h *Handle) GetString(pa string) (ethernet.HardwareAddress, error) {
	ip, err := ipv4.StringToIPAddress(pa)
	if err != nil {
		return ethernet.HardwareAddress{}, newError("get", KindInvalidArgument, err)
	}
	return h.Get(*ip)
}

// tag fills in the device on platforms whose requests are scoped to one.
func (h *Handle) tag(req *ioctl.Request) error {
	if h.resolver == nil {
		return nil
	}
	dev, err := h.resolver.Resolve(req.Protocol)
	if err != nil {
		h.logger.Debugf("no device for %s: %v", req.Protocol, err)
		return err
	}
	req.Device = dev
	return nil
}

func (h *Handle) call(op string, code ioctl.Op, req *ioctl.Request, absent bool) error {
	h.logger.Debugf("%s %s", code, req)
	if err := h.ctl.Ioctl(code, req); err != nil {
		h.logger.Debugf("%s failed: %v", code, err)
		if absent && errors.Is(err, transport.ErrNoEntry) {
			return newError(op, KindNotFound, err)
		}
		return newError(op, KindTransport, err)
	}
	return nil
}
