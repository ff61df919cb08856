//go:build !linux && !solaris

package arp

// There is no ARP control call binding here.
func openPlatform(h *Handle) error {
	return newError("open", KindUnsupported, nil)
}
