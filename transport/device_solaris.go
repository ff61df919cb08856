package transport

import (
	"os"

	"github.com/terassyi/goarp/ioctl"
	"golang.org/x/sys/unix"
)

const ipDevice = "/dev/ip"

// <sys/stropts.h>; x/sys does not carry these.
const (
	iFlush = 0x5305
	flushR = 0x01
)

// Device is the /dev/ip STREAMS device. It serves both ARP control calls
// and the MIB2 option management stream.
type Device struct {
	file   *os.File
	reader msgReader
}

func OpenDevice() (*Device, error) {
	file, err := os.OpenFile(ipDevice, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	d := &Device{file: file}
	d.reader.getmsg = d.getmsg
	return d, nil
}

func (d *Device) Fd() int {
	return int(d.file.Fd())
}

func (d *Device) Ioctl(op ioctl.Op, req *ioctl.Request) error {
	if err := ioctl.Do(d.Fd(), op, req); err != nil {
		return &OpError{Op: op.String(), Err: err}
	}
	return nil
}

// Reset discards whatever is left of an earlier reply on the read side.
func (d *Device) Reset() error {
	d.reader.reset()
	if err := unix.IoctlSetInt(d.Fd(), iFlush, flushR); err != nil {
		return &OpError{Op: "I_FLUSH", Err: err}
	}
	return nil
}

func (d *Device) PutControl(ctl []byte) error {
	if err := unix.Putmsg(d.Fd(), ctl, nil, 0); err != nil {
		return &OpError{Op: "putmsg", Err: err}
	}
	return nil
}

func (d *Device) GetControl(buf []byte) (int, bool, error) {
	return d.reader.control(buf)
}

func (d *Device) GetData(buf []byte) (int, bool, error) {
	return d.reader.data(buf)
}

func (d *Device) getmsg(ctl, data []byte) ([]byte, []byte, error) {
	c, b, _, err := unix.Getmsg(d.Fd(), ctl, data)
	return c, b, err
}

func (d *Device) Close() error {
	return d.file.Close()
}
