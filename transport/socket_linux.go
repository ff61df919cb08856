package transport

import (
	"fmt"

	"github.com/terassyi/goarp/ioctl"
	"golang.org/x/sys/unix"
)

// Socket is an AF_INET datagram socket used only as an ioctl target.
type Socket struct {
	fd int
}

func OpenSocket() (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("socket open error: %w", err)
	}
	return &Socket{fd: fd}, nil
}

func (s *Socket) Fd() int {
	return s.fd
}

func (s *Socket) Ioctl(op ioctl.Op, req *ioctl.Request) error {
	if err := ioctl.Do(s.fd, op, req); err != nil {
		return &OpError{Op: op.String(), Err: err}
	}
	return nil
}

func (s *Socket) Close() error {
	if err := unix.Close(s.fd); err != nil {
		return &OpError{Op: "close", Err: err}
	}
	return nil
}
