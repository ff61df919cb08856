package transport

import (
	"errors"
	"syscall"
)

// ErrNoEntry matches an OpError whose native code means the kernel has no
// such table entry.
var ErrNoEntry = errors.New("no such entry")

type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Is(target error) bool {
	return target == ErrNoEntry && errors.Is(e.Err, syscall.ENXIO)
}
