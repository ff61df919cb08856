package arp

// Walker enumerates the kernel table, calling fn for each resolved entry.
// It returns the last value fn returned, or Continue for an empty table.
type Walker interface {
	Walk(fn Handler) (int, error)
}

// Walk enumerates the table through the platform walker.
func (h *Handle) Walk(fn Handler) (int, error) {
	if h == nil || fn == nil {
		return Continue, newError("walk", KindInvalidArgument, nil)
	}
	return h.walker.Walk(fn)
}

type unsupportedWalker struct{}

func (unsupportedWalker) Walk(Handler) (int, error) {
	return Continue, newError("walk", KindUnsupported, nil)
}
