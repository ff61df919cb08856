package transport

import "github.com/terassyi/goarp/packet/mib2"

// getmsgFunc receives one message part into ctl or data, whichever is
// non-nil, and returns the filled prefix of each.
type getmsgFunc func(ctl, data []byte) ([]byte, []byte, error)

// msgReader turns option management replies into control and data reads
// that report continuation. getmsg's MORECTL/MOREDATA result is not
// available, so continuation follows the byte count the last ack announced.
type msgReader struct {
	getmsg getmsgFunc
	// bytes of data still announced by the last control part received
	pending int
}

func (r *msgReader) control(buf []byte) (int, bool, error) {
	ctl, _, err := r.getmsg(buf, nil)
	if err != nil {
		r.pending = 0
		return 0, false, &OpError{Op: "getmsg", Err: err}
	}
	r.pending = mib2.AnnouncedLength(ctl)
	return len(ctl), r.pending > 0, nil
}

func (r *msgReader) data(buf []byte) (int, bool, error) {
	_, data, err := r.getmsg(nil, buf)
	if err != nil {
		r.pending = 0
		return 0, false, &OpError{Op: "getmsg", Err: err}
	}
	r.pending -= len(data)
	if len(data) == 0 || r.pending < 0 {
		r.pending = 0
	}
	return len(data), r.pending > 0, nil
}

func (r *msgReader) reset() {
	r.pending = 0
}
