package arp

import (
	"fmt"

	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/mib2"
	"github.com/terassyi/goarp/transport"
)

const mib2BufferSize int = 8192

type walkState int

const (
	stateRequest walkState = iota
	stateAwaitAck
	stateDrainData
	stateDone
)

func (s walkState) String() string {
	switch s {
	case stateRequest:
		return "REQUEST"
	case stateAwaitAck:
		return "AWAIT_ACK"
	case stateDrainData:
		return "DRAIN_DATA"
	case stateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// MIB2Walker enumerates the neighbor table with a T_OPTMGMT_REQ for the
// MIB2_IP level. The reply is a sequence of acks, one per option, each
// followed by its data; only the MIB2_IP_MEDIA option is decoded, every
// other option is drained to stay in step with the stream.
type MIB2Walker struct {
	Stream transport.Stream
	logger *logger.Logger
}

func NewMIB2Walker(s transport.Stream, l *logger.Logger) *MIB2Walker {
	if l == nil {
		l = logger.New(false, "mib2")
	}
	return &MIB2Walker{Stream: s, logger: l}
}

func (w *MIB2Walker) Walk(fn Handler) (int, error) {
	l := w.logger
	if l == nil {
		l = logger.New(false, "mib2")
	}
	// data is read in whole records
	dataSize := mib2BufferSize - mib2BufferSize%mib2.EntrySize
	m := &mib2Walk{
		stream: w.Stream,
		fn:     fn,
		logger: l,
		ctl:    make([]byte, mib2BufferSize),
		data:   make([]byte, dataSize),
		state:  stateRequest,
		ret:    Continue,
	}
	for m.state != stateDone {
		var err error
		prev := m.state
		switch m.state {
		case stateRequest:
			err = m.request()
		case stateAwaitAck:
			err = m.awaitAck()
		case stateDrainData:
			err = m.drainData()
		}
		if err != nil {
			m.logger.Debugf("%s failed: %v", prev, err)
			return Continue, err
		}
		m.logger.Debugf("%s -> %s", prev, m.state)
	}
	return m.ret, nil
}

type mib2Walk struct {
	stream transport.Stream
	fn     Handler
	logger *logger.Logger
	ctl    []byte
	data   []byte
	state  walkState
	// the option being drained is the neighbor table
	target bool
	ret    int
}

func (m *mib2Walk) request() error {
	req, err := mib2.NewRequest()
	if err != nil {
		return newError("walk", KindProtocol, err)
	}
	// an earlier walk may have stopped or failed mid reply
	if err := m.stream.Reset(); err != nil {
		return newError("walk", KindTransport, err)
	}
	if err := m.stream.PutControl(req); err != nil {
		return newError("walk", KindTransport, err)
	}
	m.state = stateAwaitAck
	return nil
}

func (m *mib2Walk) awaitAck() error {
	n, more, err := m.stream.GetControl(m.ctl)
	if err != nil {
		return newError("walk", KindTransport, err)
	}
	ctl := m.ctl[:n]
	prim, _ := mib2.PrimType(ctl)

	if prim == mib2.T_ERROR_ACK && n >= mib2.ErrorAckSize {
		ea, err := mib2.ParseErrorAck(ctl)
		if err != nil {
			return newError("walk", KindProtocol, err)
		}
		return newError("walk", KindProtocol, fmt.Errorf("T_ERROR_ACK: tli error %d, unix error %d", ea.TLIError, ea.UnixError))
	}
	if prim != mib2.T_OPTMGMT_ACK || n < mib2.AckSize {
		return newError("walk", KindProtocol, fmt.Errorf("unexpected reply: prim %d, %d bytes", prim, n))
	}
	ack, opt, err := mib2.ParseAck(ctl)
	if err != nil {
		return newError("walk", KindProtocol, err)
	}
	if ack.MgmtFlags != mib2.T_SUCCESS {
		return newError("walk", KindProtocol, fmt.Errorf("option management failed: flags %#x", ack.MgmtFlags))
	}
	if !more {
		if opt.Len == 0 {
			m.state = stateDone
			return nil
		}
		return newError("walk", KindProtocol, fmt.Errorf("ack announces %d bytes but no data follows", opt.Len))
	}
	m.target = opt.IsNetToMedia()
	m.logger.Debugf("option level=%d name=%d len=%d target=%v", opt.Level, opt.Name, opt.Len, m.target)
	m.state = stateDrainData
	return nil
}

func (m *mib2Walk) drainData() error {
	for {
		n, more, err := m.stream.GetData(m.data)
		if err != nil {
			return newError("walk", KindTransport, err)
		}
		if m.target {
			entries, err := mib2.ParseEntries(m.data[:n])
			if err != nil {
				return newError("walk", KindProtocol, err)
			}
			for i := range entries {
				if !entries[i].Resolved() {
					continue
				}
				e := Entry{IP: entries[i].IPAddress(), MAC: entries[i].HardwareAddress()}
				if m.ret = m.fn(e); m.ret != Continue {
					m.state = stateDone
					return nil
				}
			}
		}
		if !more {
			break
		}
	}
	m.state = stateAwaitAck
	return nil
}
