// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
)

// Client abstracts Modbus operations needed by the poller.
// The poller depends on geometry only.
type Client interface {
	ReadCoils(addr, qty uint16) ([]bool, error)              // FC 1
	ReadDiscreteInputs(addr, qty uint16) ([]bool, error)     // FC 2
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	ReadInputRegisters(addr, qty uint16) ([]uint16, error)   // FC 4
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	FC       uint8
	Start    uint16 // protocol address
	Count    uint16
	Interval time.Duration

	// Individual reads one element per request: slower, but a bad
	// register yields one error marker instead of failing the cycle.
	Individual bool
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
	seq    int
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.FC < 1 || cfg.FC > 4 {
		return nil, errors.New("poller: unsupported function code")
	}
	if cfg.Count == 0 {
		return nil, errors.New("poller: count must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one poll cycle.
func (p *Poller) PollOnce() Result {
	p.seq++
	res := Result{
		At:    time.Now(),
		Start: p.cfg.Start,
		Seq:   p.seq,
	}

	if p.cfg.Individual {
		res.Readings = p.readIndividually()
		return res
	}

	readings, err := p.readBatch()
	if err != nil {
		// All-or-nothing: a batch failure aborts the cycle.
		res.Err = err
		return res
	}
	res.Readings = readings
	return res
}

// readBatch issues one request covering the whole range.
func (p *Poller) readBatch() ([]decode.Reading, error) {
	switch p.cfg.FC {
	case 1:
		bits, err := p.client.ReadCoils(p.cfg.Start, p.cfg.Count)
		if err != nil {
			return nil, err
		}
		return bitReadings(bits, int(p.cfg.Count)), nil

	case 2:
		bits, err := p.client.ReadDiscreteInputs(p.cfg.Start, p.cfg.Count)
		if err != nil {
			return nil, err
		}
		return bitReadings(bits, int(p.cfg.Count)), nil

	case 3:
		regs, err := p.client.ReadHoldingRegisters(p.cfg.Start, p.cfg.Count)
		if err != nil {
			return nil, err
		}
		return registerReadings(regs), nil

	case 4:
		regs, err := p.client.ReadInputRegisters(p.cfg.Start, p.cfg.Count)
		if err != nil {
			return nil, err
		}
		return registerReadings(regs), nil
	}

	return nil, fmt.Errorf("poller: unsupported function code %d", p.cfg.FC)
}

// readIndividually issues one request per element and keeps going
// past failures. Always returns exactly Count readings.
func (p *Poller) readIndividually() []decode.Reading {
	out := make([]decode.Reading, 0, p.cfg.Count)

	for i := uint16(0); i < p.cfg.Count; i++ {
		addr := p.cfg.Start + i

		switch p.cfg.FC {
		case 1, 2:
			var bits []bool
			var err error
			if p.cfg.FC == 1 {
				bits, err = p.client.ReadCoils(addr, 1)
			} else {
				bits, err = p.client.ReadDiscreteInputs(addr, 1)
			}
			switch {
			case err != nil:
				out = append(out, decode.ErrorReading(err))
			case len(bits) == 0:
				out = append(out, decode.ErrorReading(errors.New("poller: empty response")))
			default:
				out = append(out, decode.BitReading(bits[0]))
			}

		case 3, 4:
			var regs []uint16
			var err error
			if p.cfg.FC == 3 {
				regs, err = p.client.ReadHoldingRegisters(addr, 1)
			} else {
				regs, err = p.client.ReadInputRegisters(addr, 1)
			}
			switch {
			case err != nil:
				out = append(out, decode.ErrorReading(err))
			case len(regs) == 0:
				out = append(out, decode.ErrorReading(errors.New("poller: empty response")))
			default:
				out = append(out, decode.RegisterReading(regs[0]))
			}
		}
	}

	return out
}

// ---- helpers ----

func bitReadings(bits []bool, count int) []decode.Reading {
	// The transport may round up to a byte boundary; only the
	// requested count is real.
	if len(bits) > count {
		bits = bits[:count]
	}
	out := make([]decode.Reading, 0, len(bits))
	for _, b := range bits {
		out = append(out, decode.BitReading(b))
	}
	return out
}

func registerReadings(regs []uint16) []decode.Reading {
	out := make([]decode.Reading, 0, len(regs))
	for _, v := range regs {
		out = append(out, decode.RegisterReading(v))
	}
	return out
}
