// Package serial exposes the modem control lines of a serial port as switchhal
// pins. DTR and RTS are outputs, CTS, DSR, DCD and RI are inputs. A common use
// is a relay or reset line driven by a USB serial adapter.
package serial

import (
	"errors"
	"fmt"
	"strings"
)

// Port gives access to the modem control lines of an open serial port
type Port interface {
	SetDTR(enabled bool) error
	SetRTS(enabled bool) error
	GetPins() (PortPins, error)
	Close() error
}

// PortOptions is a parameter struct for Open. Hardware flow control is always
// disabled so the driver does not fight over RTS.
type PortOptions struct {
	PortName      string
	InterfaceRate uint32
}

// PortPins indicates the state of the modem control signals
type PortPins struct {
	DSR bool
	DTR bool
	RTS bool
	CTS bool
	DCD bool
	RNG bool
}

// Open opens a serial port for modem line access
func Open(options *PortOptions) (Port, error) {
	port, err := openPortOs(options)
	if err != nil {
		return nil, err
	}
	return port, nil
}

// ModemLine selects one modem control signal
type ModemLine int

const (
	LineDTR ModemLine = iota
	LineRTS
	LineCTS
	LineDSR
	LineDCD
	LineRNG
)

var lineNames = []string{"dtr", "rts", "cts", "dsr", "dcd", "rng"}

var (
	ErrorNotOutput = errors.New("Modem line is not an output")
	ErrorLineName  = errors.New("Unknown modem line")
)

func (l ModemLine) String() string {
	if l < 0 || int(l) >= len(lineNames) {
		return fmt.Sprintf("ModemLine(%d)", int(l))
	}
	return lineNames[l]
}

// ParseModemLine converts a name such as "rts" to a ModemLine
func ParseModemLine(name string) (ModemLine, error) {
	name = strings.ToLower(name)
	for i, n := range lineNames {
		if n == name {
			return ModemLine(i), nil
		}
	}
	return 0, ErrorLineName
}

// IsOutput returns true for the lines the host drives
func (l ModemLine) IsOutput() bool {
	return l == LineDTR || l == LineRTS
}

func (l ModemLine) get(pins PortPins) bool {
	switch l {
	case LineDTR:
		return pins.DTR
	case LineRTS:
		return pins.RTS
	case LineCTS:
		return pins.CTS
	case LineDSR:
		return pins.DSR
	case LineDCD:
		return pins.DCD
	}
	return pins.RNG
}
