// Package periphpin adapts periph.io GPIO pins to the switchhal primitives
package periphpin

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var (
	ErrorNotFound = errors.New("Pin not found in the periph registry")
)

// Pin wraps a gpio.PinIO. periph reports no read errors, so reads never fail.
type Pin struct {
	pin gpio.PinIO
}

func New(pin gpio.PinIO) *Pin {
	return &Pin{pin: pin}
}

// ByName looks a pin up in the periph registry, e.g. "GPIO17". host.Init must have
// been called before.
func ByName(name string) (*Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, ErrorNotFound
	}
	return New(p), nil
}

// Input configures the pin as an input with the given pull
func (p *Pin) Input(pull gpio.Pull) error {
	return p.pin.In(pull, gpio.NoEdge)
}

func (p *Pin) String() string {
	return p.pin.Name()
}

func (p *Pin) IsHigh() (bool, error) {
	return p.pin.Read() == gpio.High, nil
}

// IsSetHigh reads the pin, on an output that is the driven level
func (p *Pin) IsSetHigh() (bool, error) {
	return p.IsHigh()
}

func (p *Pin) SetLevel(high bool) error {
	return p.pin.Out(gpio.Level(high))
}

func (p *Pin) Toggle() error {
	return p.pin.Out(!p.pin.Read())
}

// Halt stops the pin
func (p *Pin) Halt() error {
	return p.pin.Halt()
}
