// Package expander drives the pins of an MCP23008 style 8-bit I2C port
// expander. Each pin supports every switchhal primitive: inputs are read from
// the GPIO register and the output latch (OLAT) is read back for the stateful
// primitive.
package expander

import (
	"errors"
	"sync"
)

// MCP23008 register map
const (
	RegIODIR uint8 = 0x00
	RegIPOL  uint8 = 0x01
	RegGPPU  uint8 = 0x06
	RegGPIO  uint8 = 0x09
	RegOLAT  uint8 = 0x0a
)

const NumPins = 8

var (
	ErrorPinRange = errors.New("Expander pin out of range")
)

// RegisterDevice is an 8-bit register device. *i2c.Device satisfies it.
type RegisterDevice interface {
	ReadReg8(reg uint8) (uint8, error)
	WriteReg8(reg uint8, value uint8) error
}

// Port is one expander chip. Pins of the same port share its registers, read-modify-write
// cycles are serialized on the port.
type Port struct {
	mutex sync.Mutex
	dev   RegisterDevice
}

func New(dev RegisterDevice) *Port {
	return &Port{dev: dev}
}

func (p *Port) modify(reg uint8, f func(v uint8) uint8) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	v, err := p.dev.ReadReg8(reg)
	if err != nil {
		return err
	}
	return p.dev.WriteReg8(reg, f(v))
}

func (p *Port) readBit(reg uint8, mask uint8) (bool, error) {
	p.mutex.Lock()
	v, err := p.dev.ReadReg8(reg)
	p.mutex.Unlock()

	if err != nil {
		return false, err
	}
	return v&mask != 0, nil
}

func setBit(v uint8, mask uint8, set bool) uint8 {
	if set {
		return v | mask
	}
	return v &^ mask
}

func (p *Port) pin(n int) (*Pin, error) {
	if n < 0 || n >= NumPins {
		return nil, ErrorPinRange
	}
	return &Pin{port: p, mask: 1 << uint(n)}, nil
}

// Output configures pin n as an output and returns it
func (p *Port) Output(n int) (*Pin, error) {
	pin, err := p.pin(n)
	if err != nil {
		return nil, err
	}
	err = p.modify(RegIODIR, func(v uint8) uint8 { return v &^ pin.mask })
	if err != nil {
		return nil, err
	}
	return pin, nil
}

// Input configures pin n as an input, optionally with the internal pull-up
func (p *Port) Input(n int, pullUp bool) (*Pin, error) {
	pin, err := p.pin(n)
	if err != nil {
		return nil, err
	}
	err = p.modify(RegIODIR, func(v uint8) uint8 { return v | pin.mask })
	if err != nil {
		return nil, err
	}
	err = p.modify(RegGPPU, func(v uint8) uint8 { return setBit(v, pin.mask, pullUp) })
	if err != nil {
		return nil, err
	}
	return pin, nil
}

// Pin is a single expander pin
type Pin struct {
	port *Port
	mask uint8
}

// IsHigh reads the GPIO register
func (p *Pin) IsHigh() (bool, error) {
	return p.port.readBit(RegGPIO, p.mask)
}

// IsSetHigh reads the output latch
func (p *Pin) IsSetHigh() (bool, error) {
	return p.port.readBit(RegOLAT, p.mask)
}

func (p *Pin) SetLevel(high bool) error {
	return p.port.modify(RegOLAT, func(v uint8) uint8 { return setBit(v, p.mask, high) })
}

func (p *Pin) Toggle() error {
	return p.port.modify(RegOLAT, func(v uint8) uint8 { return v ^ p.mask })
}
