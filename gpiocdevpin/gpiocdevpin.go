//go:build linux

// Package gpiocdevpin adapts lines requested through go-gpiocdev to the
// switchhal primitives
package gpiocdevpin

import (
	"github.com/warthog618/go-gpiocdev"
)

// Consumer is the label the kernel shows for lines requested by this package
const Consumer = "switchhal"

type line interface {
	Value() (int, error)
	SetValue(value int) error
	Close() error
}

// Pin is a requested line. Values are physical, the line is never requested active low.
type Pin struct {
	line line
}

// RequestOutput requests offset on chip (e.g. "gpiochip0") as an output starting at initial
func RequestOutput(chip string, offset int, initial bool) (*Pin, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(boolToValue(initial)), gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, err
	}
	return &Pin{line: l}, nil
}

// RequestInput requests offset on chip as an input
func RequestInput(chip string, offset int) (*Pin, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, err
	}
	return &Pin{line: l}, nil
}

func boolToValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (p *Pin) IsHigh() (bool, error) {
	v, err := p.line.Value()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// IsSetHigh reads the line, the kernel reports the driven value for outputs
func (p *Pin) IsSetHigh() (bool, error) {
	return p.IsHigh()
}

func (p *Pin) SetLevel(high bool) error {
	return p.line.SetValue(boolToValue(high))
}

func (p *Pin) Toggle() error {
	v, err := p.line.Value()
	if err != nil {
		return err
	}
	return p.line.SetValue(v ^ 1)
}

// Close releases the line
func (p *Pin) Close() error {
	return p.line.Close()
}
