// Package rpiopin adapts Raspberry Pi pins from go-rpio to the switchhal
// primitives. rpio.Open must be called before the pins are used.
package rpiopin

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// rpioPin is the part of rpio.Pin that is used
type rpioPin interface {
	Read() rpio.State
	Write(state rpio.State)
	Toggle()
}

// Pin is a BCM numbered GPIO. The rpio register accesses cannot fail.
type Pin struct {
	pin rpioPin
}

// NewOutput puts BCM pin n in output mode
func NewOutput(n int) *Pin {
	pin := rpio.Pin(n)
	pin.Output()
	return &Pin{pin: pin}
}

// NewInput puts BCM pin n in input mode with the given pull
func NewInput(n int, pull rpio.Pull) *Pin {
	pin := rpio.Pin(n)
	pin.Input()
	pin.Pull(pull)
	return &Pin{pin: pin}
}

func (p *Pin) IsHigh() (bool, error) {
	return p.pin.Read() == rpio.High, nil
}

// IsSetHigh reads the level register, for an output that is the driven level
func (p *Pin) IsSetHigh() (bool, error) {
	return p.IsHigh()
}

func (p *Pin) SetLevel(high bool) error {
	state := rpio.Low
	if high {
		state = rpio.High
	}
	p.pin.Write(state)
	return nil
}

// Toggle uses the native rpio toggle
func (p *Pin) Toggle() error {
	p.pin.Toggle()
	return nil
}
