// Package mock provides an in-memory pin that implements every switchhal pin
// primitive. It is meant for tests and examples.
package mock

import (
	"errors"
	"sync"
)

// State is the register of a mock Pin
type State int

const (
	// StateUnset means the pin was never written
	StateUnset State = iota
	StateLow
	StateHigh
)

func (s State) String() string {
	switch s {
	case StateLow:
		return "low"
	case StateHigh:
		return "high"
	}
	return "unset"
}

var (
	// ErrorUninitialized is returned when reading a pin that was never written
	ErrorUninitialized = errors.New("state not set")
)

// Pin is a tri-state register. The zero value is an unset pin.
type Pin struct {
	mutex   sync.Mutex
	state   State
	writes  []State
	reads   int
	failure error
}

// New returns a pin that was never written
func New() *Pin {
	return &Pin{}
}

// WithState returns a pin that starts in state s
func WithState(s State) *Pin {
	return &Pin{state: s}
}

// State returns the raw register value
func (p *Pin) State() State {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.state
}

// Writes returns every level written to the pin, in order. Toggles count as writes.
func (p *Pin) Writes() []State {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return append([]State(nil), p.writes...)
}

// Reads returns how many times IsHigh or IsSetHigh was called. The read done
// by Toggle is not counted.
func (p *Pin) Reads() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.reads
}

// SetFailure makes every following access return err. Pass nil to restore normal operation.
func (p *Pin) SetFailure(err error) {
	p.mutex.Lock()
	p.failure = err
	p.mutex.Unlock()
}

func (p *Pin) readLocked() (bool, error) {
	if p.failure != nil {
		return false, p.failure
	}
	switch p.state {
	case StateHigh:
		return true, nil
	case StateLow:
		return false, nil
	}
	return false, ErrorUninitialized
}

func (p *Pin) writeLocked(high bool) {
	p.state = StateLow
	if high {
		p.state = StateHigh
	}
	p.writes = append(p.writes, p.state)
}

// IsHigh returns true if the register is high
func (p *Pin) IsHigh() (bool, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.reads++
	return p.readLocked()
}

// IsSetHigh returns true if the pin was last written high
func (p *Pin) IsSetHigh() (bool, error) {
	return p.IsHigh()
}

// SetLevel writes the register
func (p *Pin) SetLevel(high bool) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.failure != nil {
		return p.failure
	}
	p.writeLocked(high)
	return nil
}

// Toggle writes the opposite of the current level. It fails on an unset pin.
func (p *Pin) Toggle() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	high, err := p.readLocked()
	if err != nil {
		return err
	}
	p.writeLocked(!high)
	return nil
}
