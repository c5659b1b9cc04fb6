// Package shiftreg drives the outputs of a chain of 74HC595 shift registers
// over SPI. The chip has no readback, the stateful primitive is answered from
// a shadow copy of the chain. Its pins cannot be read as inputs.
package shiftreg

import (
	"errors"
	"sync"
)

var (
	ErrorPinRange = errors.New("Shift register pin out of range")
)

// Transferer clocks bytes out on a bus. *spi.Device satisfies it.
type Transferer interface {
	Transfer(writeBuf []byte, readBuf []byte) error
}

// Chain is a daisy chain of registers. Output n is bit n%8 of chip n/8, chip 0
// is the one connected to the bus.
type Chain struct {
	mutex  sync.Mutex
	dev    Transferer
	shadow []byte
}

// New returns a chain of chips registers on dev. Nothing is sent until the first write.
func New(dev Transferer, chips int) *Chain {
	return &Chain{
		dev:    dev,
		shadow: make([]byte, chips),
	}
}

func (c *Chain) NumPins() int {
	return 8 * len(c.shadow)
}

// Clear drives every output low
func (c *Chain) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i := range c.shadow {
		c.shadow[i] = 0
	}
	return c.flushLocked()
}

func (c *Chain) flushLocked() error {
	/* The first byte shifted out ends up in the chip furthest from the bus */
	buf := make([]byte, len(c.shadow))
	for i, v := range c.shadow {
		buf[len(buf)-1-i] = v
	}
	return c.dev.Transfer(buf, nil)
}

func (c *Chain) update(index int, f func(v byte) byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	old := c.shadow[index]
	c.shadow[index] = f(old)

	err := c.flushLocked()
	if err != nil {
		c.shadow[index] = old
	}
	return err
}

// Pin returns output n of the chain
func (c *Chain) Pin(n int) (*Pin, error) {
	if n < 0 || n >= c.NumPins() {
		return nil, ErrorPinRange
	}
	return &Pin{chain: c, index: n / 8, mask: 1 << uint(n%8)}, nil
}

// Pin is one register output
type Pin struct {
	chain *Chain
	index int
	mask  byte
}

func (p *Pin) SetLevel(high bool) error {
	return p.chain.update(p.index, func(v byte) byte {
		if high {
			return v | p.mask
		}
		return v &^ p.mask
	})
}

func (p *Pin) Toggle() error {
	return p.chain.update(p.index, func(v byte) byte { return v ^ p.mask })
}

// IsSetHigh reports the shadow state, it never fails
func (p *Pin) IsSetHigh() (bool, error) {
	p.chain.mutex.Lock()
	defer p.chain.mutex.Unlock()

	return p.chain.shadow[p.index]&p.mask != 0, nil
}
