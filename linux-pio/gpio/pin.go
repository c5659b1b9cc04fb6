package gpio

// lineHandle is the part of *Lines that a Pin needs
type lineHandle interface {
	GetValue() (bool, error)
	SetValue(value bool) error
	Close() error
}

// Pin is a single GPIO line usable as a switchhal pin. Reads go to the kernel
// every time, for output lines that returns the level being driven.
type Pin struct {
	handle lineHandle
}

func newPin(handle lineHandle) *Pin {
	return &Pin{handle: handle}
}

func (p *Pin) IsHigh() (bool, error) {
	return p.handle.GetValue()
}

func (p *Pin) IsSetHigh() (bool, error) {
	return p.handle.GetValue()
}

func (p *Pin) SetLevel(high bool) error {
	return p.handle.SetValue(high)
}

// Toggle reads the line and writes the opposite level
func (p *Pin) Toggle() error {
	v, err := p.handle.GetValue()
	if err != nil {
		return err
	}
	return p.handle.SetValue(!v)
}

// Close releases the line
func (p *Pin) Close() error {
	return p.handle.Close()
}
