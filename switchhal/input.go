package switchhal

// InputSwitch is a switch that can be read, such as a button
type InputSwitch interface {
	// IsActive returns true if the switch is activated, e.g. when a button is pressed
	IsActive() (bool, error)
}

var (
	_ InputSwitch = (*Input[InputPin, ActiveHigh])(nil)
	_ InputSwitch = (*IO[IOPin, ActiveLow])(nil)
)

func isActive[P Polarity, Pin InputPin](pin Pin) (bool, error) {
	high, err := pin.IsHigh()
	if err != nil {
		return false, err
	}
	return high == ActiveLevel[P](), nil
}

// IsActive reads the pin once and reports whether it is at the active level
func (s *Input[Pin, P]) IsActive() (bool, error) {
	return isActive[P](s.pin)
}

// IsActive reads the pin once and reports whether it is at the active level
func (s *IO[Pin, P]) IsActive() (bool, error) {
	return isActive[P](s.pin)
}
