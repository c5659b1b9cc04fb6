package switchhal

// OutputSwitch is a switch that can be driven, such as an LED or a transistor
type OutputSwitch interface {
	// On drives the switch to its active level
	On() error
	// Off drives the switch to its inactive level
	Off() error
}

// ToggleableOutputSwitch is a switch that can flip its current state
type ToggleableOutputSwitch interface {
	// Toggle inverts the physical pin level. It does not look at the polarity.
	Toggle() error
}

// StatefulOutputSwitch is a switch that can report what it was last set to
type StatefulOutputSwitch interface {
	// IsOn returns true if the switch was last set to its active level
	IsOn() (bool, error)
	// IsOff returns true if the switch was last set to its inactive level
	IsOff() (bool, error)
}

// StatefulToggleableOutputSwitch is implemented by outputs that can toggle
// and report their state
type StatefulToggleableOutputSwitch interface {
	OutputSwitch
	ToggleableOutputSwitch
	StatefulOutputSwitch
}

var (
	_ OutputSwitch           = (*Output[OutputPin, ActiveHigh])(nil)
	_ OutputSwitch           = (*ToggleableOutput[ToggleableOutputPin, ActiveHigh])(nil)
	_ ToggleableOutputSwitch = (*ToggleableOutput[ToggleableOutputPin, ActiveLow])(nil)
	_ OutputSwitch           = (*StatefulOutput[StatefulOutputPin, ActiveHigh])(nil)
	_ StatefulOutputSwitch   = (*StatefulOutput[StatefulOutputPin, ActiveLow])(nil)
	_ OutputSwitch           = (*IO[IOPin, ActiveHigh])(nil)

	_ StatefulToggleableOutputSwitch = (*StatefulToggleableOutput[StatefulToggleableOutputPin, ActiveLow])(nil)
	_ StatefulToggleableOutputSwitch = (*IO[IOPin, ActiveHigh])(nil)
	_ ToggleableOutputSwitch = (*IO[IOPin, ActiveHigh])(nil)
	_ StatefulOutputSwitch   = (*IO[IOPin, ActiveLow])(nil)
)

func drive[P Polarity, Pin OutputPin](pin Pin, on bool) error {
	return pin.SetLevel(on == ActiveLevel[P]())
}

func isOn[P Polarity, Pin StatefulPin](pin Pin) (bool, error) {
	high, err := pin.IsSetHigh()
	if err != nil {
		return false, err
	}
	return high == ActiveLevel[P](), nil
}

func isOff[P Polarity, Pin StatefulPin](pin Pin) (bool, error) {
	high, err := pin.IsSetHigh()
	if err != nil {
		return false, err
	}
	return high != ActiveLevel[P](), nil
}

// On drives the pin to the active level
func (s *Output[Pin, P]) On() error { return drive[P](s.pin, true) }

// Off drives the pin to the inactive level
func (s *Output[Pin, P]) Off() error { return drive[P](s.pin, false) }

// On drives the pin to the active level
func (s *ToggleableOutput[Pin, P]) On() error { return drive[P](s.pin, true) }

// Off drives the pin to the inactive level
func (s *ToggleableOutput[Pin, P]) Off() error { return drive[P](s.pin, false) }

// Toggle flips the physical pin level
func (s *ToggleableOutput[Pin, P]) Toggle() error { return s.pin.Toggle() }

// On drives the pin to the active level
func (s *StatefulOutput[Pin, P]) On() error { return drive[P](s.pin, true) }

// Off drives the pin to the inactive level
func (s *StatefulOutput[Pin, P]) Off() error { return drive[P](s.pin, false) }

// IsOn reports whether the pin was last set to the active level
func (s *StatefulOutput[Pin, P]) IsOn() (bool, error) { return isOn[P](s.pin) }

// IsOff reports whether the pin was last set to the inactive level
func (s *StatefulOutput[Pin, P]) IsOff() (bool, error) { return isOff[P](s.pin) }

// On drives the pin to the active level
func (s *StatefulToggleableOutput[Pin, P]) On() error { return drive[P](s.pin, true) }

// Off drives the pin to the inactive level
func (s *StatefulToggleableOutput[Pin, P]) Off() error { return drive[P](s.pin, false) }

// Toggle flips the physical pin level
func (s *StatefulToggleableOutput[Pin, P]) Toggle() error { return s.pin.Toggle() }

// IsOn reports whether the pin was last set to the active level
func (s *StatefulToggleableOutput[Pin, P]) IsOn() (bool, error) { return isOn[P](s.pin) }

// IsOff reports whether the pin was last set to the inactive level
func (s *StatefulToggleableOutput[Pin, P]) IsOff() (bool, error) { return isOff[P](s.pin) }

// On drives the pin to the active level
func (s *IO[Pin, P]) On() error { return drive[P](s.pin, true) }

// Off drives the pin to the inactive level
func (s *IO[Pin, P]) Off() error { return drive[P](s.pin, false) }

// Toggle flips the physical pin level, the polarity plays no role
func (s *IO[Pin, P]) Toggle() error { return s.pin.Toggle() }

// IsOn reports whether the pin was last set to the active level
func (s *IO[Pin, P]) IsOn() (bool, error) { return isOn[P](s.pin) }

// IsOff reports whether the pin was last set to the inactive level
func (s *IO[Pin, P]) IsOff() (bool, error) { return isOff[P](s.pin) }
