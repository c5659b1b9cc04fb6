package switchhal

// Switch owns a pin and binds it to polarity P. It only provides construction
// and pin recovery, the capability views below embed it.
type Switch[Pin any, P Polarity] struct {
	pin Pin
}

// New takes ownership of pin
func New[P Polarity, Pin any](pin Pin) *Switch[Pin, P] {
	return &Switch[Pin, P]{pin: pin}
}

// IntoPin returns the owned pin so it can be used for something else. The
// switch must not be used afterwards, its pin is reset to the zero value.
func (s *Switch[Pin, P]) IntoPin() Pin {
	pin := s.pin

	var zero Pin
	s.pin = zero

	return pin
}

// Input is a switch that can be read, such as a button
type Input[Pin InputPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewInput wraps pin as an input switch
func NewInput[P Polarity, Pin InputPin](pin Pin) *Input[Pin, P] {
	return &Input[Pin, P]{Switch[Pin, P]{pin: pin}}
}

// Output is a switch that can be driven, such as an LED
type Output[Pin OutputPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewOutput wraps pin as an output switch
func NewOutput[P Polarity, Pin OutputPin](pin Pin) *Output[Pin, P] {
	return &Output[Pin, P]{Switch[Pin, P]{pin: pin}}
}

// ToggleableOutput is an output switch whose pin can toggle itself
type ToggleableOutput[Pin ToggleableOutputPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewToggleableOutput wraps pin as a toggleable output switch
func NewToggleableOutput[P Polarity, Pin ToggleableOutputPin](pin Pin) *ToggleableOutput[Pin, P] {
	return &ToggleableOutput[Pin, P]{Switch[Pin, P]{pin: pin}}
}

// StatefulOutput is an output switch that can report what it was last set to
type StatefulOutput[Pin StatefulOutputPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewStatefulOutput wraps pin as a stateful output switch
func NewStatefulOutput[P Polarity, Pin StatefulOutputPin](pin Pin) *StatefulOutput[Pin, P] {
	return &StatefulOutput[Pin, P]{Switch[Pin, P]{pin: pin}}
}

// StatefulToggleableOutput is an output switch that can toggle and report
// its state but not read the wire
type StatefulToggleableOutput[Pin StatefulToggleableOutputPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewStatefulToggleableOutput wraps pin as a stateful toggleable output switch
func NewStatefulToggleableOutput[P Polarity, Pin StatefulToggleableOutputPin](pin Pin) *StatefulToggleableOutput[Pin, P] {
	return &StatefulToggleableOutput[Pin, P]{Switch[Pin, P]{pin: pin}}
}

// IO is a switch over a pin that supports every primitive
type IO[Pin IOPin, P Polarity] struct {
	Switch[Pin, P]
}

// NewIO wraps pin as a switch with all capabilities
func NewIO[P Polarity, Pin IOPin](pin Pin) *IO[Pin, P] {
	return &IO[Pin, P]{Switch[Pin, P]{pin: pin}}
}
