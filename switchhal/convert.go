package switchhal

// IOSwitch is implemented by IO switches
type IOSwitch interface {
	InputSwitch
	OutputSwitch
	ToggleableOutputSwitch
	StatefulOutputSwitch
}

var _ IOSwitch = (*IO[IOPin, ActiveHigh])(nil)

// IntoInput wraps pin as an input switch with polarity P
func IntoInput[P Polarity, Pin InputPin](pin Pin) *Input[Pin, P] {
	return NewInput[P](pin)
}

// IntoActiveHighInput wraps pin as an input switch that is active when high
func IntoActiveHighInput[Pin InputPin](pin Pin) *Input[Pin, ActiveHigh] {
	return IntoInput[ActiveHigh](pin)
}

// IntoActiveLowInput wraps pin as an input switch that is active when low
func IntoActiveLowInput[Pin InputPin](pin Pin) *Input[Pin, ActiveLow] {
	return IntoInput[ActiveLow](pin)
}

// IntoOutput wraps pin as an output switch with polarity P
func IntoOutput[P Polarity, Pin OutputPin](pin Pin) *Output[Pin, P] {
	return NewOutput[P](pin)
}

// IntoActiveHighOutput wraps pin as an output switch that is on when high
func IntoActiveHighOutput[Pin OutputPin](pin Pin) *Output[Pin, ActiveHigh] {
	return IntoOutput[ActiveHigh](pin)
}

// IntoActiveLowOutput wraps pin as an output switch that is on when low
func IntoActiveLowOutput[Pin OutputPin](pin Pin) *Output[Pin, ActiveLow] {
	return IntoOutput[ActiveLow](pin)
}

// IntoToggleableOutput wraps pin as a toggleable output switch with polarity P
func IntoToggleableOutput[P Polarity, Pin ToggleableOutputPin](pin Pin) *ToggleableOutput[Pin, P] {
	return NewToggleableOutput[P](pin)
}

// IntoActiveHighToggleableOutput wraps pin as a toggleable output switch that is on when high
func IntoActiveHighToggleableOutput[Pin ToggleableOutputPin](pin Pin) *ToggleableOutput[Pin, ActiveHigh] {
	return IntoToggleableOutput[ActiveHigh](pin)
}

// IntoActiveLowToggleableOutput wraps pin as a toggleable output switch that is on when low
func IntoActiveLowToggleableOutput[Pin ToggleableOutputPin](pin Pin) *ToggleableOutput[Pin, ActiveLow] {
	return IntoToggleableOutput[ActiveLow](pin)
}

// IntoStatefulOutput wraps pin as a stateful output switch with polarity P
func IntoStatefulOutput[P Polarity, Pin StatefulOutputPin](pin Pin) *StatefulOutput[Pin, P] {
	return NewStatefulOutput[P](pin)
}

// IntoActiveHighStatefulOutput wraps pin as a stateful output switch that is on when high
func IntoActiveHighStatefulOutput[Pin StatefulOutputPin](pin Pin) *StatefulOutput[Pin, ActiveHigh] {
	return IntoStatefulOutput[ActiveHigh](pin)
}

// IntoActiveLowStatefulOutput wraps pin as a stateful output switch that is on when low
func IntoActiveLowStatefulOutput[Pin StatefulOutputPin](pin Pin) *StatefulOutput[Pin, ActiveLow] {
	return IntoStatefulOutput[ActiveLow](pin)
}

// IntoStatefulToggleableOutput wraps pin as a stateful toggleable output switch with polarity P
func IntoStatefulToggleableOutput[P Polarity, Pin StatefulToggleableOutputPin](pin Pin) *StatefulToggleableOutput[Pin, P] {
	return NewStatefulToggleableOutput[P](pin)
}

// IntoActiveHighStatefulToggleableOutput wraps pin as a stateful toggleable output switch that is on when high
func IntoActiveHighStatefulToggleableOutput[Pin StatefulToggleableOutputPin](pin Pin) *StatefulToggleableOutput[Pin, ActiveHigh] {
	return IntoStatefulToggleableOutput[ActiveHigh](pin)
}

// IntoActiveLowStatefulToggleableOutput wraps pin as a stateful toggleable output switch that is on when low
func IntoActiveLowStatefulToggleableOutput[Pin StatefulToggleableOutputPin](pin Pin) *StatefulToggleableOutput[Pin, ActiveLow] {
	return IntoStatefulToggleableOutput[ActiveLow](pin)
}

// IntoIO wraps pin as an IO switch with polarity P
func IntoIO[P Polarity, Pin IOPin](pin Pin) *IO[Pin, P] {
	return NewIO[P](pin)
}

// IntoActiveHighIO wraps pin as an IO switch that is active when high
func IntoActiveHighIO[Pin IOPin](pin Pin) *IO[Pin, ActiveHigh] {
	return IntoIO[ActiveHigh](pin)
}

// IntoActiveLowIO wraps pin as an IO switch that is active when low
func IntoActiveLowIO[Pin IOPin](pin Pin) *IO[Pin, ActiveLow] {
	return IntoIO[ActiveLow](pin)
}
