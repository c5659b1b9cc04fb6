package switchhal

// InputPin is a pin whose physical level can be read
type InputPin interface {
	IsHigh() (bool, error)
}

// OutputPin is a pin that can be driven high or low
type OutputPin interface {
	SetLevel(high bool) error
}

// ToggleablePin is a pin that can invert its own output level
type ToggleablePin interface {
	Toggle() error
}

// StatefulPin is a pin that can report the level it was last driven to
type StatefulPin interface {
	IsSetHigh() (bool, error)
}

// ToggleableOutputPin combines OutputPin and ToggleablePin
type ToggleableOutputPin interface {
	OutputPin
	ToggleablePin
}

// StatefulOutputPin combines OutputPin and StatefulPin
type StatefulOutputPin interface {
	OutputPin
	StatefulPin
}

// StatefulToggleableOutputPin is an output that can toggle and report its
// last written level but cannot be read back from the wire, such as a shift
// register output
type StatefulToggleableOutputPin interface {
	OutputPin
	ToggleablePin
	StatefulPin
}

// IOPin supports all four pin primitives
type IOPin interface {
	InputPin
	OutputPin
	ToggleablePin
	StatefulPin
}
