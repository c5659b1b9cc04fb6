package switchhal

// ActiveHigh marks a Switch whose pin is active (on) when it is driven or read high
type ActiveHigh struct{}

// ActiveLow marks a Switch whose pin is active (on) when it is driven or read low
type ActiveLow struct{}

func (ActiveHigh) activeHigh() bool { return true }
func (ActiveLow) activeHigh() bool { return false }

func (ActiveHigh) String() string { return "active-high" }
func (ActiveLow) String() string { return "active-low" }

// Polarity is satisfied only by ActiveHigh and ActiveLow. It is used as a type
// parameter, the marker itself is never stored.
type Polarity interface {
	ActiveHigh | ActiveLow

	activeHigh() bool
	String() string
}

// ActiveLevel returns the physical level that polarity P considers active.
// True means high.
func ActiveLevel[P Polarity]() bool {
	var p P
	return p.activeHigh()
}

// PolarityName returns a printable name for P
func PolarityName[P Polarity]() string {
	var p P
	return p.String()
}
