// Package switchhal turns a digital pin into a logical switch such as a
// button, LED, relay or transistor driver.
//
// A Switch owns one pin and is tagged with a Polarity type parameter
// (ActiveHigh or ActiveLow). The polarity decides which physical level
// means "active" or "on". It is resolved at compile time and is not stored
// in the switch.
//
// The methods a switch offers depend on what its pin can do. Input needs an
// InputPin, Output an OutputPin, ToggleableOutput and StatefulOutput add the
// toggle and read-back primitives, StatefulToggleableOutput needs both of
// them and IO needs all four. Wrapping a pin that
// lacks a primitive in a view that needs it does not compile.
//
//	led := switchhal.IntoActiveLowOutput(pin)
//	if err := led.On(); err != nil {
//		return err
//	}
//
// Every method performs exactly one pin access and returns the pin's error
// unchanged.
package switchhal
