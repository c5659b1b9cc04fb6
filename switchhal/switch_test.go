package switchhal_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/BertoldVdb/go-switchhal/switchhal"
	"github.com/BertoldVdb/go-switchhal/switchhal/mock"
)

func TestActiveLevel(t *testing.T) {
	if !switchhal.ActiveLevel[switchhal.ActiveHigh]() {
		t.Error("ActiveHigh is not active high")
	}
	if switchhal.ActiveLevel[switchhal.ActiveLow]() {
		t.Error("ActiveLow is not active low")
	}
	if switchhal.PolarityName[switchhal.ActiveHigh]() != "active-high" {
		t.Error("Wrong name for ActiveHigh")
	}
	if switchhal.PolarityName[switchhal.ActiveLow]() != "active-low" {
		t.Error("Wrong name for ActiveLow")
	}
}

func TestIntoPin(t *testing.T) {
	pin := mock.New()

	led := switchhal.NewOutput[switchhal.ActiveLow](pin)
	if led.On() != nil {
		t.Fatal("On failed")
	}

	back := led.IntoPin()
	if back != pin {
		t.Error("IntoPin returned a different pin")
	}
	if back.State() != mock.StateLow {
		t.Error("Returned pin does not reflect the last write")
	}

	s := switchhal.New[switchhal.ActiveHigh](pin)
	if s.IntoPin() != pin {
		t.Error("Switch IntoPin returned a different pin")
	}
	if s.IntoPin() != nil {
		t.Error("Switch still holds the pin after IntoPin")
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		state     mock.State
		activeLow bool
		active    bool
	}{
		{mock.StateHigh, false, true},
		{mock.StateLow, false, false},
		{mock.StateHigh, true, false},
		{mock.StateLow, true, true},
	}

	for _, test := range tests {
		var button switchhal.InputSwitch
		if test.activeLow {
			button = switchhal.NewInput[switchhal.ActiveLow](mock.WithState(test.state))
		} else {
			button = switchhal.NewInput[switchhal.ActiveHigh](mock.WithState(test.state))
		}

		active, err := button.IsActive()
		if err != nil {
			t.Error("IsActive failed", err)
		}
		if active != test.active {
			t.Error("Wrong result for", test.state, "activeLow", test.activeLow)
		}
	}
}

func TestInputPropagatesErrors(t *testing.T) {
	if _, err := switchhal.IntoActiveHighInput(mock.New()).IsActive(); err != mock.ErrorUninitialized {
		t.Error("ActiveHigh did not return uninitialized error", err)
	}
	if _, err := switchhal.IntoActiveLowInput(mock.New()).IsActive(); err != mock.ErrorUninitialized {
		t.Error("ActiveLow did not return uninitialized error", err)
	}
}

func TestOutputLevels(t *testing.T) {
	pin := mock.New()
	led := switchhal.IntoActiveHighOutput(pin)

	if err := led.On(); err != nil {
		t.Fatal("On failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveHigh on did not drive high")
	}
	if err := led.Off(); err != nil {
		t.Fatal("Off failed", err)
	}
	if pin.State() != mock.StateLow {
		t.Error("ActiveHigh off did not drive low")
	}

	pin = mock.New()
	relay := switchhal.IntoActiveLowOutput(pin)

	if err := relay.On(); err != nil {
		t.Fatal("On failed", err)
	}
	if pin.State() != mock.StateLow {
		t.Error("ActiveLow on did not drive low")
	}
	if err := relay.Off(); err != nil {
		t.Fatal("Off failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveLow off did not drive high")
	}

	if len(pin.Writes()) != 2 {
		t.Error("Expected exactly one write per call", pin.Writes())
	}
}

func TestOutputPropagatesErrors(t *testing.T) {
	pin := mock.New()
	errorBus := errors.New("bus fault")
	pin.SetFailure(errorBus)

	led := switchhal.NewStatefulOutput[switchhal.ActiveLow](pin)
	if led.On() != errorBus {
		t.Error("On did not return pin error")
	}
	if led.Off() != errorBus {
		t.Error("Off did not return pin error")
	}
	if on, err := led.IsOn(); err != errorBus || on {
		t.Error("IsOn did not return pin error", on, err)
	}
	if off, err := led.IsOff(); err != errorBus || off {
		t.Error("IsOff did not return pin error", off, err)
	}
}

func testProperties[P switchhal.Polarity](t *testing.T) {
	name := switchhal.PolarityName[P]()
	pin := mock.New()
	s := switchhal.IntoIO[P](pin)

	for _, f := range []func() (bool, error){s.IsActive, s.IsOn, s.IsOff} {
		if v, err := f(); err != mock.ErrorUninitialized || v {
			t.Error(name, "fresh pin did not return uninitialized error", v, err)
		}
	}

	if s.On() != nil {
		t.Fatal(name, "On failed")
	}
	if active, err := s.IsActive(); err != nil || !active {
		t.Error(name, "not active after On", active, err)
	}
	if on, err := s.IsOn(); err != nil || !on {
		t.Error(name, "IsOn false after On", on, err)
	}
	if off, err := s.IsOff(); err != nil || off {
		t.Error(name, "IsOff true after On", off, err)
	}

	if s.Off() != nil {
		t.Fatal(name, "Off failed")
	}
	if active, err := s.IsActive(); err != nil || active {
		t.Error(name, "active after Off", active, err)
	}
	on, err1 := s.IsOn()
	off, err2 := s.IsOff()
	if err1 != nil || err2 != nil || on || !off {
		t.Error(name, "IsOn/IsOff wrong after Off", on, off)
	}

	for _, start := range []bool{false, true} {
		if err := pin.SetLevel(start); err != nil {
			t.Fatal(name, "SetLevel failed", err)
		}
		before := pin.State()

		if err := s.Toggle(); err != nil {
			t.Fatal(name, "Toggle failed", err)
		}
		if pin.State() == before {
			t.Error(name, "Toggle did not change the level")
		}
		if err := s.Toggle(); err != nil {
			t.Fatal(name, "Toggle failed", err)
		}
		if pin.State() != before {
			t.Error(name, "Two toggles did not restore the level")
		}
	}

	if s.IntoPin() != pin {
		t.Error(name, "IntoPin returned a different pin")
	}
}

func TestProperties(t *testing.T) {
	testProperties[switchhal.ActiveHigh](t)
	testProperties[switchhal.ActiveLow](t)
}

func TestScenarios(t *testing.T) {
	/* ActiveHigh, fresh pin, on */
	pin := mock.New()
	hi := switchhal.IntoActiveHighIO(pin)
	if err := hi.On(); err != nil {
		t.Fatal("ActiveHigh on failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveHigh on: pin not high")
	}
	if active, err := hi.IsActive(); err != nil || !active {
		t.Error("ActiveHigh on: not active")
	}

	/* ActiveLow, fresh pin, on */
	pin = mock.New()
	lo := switchhal.IntoActiveLowIO(pin)
	if err := lo.On(); err != nil {
		t.Fatal("ActiveLow on failed", err)
	}
	if pin.State() != mock.StateLow {
		t.Error("ActiveLow on: pin not low")
	}
	if active, err := lo.IsActive(); err != nil || !active {
		t.Error("ActiveLow on: not active")
	}

	/* ActiveHigh, off */
	pin = mock.New()
	hi = switchhal.IntoActiveHighIO(pin)
	if err := hi.Off(); err != nil {
		t.Fatal("ActiveHigh off failed", err)
	}
	if pin.State() != mock.StateLow {
		t.Error("ActiveHigh off: pin not low")
	}
	if on, err := hi.IsOn(); err != nil || on {
		t.Error("ActiveHigh off: IsOn true")
	}
	if off, err := hi.IsOff(); err != nil || !off {
		t.Error("ActiveHigh off: IsOff false")
	}

	/* ActiveLow, off */
	pin = mock.New()
	lo = switchhal.IntoActiveLowIO(pin)
	if err := lo.Off(); err != nil {
		t.Fatal("ActiveLow off failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveLow off: pin not high")
	}
	if on, err := lo.IsOn(); err != nil || on {
		t.Error("ActiveLow off: IsOn true")
	}
	if off, err := lo.IsOff(); err != nil || !off {
		t.Error("ActiveLow off: IsOff false")
	}

	/* ActiveHigh, off then toggle */
	pin = mock.New()
	hi = switchhal.IntoActiveHighIO(pin)
	if err := hi.Off(); err != nil {
		t.Fatal("ActiveHigh off failed", err)
	}
	if err := hi.Toggle(); err != nil {
		t.Fatal("ActiveHigh toggle failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveHigh toggle: pin not high")
	}
	if active, err := hi.IsActive(); err != nil || !active {
		t.Error("ActiveHigh toggle: not active")
	}
}

func TestToggleableOutput(t *testing.T) {
	pin := mock.New()
	led := switchhal.NewToggleableOutput[switchhal.ActiveLow](pin)

	if err := led.Off(); err != nil {
		t.Fatal("Off failed", err)
	}
	if err := led.Toggle(); err != nil {
		t.Fatal("Toggle failed", err)
	}
	if pin.State() != mock.StateLow {
		t.Error("Toggle after off did not drive low")
	}

	writes := pin.Writes()
	if len(writes) != 2 || writes[0] != mock.StateHigh || writes[1] != mock.StateLow {
		t.Error("Unexpected writes", writes)
	}
}

func TestReadsOncePerCall(t *testing.T) {
	pin := mock.WithState(mock.StateLow)
	s := switchhal.IntoActiveLowIO(pin)

	calls := []struct {
		name string
		f    func() (bool, error)
	}{
		{"IsActive", s.IsActive},
		{"IsOn", s.IsOn},
		{"IsOff", s.IsOff},
	}

	for _, call := range calls {
		before := pin.Reads()
		if _, err := call.f(); err != nil {
			t.Fatal(call.name, "failed", err)
		}
		if pin.Reads()-before != 1 {
			t.Error(call.name, "did not read exactly once", pin.Reads()-before)
		}
	}

	/* Failing reads still touch the pin only once */
	pin.SetFailure(errors.New("bus fault"))
	for _, call := range calls {
		before := pin.Reads()
		call.f()
		if pin.Reads()-before != 1 {
			t.Error(call.name, "retried a failed read", pin.Reads()-before)
		}
	}

	if len(pin.Writes()) != 0 {
		t.Error("Reads wrote to the pin", pin.Writes())
	}
}

func TestConversions(t *testing.T) {
	pin := mock.New()
	toggler := switchhal.IntoActiveLowToggleableOutput(pin)
	if err := toggler.On(); err != nil {
		t.Fatal("On failed", err)
	}
	if err := toggler.Toggle(); err != nil {
		t.Fatal("Toggle failed", err)
	}
	if pin.State() != mock.StateHigh {
		t.Error("ActiveLow toggleable output: on then toggle did not end high")
	}
	if toggler.IntoPin() != pin {
		t.Error("ToggleableOutput IntoPin returned a different pin")
	}

	pin = mock.New()
	if err := switchhal.IntoActiveHighToggleableOutput(pin).On(); err != nil || pin.State() != mock.StateHigh {
		t.Error("ActiveHigh toggleable output: on did not drive high", err)
	}

	pin = mock.New()
	stateful := switchhal.IntoActiveHighStatefulOutput(pin)
	if err := stateful.On(); err != nil {
		t.Fatal("On failed", err)
	}
	if on, err := stateful.IsOn(); err != nil || !on || pin.State() != mock.StateHigh {
		t.Error("ActiveHigh stateful output: not on after On", on, err)
	}

	pin = mock.New()
	relay := switchhal.IntoActiveLowStatefulOutput(pin)
	if err := relay.Off(); err != nil {
		t.Fatal("Off failed", err)
	}
	if off, err := relay.IsOff(); err != nil || !off || pin.State() != mock.StateHigh {
		t.Error("ActiveLow stateful output: not off after Off", off, err)
	}
}

func testStatefulToggleableOutput[P switchhal.Polarity](t *testing.T, s switchhal.StatefulToggleableOutputSwitch, pin *mock.Pin) {
	name := switchhal.PolarityName[P]()

	if err := s.Off(); err != nil {
		t.Fatal(name, "Off failed", err)
	}
	if off, err := s.IsOff(); err != nil || !off {
		t.Error(name, "not off after Off", off, err)
	}
	if err := s.Toggle(); err != nil {
		t.Fatal(name, "Toggle failed", err)
	}
	if on, err := s.IsOn(); err != nil || !on {
		t.Error(name, "not on after Off and Toggle", on, err)
	}
	if high := pin.State() == mock.StateHigh; high != switchhal.ActiveLevel[P]() {
		t.Error(name, "pin is not at the active level", pin.State())
	}
	if len(pin.Writes()) != 2 {
		t.Error(name, "Expected exactly one write per call", pin.Writes())
	}
}

func TestStatefulToggleableOutput(t *testing.T) {
	pin := mock.New()
	testStatefulToggleableOutput[switchhal.ActiveHigh](t, switchhal.IntoActiveHighStatefulToggleableOutput(pin), pin)

	pin = mock.New()
	testStatefulToggleableOutput[switchhal.ActiveLow](t, switchhal.IntoActiveLowStatefulToggleableOutput(pin), pin)

	pin = mock.New()
	led := switchhal.NewStatefulToggleableOutput[switchhal.ActiveLow](pin)
	if led.IntoPin() != pin {
		t.Error("IntoPin returned a different pin")
	}
	if led.IntoPin() != nil {
		t.Error("Switch still holds the pin after IntoPin")
	}
}

func TestSwitchIsZeroSized(t *testing.T) {
	type pinOnly struct{ pin *mock.Pin }
	var s switchhal.IO[*mock.Pin, switchhal.ActiveLow]
	if unsafe.Sizeof(s) != unsafe.Sizeof(pinOnly{}) {
		t.Error("Polarity takes up space in the switch")
	}
}
