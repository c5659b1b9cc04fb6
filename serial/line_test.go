package serial

import (
	"errors"
	"testing"

	"github.com/BertoldVdb/go-switchhal/switchhal"
)

var (
	_ switchhal.InputPin = (*InputLine)(nil)
	_ switchhal.IOPin    = (*OutputLine)(nil)
)

type fakePort struct {
	pins   PortPins
	err    error
	writes int
}

func (f *fakePort) SetDTR(enabled bool) error {
	f.pins.DTR = enabled
	f.writes++
	return f.err
}

func (f *fakePort) SetRTS(enabled bool) error {
	f.pins.RTS = enabled
	f.writes++
	return f.err
}

func (f *fakePort) GetPins() (PortPins, error) {
	return f.pins, f.err
}

func (f *fakePort) Close() error {
	return nil
}

func TestParseModemLine(t *testing.T) {
	for i, name := range []string{"dtr", "RTS", "cts", "dsr", "dcd", "rng"} {
		line, err := ParseModemLine(name)
		if err != nil || line != ModemLine(i) {
			t.Error("Failed to parse", name, line, err)
		}
	}
	if _, err := ParseModemLine("txd"); err != ErrorLineName {
		t.Error("Unknown line was accepted")
	}
	if LineCTS.String() != "cts" || ModemLine(42).String() != "ModemLine(42)" {
		t.Error("Wrong line names")
	}
}

func TestOutputLineRestrictions(t *testing.T) {
	port := &fakePort{}
	for _, line := range []ModemLine{LineCTS, LineDSR, LineDCD, LineRNG} {
		if _, err := NewOutputLine(port, line); err != ErrorNotOutput {
			t.Error("Input line accepted as output", line)
		}
	}
	if _, err := NewInputLine(port, ModemLine(9)); err != ErrorLineName {
		t.Error("Invalid line accepted")
	}
}

func TestOutputLine(t *testing.T) {
	port := &fakePort{}
	rts, _ := NewOutputLine(port, LineRTS)

	relay := switchhal.IntoActiveLowIO(rts)
	relay.Off()
	if !port.pins.RTS || port.pins.DTR {
		t.Error("Active low off did not raise only RTS", port.pins)
	}
	relay.Toggle()
	if port.pins.RTS {
		t.Error("Toggle did not lower RTS")
	}
	if on, err := relay.IsOn(); err != nil || !on {
		t.Error("Relay not on after toggle", on, err)
	}

	dtr, _ := NewOutputLine(port, LineDTR)
	dtr.SetLevel(true)
	if !port.pins.DTR || port.writes != 3 {
		t.Error("DTR was not driven", port.pins, port.writes)
	}
}

func TestInputLine(t *testing.T) {
	port := &fakePort{pins: PortPins{CTS: true}}
	cts, _ := NewInputLine(port, LineCTS)
	dcd, _ := NewInputLine(port, LineDCD)

	if high, err := cts.IsHigh(); err != nil || !high {
		t.Error("CTS not high", high, err)
	}
	if high, err := dcd.IsHigh(); err != nil || high {
		t.Error("DCD not low", high, err)
	}

	errorIoctl := errors.New("ioctl failed")
	port.err = errorIoctl
	if _, err := switchhal.IntoActiveHighInput(cts).IsActive(); err != errorIoctl {
		t.Error("Error was not propagated", err)
	}
}
