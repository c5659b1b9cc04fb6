package main

import (
	"errors"
	"fmt"

	"github.com/BertoldVdb/go-switchhal/periphpin"
	"github.com/BertoldVdb/go-switchhal/rpiopin"
	"github.com/BertoldVdb/go-switchhal/serial"
	"github.com/BertoldVdb/go-switchhal/switchhal"
	"github.com/BertoldVdb/go-switchhal/switchhal/mock"
	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/host/v3"
)

var (
	ErrorDriver  = errors.New("Unknown driver")
	ErrorNoLine  = errors.New("No line given")
	ErrorNoName  = errors.New("No pin name given")
	ErrorNoInput = errors.New("Driver has no inputs")
)

type pinOptions struct {
	driver  string
	chip    int
	line    int
	name    string
	port    string
	modem   string
	bus     int
	device  int
	address uint
	chips   int
	input   bool
	initial bool
}

type closer func() error

func openPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	switch opts.driver {
	case "mock":
		pin := mock.New()
		return pin, nil, pin.SetLevel(opts.initial)

	case "gpiochip":
		return openChipPin(opts)

	case "gpiocdev":
		return openCdevPin(opts)

	case "rpio":
		if opts.line < 0 {
			return nil, nil, ErrorNoLine
		}
		if err := rpio.Open(); err != nil {
			return nil, nil, fmt.Errorf("error opening rpio: %v", err)
		}
		if opts.input {
			return rpiopin.NewInput(opts.line, rpio.PullOff), rpio.Close, nil
		}
		pin := rpiopin.NewOutput(opts.line)
		return pin, rpio.Close, pin.SetLevel(opts.initial)

	case "periph":
		if opts.name == "" {
			return nil, nil, ErrorNoName
		}
		if _, err := host.Init(); err != nil {
			return nil, nil, err
		}
		pin, err := periphpin.ByName(opts.name)
		if err != nil {
			return nil, nil, err
		}
		return pin, pin.Halt, nil

	case "serial":
		return openSerialPin(opts)

	case "expander":
		return openExpanderPin(opts)
	}

	return nil, nil, ErrorDriver
}

// openInputPin opens a pin for reading. Serial status lines can only be read,
// the other drivers hand out their IO pin.
func openInputPin(opts *pinOptions) (switchhal.InputPin, closer, error) {
	switch opts.driver {
	case "serial":
		return openSerialInput(opts)
	case "shiftreg":
		return nil, nil, ErrorNoInput
	}

	in := *opts
	in.input = true
	pin, closeFunc, err := openPin(&in)
	if err != nil {
		return nil, nil, err
	}
	return pin, closeFunc, nil
}

// openOutputPin opens a pin for driving. Its level is set to opts.initial.
func openOutputPin(opts *pinOptions) (switchhal.StatefulToggleableOutputPin, closer, error) {
	if opts.driver == "shiftreg" {
		return openShiftRegPin(opts)
	}

	out := *opts
	out.input = false
	pin, closeFunc, err := openPin(&out)
	if err != nil {
		return nil, nil, err
	}
	return pin, closeFunc, nil
}

func openSerialPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	line, err := serial.ParseModemLine(opts.modem)
	if err != nil {
		return nil, nil, err
	}
	if !line.IsOutput() {
		return nil, nil, serial.ErrorNotOutput
	}

	port, err := serial.Open(&serial.PortOptions{PortName: opts.port})
	if err != nil {
		return nil, nil, err
	}

	out, err := serial.NewOutputLine(port, line)
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	return out, port.Close, nil
}

func openSerialInput(opts *pinOptions) (switchhal.InputPin, closer, error) {
	line, err := serial.ParseModemLine(opts.modem)
	if err != nil {
		return nil, nil, err
	}

	port, err := serial.Open(&serial.PortOptions{PortName: opts.port})
	if err != nil {
		return nil, nil, err
	}

	in, err := serial.NewInputLine(port, line)
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	return in, port.Close, nil
}
