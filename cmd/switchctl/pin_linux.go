package main

import (
	"fmt"

	"github.com/BertoldVdb/go-switchhal/expander"
	"github.com/BertoldVdb/go-switchhal/gpiocdevpin"
	"github.com/BertoldVdb/go-switchhal/linux-pio/gpio"
	"github.com/BertoldVdb/go-switchhal/linux-pio/i2c"
	"github.com/BertoldVdb/go-switchhal/linux-pio/spi"
	"github.com/BertoldVdb/go-switchhal/shiftreg"
	"github.com/BertoldVdb/go-switchhal/switchhal"
)

const consumerLabel = "switchctl"

func openChipPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	if opts.line < 0 && opts.name == "" {
		return nil, nil, ErrorNoLine
	}

	chip, err := gpio.OpenChip(opts.chip)
	if err != nil {
		return nil, nil, err
	}
	defer chip.Close()

	line := gpio.Line{Name: opts.name}
	if opts.line >= 0 {
		line.Offset = uint32(opts.line)
	}

	var pin *gpio.Pin
	if opts.input {
		pin, err = chip.OpenInputPin(consumerLabel, line)
	} else {
		pin, err = chip.OpenOutputPin(consumerLabel, line, opts.initial)
	}
	if err != nil {
		return nil, nil, err
	}
	return pin, pin.Close, nil
}

func openCdevPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	if opts.line < 0 {
		return nil, nil, ErrorNoLine
	}

	chip := fmt.Sprintf("gpiochip%d", opts.chip)

	var pin *gpiocdevpin.Pin
	var err error
	if opts.input {
		pin, err = gpiocdevpin.RequestInput(chip, opts.line)
	} else {
		pin, err = gpiocdevpin.RequestOutput(chip, opts.line, opts.initial)
	}
	if err != nil {
		return nil, nil, err
	}
	return pin, pin.Close, nil
}

func openExpanderPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	if opts.line < 0 {
		return nil, nil, ErrorNoLine
	}

	bus, err := i2c.OpenBus(opts.bus)
	if err != nil {
		return nil, nil, err
	}
	port := expander.New(bus.GetDevice(uint16(opts.address)))

	var pin *expander.Pin
	if opts.input {
		pin, err = port.Input(opts.line, false)
	} else if pin, err = port.Output(opts.line); err == nil {
		err = pin.SetLevel(opts.initial)
	}
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return pin, bus.Close, nil
}

// openShiftRegPin starts from an all low chain, the other outputs are cleared
// by the first write
func openShiftRegPin(opts *pinOptions) (switchhal.StatefulToggleableOutputPin, closer, error) {
	if opts.line < 0 {
		return nil, nil, ErrorNoLine
	}

	dev, err := spi.OpenDevice(opts.bus, opts.device)
	if err != nil {
		return nil, nil, err
	}

	pin, err := shiftreg.New(dev, opts.chips).Pin(opts.line)
	if err == nil {
		err = pin.SetLevel(opts.initial)
	}
	if err != nil {
		dev.Close()
		return nil, nil, err
	}
	return pin, dev.Close, nil
}
