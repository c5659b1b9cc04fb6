// Command switchctl drives or reads a single pin as a polarity aware switch.
//
//	switchctl -driver gpiocdev -chip 0 -line 17 -active-low -action on
//	switchctl -driver serial -port /dev/ttyUSB0 -modem rts -action toggle
//	switchctl -driver serial -port /dev/ttyUSB0 -modem cts -input
//	switchctl -driver shiftreg -bus 0 -chips 2 -line 9 -action on
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BertoldVdb/go-switchhal/logpin"
	"github.com/BertoldVdb/go-switchhal/logrusconfig"
	"github.com/BertoldVdb/go-switchhal/switchhal"
	"github.com/sirupsen/logrus"
)

var (
	ErrorAction      = errors.New("Unknown action")
	ErrorInputAction = errors.New("Inputs only support the status action")
)

func runInput(sw switchhal.InputSwitch, action string) error {
	if action != "status" {
		return ErrorInputAction
	}
	active, err := sw.IsActive()
	if err != nil {
		return err
	}
	fmt.Println("active:", active)
	return nil
}

func runOutput(sw switchhal.StatefulToggleableOutputSwitch, action string) error {
	switch action {
	case "on":
		return sw.On()
	case "off":
		return sw.Off()
	case "toggle":
		return sw.Toggle()
	case "status":
		on, err := sw.IsOn()
		if err != nil {
			return err
		}
		fmt.Println("on:", on)
		return nil
	}
	return ErrorAction
}

func run(opts *pinOptions, activeLow bool, action string, log *logrus.Entry) (closer, error) {
	if opts.input {
		pin, closeFunc, err := openInputPin(opts)
		if err != nil {
			return nil, err
		}

		var sw switchhal.InputSwitch
		if activeLow {
			sw = switchhal.IntoActiveLowInput(logpin.NewInput(pin, log))
		} else {
			sw = switchhal.IntoActiveHighInput(logpin.NewInput(pin, log))
		}
		return closeFunc, runInput(sw, action)
	}

	/* Outputs start in the off state */
	opts.initial = activeLow

	pin, closeFunc, err := openOutputPin(opts)
	if err != nil {
		return nil, err
	}

	var sw switchhal.StatefulToggleableOutputSwitch
	if activeLow {
		sw = switchhal.IntoActiveLowStatefulToggleableOutput(logpin.NewOutput(pin, log))
	} else {
		sw = switchhal.IntoActiveHighStatefulToggleableOutput(logpin.NewOutput(pin, log))
	}
	return closeFunc, runOutput(sw, action)
}

func main() {
	var opts pinOptions

	flag.StringVar(&opts.driver, "driver", "mock", "Pin driver: mock, gpiochip, gpiocdev, rpio, periph, serial, expander or shiftreg")
	flag.IntVar(&opts.chip, "chip", 0, "GPIO chip number (gpiochip, gpiocdev)")
	flag.IntVar(&opts.line, "line", -1, "Line offset (gpiochip, gpiocdev), BCM pin (rpio) or pin number (expander, shiftreg)")
	flag.StringVar(&opts.name, "name", "", "Line name (gpiochip) or pin name (periph)")
	flag.StringVar(&opts.port, "port", "/dev/ttyUSB0", "Serial port (serial)")
	flag.StringVar(&opts.modem, "modem", "rts", "Modem line (serial): dtr or rts, with -input also cts, dsr, dcd or rng")
	flag.IntVar(&opts.bus, "bus", 1, "I2C bus (expander) or SPI bus (shiftreg)")
	flag.IntVar(&opts.device, "device", 0, "SPI chip select (shiftreg)")
	flag.UintVar(&opts.address, "address", 0x20, "I2C address (expander)")
	flag.IntVar(&opts.chips, "chips", 1, "Number of chained registers (shiftreg)")
	flag.BoolVar(&opts.input, "input", false, "Open the pin as an input, only the status action is allowed")
	activeLow := flag.Bool("active-low", false, "The switch is active when the pin is low")
	action := flag.String("action", "status", "Action: on, off, toggle or status")
	logrusconfig.InitParam()
	flag.Parse()

	log := logrusconfig.GetPrefixedLogger(logrus.InfoLevel, opts.driver)

	closeFunc, err := run(&opts, *activeLow, *action, log)
	if closeFunc != nil {
		if cerr := closeFunc(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close pin")
		}
	}
	if err != nil {
		log.WithError(err).WithField("action", *action).Error("Action failed")
		os.Exit(1)
	}
}
