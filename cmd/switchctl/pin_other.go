//go:build !linux

package main

import (
	"errors"

	"github.com/BertoldVdb/go-switchhal/switchhal"
)

var errorNotLinux = errors.New("Driver is only available on linux")

func openChipPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	return nil, nil, errorNotLinux
}

func openCdevPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	return nil, nil, errorNotLinux
}

func openExpanderPin(opts *pinOptions) (switchhal.IOPin, closer, error) {
	return nil, nil, errorNotLinux
}

func openShiftRegPin(opts *pinOptions) (switchhal.StatefulToggleableOutputPin, closer, error) {
	return nil, nil, errorNotLinux
}
