//go:build !linux

package serial

import "errors"

func openPortOs(options *PortOptions) (Port, error) {
	return nil, errors.New("Serial modem lines are only supported on linux")
}
