package gpio

import (
	"errors"
	"unsafe"
)

var ErrorLineIndex = errors.New("Line index out of range")

type handleDataRaw struct {
	values [maxHandleLines]uint8
}

func (gl *Lines) Close() error {
	return gl.file.Close()
}

// NumLines returns the number of lines in the handle
func (gl *Lines) NumLines() int {
	return int(gl.numLines)
}

func (gl *Lines) SetValues(values []bool) error {
	sd := handleDataRaw{}

	for i, b := range values {
		if i >= int(gl.numLines) {
			return ErrorLineIndex
		}

		if b {
			sd.values[i] = 1
		}
	}

	return ioctlPtr(gl.file, ioctlHandleSetLineValue, unsafe.Pointer(&sd))
}

// GetValues reads all lines. For output lines the kernel reports the driven value.
func (gl *Lines) GetValues() ([]bool, error) {
	gd := handleDataRaw{}

	err := ioctlPtr(gl.file, ioctlHandleGetLineValue, unsafe.Pointer(&gd))
	if err != nil {
		return nil, err
	}

	output := make([]bool, gl.numLines)
	for i := uint32(0); i < gl.numLines; i++ {
		output[i] = gd.values[i] > 0
	}

	return output, nil
}

func (gl *Lines) SetValue(value bool) error {
	return gl.SetValues([]bool{value})
}

func (gl *Lines) GetValue() (bool, error) {
	output, err := gl.GetValues()
	if err != nil {
		return false, err
	}

	return output[0], nil
}
