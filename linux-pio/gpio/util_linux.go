package gpio

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

func ioctlPtr(f *os.File, request uintptr, data unsafe.Pointer) error {
	_, _, errNo := unix.Syscall(unix.SYS_IOCTL, f.Fd(), request, uintptr(data))
	if errNo != 0 {
		return fmt.Errorf("GPIO ioctl failed: %s", errNo.Error())
	}
	return nil
}

func bytesToString(input []byte) string {
	if i := strings.IndexByte(string(input), 0); i >= 0 {
		input = input[:i]
	}
	return string(input)
}

func stringToBytes(input string, output []byte) {
	n := copy(output, input)

	if n >= len(output) {
		n = len(output) - 1
	}

	// Null terminate string
	output[n] = 0
}
