package serial

import (
	"os"

	"golang.org/x/sys/unix"
)

type serialPortLinux struct {
	file *os.File
}

func (port *serialPortLinux) fd() int {
	return int(port.file.Fd())
}

func (port *serialPortLinux) configure(rate uint32) error {
	termios := &unix.Termios{}
	/* Raw 8N1, no flow control, reads return after 1s */
	termios.Cflag = unix.CS8 | unix.CLOCAL | unix.CREAD
	termios.Cc[unix.VTIME] = 10
	termios.Cc[unix.VMIN] = 0

	if rate != 0 {
		termios.Cflag |= unix.BOTHER
		termios.Ispeed = rate
		termios.Ospeed = rate
	}

	return unix.IoctlSetTermios(port.fd(), unix.TCSETS2, termios)
}

func openPortOs(options *PortOptions) (*serialPortLinux, error) {
	file, err := os.OpenFile(options.PortName, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, err
	}

	port := &serialPortLinux{file: file}

	err = port.configure(options.InterfaceRate)
	if err == nil {
		err = unix.SetNonblock(port.fd(), false)
	}
	if err != nil {
		file.Close()
		return nil, err
	}

	return port, nil
}

func (port *serialPortLinux) setPin(enabled bool, mask int) error {
	req := uint(unix.TIOCMBIC)
	if enabled {
		req = unix.TIOCMBIS
	}

	err := unix.IoctlSetPointerInt(port.fd(), req, mask)
	if err != nil {
		return os.NewSyscallError("TIOCMBIC/TIOCMBIS", err)
	}
	return nil
}

func (port *serialPortLinux) SetDTR(enabled bool) error {
	return port.setPin(enabled, unix.TIOCM_DTR)
}

func (port *serialPortLinux) SetRTS(enabled bool) error {
	return port.setPin(enabled, unix.TIOCM_RTS)
}

func (port *serialPortLinux) GetPins() (PortPins, error) {
	v, err := unix.IoctlGetInt(port.fd(), unix.TIOCMGET)
	if err != nil {
		return PortPins{}, os.NewSyscallError("TIOCMGET", err)
	}

	return PortPins{
		DTR: v&unix.TIOCM_DTR != 0,
		RTS: v&unix.TIOCM_RTS != 0,
		CTS: v&unix.TIOCM_CTS != 0,
		DCD: v&unix.TIOCM_CAR != 0,
		RNG: v&unix.TIOCM_RNG != 0,
		DSR: v&unix.TIOCM_DSR != 0,
	}, nil
}

func (port *serialPortLinux) Close() error {
	return port.file.Close()
}
