package spi

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

var ErrorLength = errors.New("Buffer length does not match")

// Device is an open /dev/spidevB.D. Transfers are serialized.
type Device struct {
	mutex sync.Mutex
	file  *os.File

	// Frequency is the clock rate of the next transfers in Hz
	Frequency uint32
}

func OpenDevice(busID int, deviceID int) (*Device, error) {
	file, err := os.OpenFile(fmt.Sprintf("/dev/spidev%d.%d", busID, deviceID), unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, err
	}

	return &Device{
		file:      file,
		Frequency: 1000000,
	}, nil
}

func (d *Device) Close() error {
	return d.file.Close()
}

// SPI_IOC_MESSAGE(n)
func messageIoctl(numTransfers int) uintptr {
	const base uint32 = 0x40006B00

	return uintptr(base + uint32(numTransfers*0x200000))
}

// Transfer clocks writeBuf out and readBuf in. When both are given they must
// have the same length.
func (d *Device) Transfer(writeBuf []byte, readBuf []byte) error {
	if len(writeBuf) > 0 && len(readBuf) > 0 && len(writeBuf) != len(readBuf) {
		return ErrorLength
	}

	type iocTransferRaw struct {
		TxBuf       uint64
		RxBuf       uint64
		Len         uint32
		Frequency   uint32
		DelayUs     uint16
		BitsPerWord uint8
		CsChange    uint8
		Pad         uint32
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	tr := iocTransferRaw{
		Frequency:   d.Frequency,
		BitsPerWord: 8,
	}

	if len(writeBuf) > 0 {
		tr.TxBuf = uint64(uintptr(unsafe.Pointer(&writeBuf[0])))
		tr.Len = uint32(len(writeBuf))
	}
	if len(readBuf) > 0 {
		tr.RxBuf = uint64(uintptr(unsafe.Pointer(&readBuf[0])))
		tr.Len = uint32(len(readBuf))
	}

	if tr.Len == 0 {
		return nil
	}

	_, _, errNo := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), messageIoctl(1), uintptr(unsafe.Pointer(&tr)))

	runtime.KeepAlive(writeBuf)
	runtime.KeepAlive(readBuf)

	if errNo != 0 {
		return fmt.Errorf("SPI transfer failed: %s", errNo.Error())
	}

	return nil
}
