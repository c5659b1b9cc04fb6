package i2c

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	i2cFlagRead uint16  = 0x0001
	i2cRdWr     uintptr = 0x0707
)

// Bus is an open /dev/i2c-N adapter. Transfers are serialized.
type Bus struct {
	mutex sync.Mutex
	file  *os.File
}

func OpenBus(busID int) (*Bus, error) {
	file, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%d", busID), unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, err
	}

	return &Bus{file: file}, nil
}

func (b *Bus) Close() error {
	return b.file.Close()
}

type i2cMsg struct {
	Address uint16
	Flags   uint16
	Len     uint16
	Buf     uintptr
}

// Transfer writes writeBuf and then reads readBuf in a single combined transaction.
// Either buffer may be empty.
func (b *Bus) Transfer(address uint16, writeBuf []byte, readBuf []byte) error {
	var transfer []i2cMsg
	if len(writeBuf) > 0 {
		transfer = append(transfer, i2cMsg{
			Address: address,
			Len:     uint16(len(writeBuf)),
			Buf:     uintptr(unsafe.Pointer(&writeBuf[0])),
		})
	}
	if len(readBuf) > 0 {
		transfer = append(transfer, i2cMsg{
			Address: address,
			Flags:   i2cFlagRead,
			Len:     uint16(len(readBuf)),
			Buf:     uintptr(unsafe.Pointer(&readBuf[0])),
		})
	}

	if len(transfer) == 0 {
		return nil
	}

	type rdWrRaw struct {
		Messages    uintptr
		NumMessages uint32
	}

	param := rdWrRaw{
		Messages:    uintptr(unsafe.Pointer(&transfer[0])),
		NumMessages: uint32(len(transfer)),
	}

	b.mutex.Lock()
	_, _, errNo := unix.Syscall(unix.SYS_IOCTL, b.file.Fd(), i2cRdWr, uintptr(unsafe.Pointer(&param)))
	b.mutex.Unlock()

	runtime.KeepAlive(transfer)
	runtime.KeepAlive(writeBuf)
	runtime.KeepAlive(readBuf)

	if errNo != 0 {
		return fmt.Errorf("I2C transfer to 0x%02x failed: %s", address, errNo.Error())
	}

	return nil
}
