package i2c

// Transferer performs combined write/read transactions on an I2C bus
type Transferer interface {
	Transfer(address uint16, writeBuf []byte, readBuf []byte) error
}

// Device is a single slave address on a bus
type Device struct {
	bus     Transferer
	address uint16
}

// NewDevice binds address on bus. *Bus satisfies Transferer.
func NewDevice(bus Transferer, address uint16) *Device {
	return &Device{
		bus:     bus,
		address: address,
	}
}

func (d *Device) Address() uint16 {
	return d.address
}

func (d *Device) Transfer(writeBuf []byte, readBuf []byte) error {
	return d.bus.Transfer(d.address, writeBuf, readBuf)
}

func (d *Device) WriteReg8(reg uint8, value uint8) error {
	return d.Transfer([]byte{reg, value}, nil)
}

func (d *Device) ReadReg8(reg uint8) (uint8, error) {
	read := make([]byte, 1)
	err := d.Transfer([]byte{reg}, read)
	if err != nil {
		return 0, err
	}
	return read[0], nil
}
