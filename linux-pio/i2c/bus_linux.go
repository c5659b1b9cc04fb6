package i2c

var _ Transferer = (*Bus)(nil)

// GetDevice returns the device at address on this bus
func (b *Bus) GetDevice(address uint16) *Device {
	return NewDevice(b, address)
}
