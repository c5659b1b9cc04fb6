package serial

// InputLine reads one modem line
type InputLine struct {
	port Port
	line ModemLine
}

// NewInputLine returns a pin reading line. Every line can be read, including DTR and RTS.
func NewInputLine(port Port, line ModemLine) (*InputLine, error) {
	if line < LineDTR || line > LineRNG {
		return nil, ErrorLineName
	}
	return &InputLine{port: port, line: line}, nil
}

func (l *InputLine) IsHigh() (bool, error) {
	pins, err := l.port.GetPins()
	if err != nil {
		return false, err
	}
	return l.line.get(pins), nil
}

// OutputLine drives DTR or RTS. The level read back is the one reported by the driver.
type OutputLine struct {
	InputLine
}

// NewOutputLine returns a pin driving line, which must be DTR or RTS
func NewOutputLine(port Port, line ModemLine) (*OutputLine, error) {
	if !line.IsOutput() {
		return nil, ErrorNotOutput
	}
	return &OutputLine{InputLine{port: port, line: line}}, nil
}

func (l *OutputLine) SetLevel(high bool) error {
	if l.line == LineDTR {
		return l.port.SetDTR(high)
	}
	return l.port.SetRTS(high)
}

func (l *OutputLine) IsSetHigh() (bool, error) {
	return l.IsHigh()
}

func (l *OutputLine) Toggle() error {
	high, err := l.IsHigh()
	if err != nil {
		return err
	}
	return l.SetLevel(!high)
}
