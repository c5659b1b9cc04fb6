// Package logpin wraps a pin and logs every access through logrus. Results and
// errors are passed on unchanged.
package logpin

import (
	"github.com/BertoldVdb/go-switchhal/switchhal"
	"github.com/sirupsen/logrus"
)

type base struct {
	logger *logrus.Entry
}

func levelName(high bool) string {
	if high {
		return "high"
	}
	return "low"
}

func (b *base) logRead(op string, high bool, err error) (bool, error) {
	if err != nil {
		b.logger.WithError(err).WithField("op", op).Warn("Pin read failed")
	} else {
		b.logger.WithFields(logrus.Fields{"op": op, "level": levelName(high)}).Debug("Pin read")
	}
	return high, err
}

func (b *base) logWrite(op string, fields logrus.Fields, err error) error {
	fields["op"] = op
	if err != nil {
		b.logger.WithError(err).WithFields(fields).Warn("Pin write failed")
	} else {
		b.logger.WithFields(fields).Debug("Pin write")
	}
	return err
}

// Input decorates a switchhal.InputPin
type Input struct {
	base
	pin switchhal.InputPin
}

// NewInput wraps an input-only pin, such as a serial status line
func NewInput(pin switchhal.InputPin, logger *logrus.Entry) *Input {
	return &Input{base: base{logger: logger}, pin: pin}
}

func (p *Input) IsHigh() (bool, error) {
	high, err := p.pin.IsHigh()
	return p.logRead("IsHigh", high, err)
}

// Output decorates an output pin that can toggle and report its last level
type Output struct {
	base
	pin switchhal.StatefulToggleableOutputPin
}

// NewOutput wraps an output pin without input, such as a shift register output
func NewOutput(pin switchhal.StatefulToggleableOutputPin, logger *logrus.Entry) *Output {
	return &Output{base: base{logger: logger}, pin: pin}
}

func (p *Output) IsSetHigh() (bool, error) {
	high, err := p.pin.IsSetHigh()
	return p.logRead("IsSetHigh", high, err)
}

func (p *Output) SetLevel(high bool) error {
	return p.logWrite("SetLevel", logrus.Fields{"level": levelName(high)}, p.pin.SetLevel(high))
}

func (p *Output) Toggle() error {
	return p.logWrite("Toggle", logrus.Fields{}, p.pin.Toggle())
}

// Pin decorates a switchhal.IOPin
type Pin struct {
	Input
	Output
	pin switchhal.IOPin
}

// New wraps pin. Successful accesses are logged at debug level, failures as warnings.
func New(pin switchhal.IOPin, logger *logrus.Entry) *Pin {
	return &Pin{
		Input:  Input{base: base{logger: logger}, pin: pin},
		Output: Output{base: base{logger: logger}, pin: pin},
		pin:    pin,
	}
}

// Unwrap returns the decorated pin
func (p *Pin) Unwrap() switchhal.IOPin {
	return p.pin
}
