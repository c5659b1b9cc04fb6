package gpio

var _ lineHandle = (*Lines)(nil)

// OpenInputPin requests line as an input
func (g *Chip) OpenInputPin(label string, line Line) (*Pin, error) {
	handle, err := g.OpenLine(label, RequestInput, LineRequest{Line: line})
	if err != nil {
		return nil, err
	}
	return newPin(handle), nil
}

// OpenOutputPin requests line as an output that starts at level initial
func (g *Chip) OpenOutputPin(label string, line Line, initial bool) (*Pin, error) {
	handle, err := g.OpenLine(label, RequestOutput, LineRequest{Line: line, DefaultValue: initial})
	if err != nil {
		return nil, err
	}
	return newPin(handle), nil
}
