package gpio

import "os"

// Chip is an open /dev/gpiochipN device
type Chip struct {
	file      *os.File
	chipInfo  ChipInfo
	lineNames map[string]uint32
}

type ChipInfo struct {
	Name  string
	Label string
	Lines uint32
}

// Lines is a kernel line handle for up to 64 lines of one chip
type Lines struct {
	file     *os.File
	numLines uint32
}

type LineInfo struct {
	LineOffset uint32
	Flags      LineFlag
	Name       string
	Consumer   string
}

// Line selects a line by Name if it is set, by Offset otherwise
type Line struct {
	Offset uint32
	Name   string
}

type LineRequest struct {
	Line         Line
	DefaultValue bool
}
