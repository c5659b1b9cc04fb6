package gpio

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

var (
	ErrorLineRange      = errors.New("Line out of range")
	ErrorLineName       = errors.New("Line name not found")
	ErrorLineCount      = errors.New("Invalid number of lines")
	ErrorFileDescriptor = errors.New("Invalid file descriptor returned")
)

func (g *Chip) readChipInfo() error {
	type chipInfoRaw struct {
		Name  [labelSize]byte
		Label [labelSize]byte
		Lines uint32
	}
	var ci chipInfoRaw

	err := ioctlPtr(g.file, ioctlGetChipInfo, unsafe.Pointer(&ci))
	if err != nil {
		return err
	}

	g.chipInfo.Name = bytesToString(ci.Name[:])
	g.chipInfo.Label = bytesToString(ci.Label[:])
	g.chipInfo.Lines = ci.Lines

	return nil
}

func (g *Chip) readLineNames() error {
	names := make(map[string]uint32)

	for i := uint32(0); i < g.chipInfo.Lines; i++ {
		line, err := g.GetLineInfo(i)
		if err != nil {
			return err
		}

		if line.Name != "" {
			names[line.Name] = i
		}
	}

	g.lineNames = names

	return nil
}

// OpenChip opens /dev/gpiochip<chip> and reads the names of its lines
func OpenChip(chip int) (*Chip, error) {
	return OpenChipPath(fmt.Sprintf("/dev/gpiochip%d", chip))
}

// OpenChipPath opens a GPIO character device by path
func OpenChipPath(path string) (*Chip, error) {
	g := &Chip{}

	var err error
	g.file, err = os.OpenFile(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, err
	}

	err = g.readChipInfo()
	if err == nil {
		err = g.readLineNames()
	}
	if err != nil {
		g.file.Close()
		return nil, err
	}

	return g, nil
}

// Close closes the chip. Line handles that were opened stay valid.
func (g *Chip) Close() error {
	return g.file.Close()
}

func (g *Chip) GetChipInfo() ChipInfo {
	return g.chipInfo
}

func (g *Chip) GetLineInfo(line uint32) (LineInfo, error) {
	result := LineInfo{
		LineOffset: line,
	}

	if result.LineOffset >= g.chipInfo.Lines {
		return result, ErrorLineRange
	}

	type lineInfoRaw struct {
		LineOffset uint32
		Flags      uint32
		Name       [labelSize]byte
		Consumer   [labelSize]byte
	}

	li := lineInfoRaw{
		LineOffset: result.LineOffset,
	}

	err := ioctlPtr(g.file, ioctlGetLineInfo, unsafe.Pointer(&li))
	if err != nil {
		return result, err
	}

	result.Flags = LineFlag(li.Flags)
	result.Name = bytesToString(li.Name[:])
	result.Consumer = bytesToString(li.Consumer[:])

	return result, nil
}

func (g *Chip) resolveLine(line Line) (uint32, error) {
	offset := line.Offset

	if len(line.Name) != 0 {
		index, found := g.lineNames[line.Name]
		if !found {
			return 0, ErrorLineName
		}
		offset = index
	}

	if offset >= g.chipInfo.Lines {
		return 0, ErrorLineRange
	}

	return offset, nil
}

func (g *Chip) OpenLine(label string, flags RequestFlag, line LineRequest) (*Lines, error) {
	return g.OpenLines(label, flags, []LineRequest{line})
}

// OpenLines requests a handle for lines. The consumer label is truncated to 31 bytes.
func (g *Chip) OpenLines(label string, flags RequestFlag, lines []LineRequest) (*Lines, error) {
	if len(lines) > maxHandleLines || len(lines) == 0 {
		return nil, ErrorLineCount
	}

	type handleRequestRaw struct {
		LineOffsets   [maxHandleLines]uint32
		Flags         uint32
		DefaultValues [maxHandleLines]uint8
		ConsumerLabel [labelSize]byte
		Lines         uint32
		Fd            int32
	}

	req := handleRequestRaw{
		Flags: uint32(flags),
		Lines: uint32(len(lines)),
	}
	stringToBytes(label, req.ConsumerLabel[:])

	for i, l := range lines {
		offset, err := g.resolveLine(l.Line)
		if err != nil {
			return nil, err
		}

		req.LineOffsets[i] = offset
		if l.DefaultValue {
			req.DefaultValues[i] = 1
		}
	}

	err := ioctlPtr(g.file, ioctlGetLineHandle, unsafe.Pointer(&req))
	if err != nil {
		return nil, err
	}

	if req.Fd <= 0 {
		return nil, ErrorFileDescriptor
	}

	gl := &Lines{
		file:     os.NewFile(uintptr(req.Fd), label),
		numLines: req.Lines,
	}

	return gl, nil
}
