package gpio

// GPIO character device v1 ABI
const (
	ioctlGetChipInfo        uintptr = 0x8044b401
	ioctlGetLineInfo        uintptr = 0xc048b402
	ioctlGetLineHandle      uintptr = 0xc16cb403
	ioctlHandleGetLineValue uintptr = 0xc040b408
	ioctlHandleSetLineValue uintptr = 0xc040b409

	maxHandleLines = 64
	labelSize      = 32
)

type LineFlag uint32

const (
	LineKernel     LineFlag = 0x00000001
	LineIsOut      LineFlag = 0x00000002
	LineActiveLow  LineFlag = 0x00000004
	LineOpenDrain  LineFlag = 0x00000008
	LineOpenSource LineFlag = 0x00000010
)

type RequestFlag uint32

const (
	RequestInput      RequestFlag = 0x00000001
	RequestOutput     RequestFlag = 0x00000002
	RequestActiveLow  RequestFlag = 0x00000004
	RequestOpenDrain  RequestFlag = 0x00000008
	RequestOpenSource RequestFlag = 0x00000010
)
