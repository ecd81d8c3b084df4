package spc

import (
	"encoding/binary"
	"math"
)

// The builders below assemble minimal valid files byte by byte so each test
// can perturb exactly the field under scrutiny.

type fileBuilder struct {
	buf   []byte
	order binary.ByteOrder
}

func newFile(order binary.ByteOrder) *fileBuilder {
	return &fileBuilder{order: order}
}

func (f *fileBuilder) bytes(b []byte) *fileBuilder {
	f.buf = append(f.buf, b...)
	return f
}

func (f *fileBuilder) u8(v uint8) *fileBuilder {
	f.buf = append(f.buf, v)
	return f
}

func (f *fileBuilder) u16(v uint16) *fileBuilder {
	var b [2]byte
	f.order.PutUint16(b[:], v)
	return f.bytes(b[:])
}

func (f *fileBuilder) u32(v uint32) *fileBuilder {
	var b [4]byte
	f.order.PutUint32(b[:], v)
	return f.bytes(b[:])
}

func (f *fileBuilder) i16(v int16) *fileBuilder { return f.u16(uint16(v)) }

func (f *fileBuilder) f32(v float32) *fileBuilder { return f.u32(math.Float32bits(v)) }

func (f *fileBuilder) f64(v float64) *fileBuilder {
	var b [8]byte
	f.order.PutUint64(b[:], math.Float64bits(v))
	return f.bytes(b[:])
}

func (f *fileBuilder) zeros(n int) *fileBuilder {
	return f.bytes(make([]byte, n))
}

func (f *fileBuilder) text(s string, width int) *fileBuilder {
	b := make([]byte, width)
	copy(b, s)
	return f.bytes(b)
}

func (f *fileBuilder) build() []byte { return f.buf }

// newHeaderOpts parameterizes a 512-byte new-generation header fixture.
type newHeaderOpts struct {
	flags      uint8
	version    uint8 // 0 means 0x4b / 0x4c per byte order
	exponent   int8
	points     uint32
	startX     float64
	endX       float64
	subfiles   uint32
	packedDate uint32
	logOffset  uint32
}

func buildNewHeader(order binary.ByteOrder, o newHeaderOpts) []byte {
	version := o.version
	if version == 0 {
		version = versionNewLE
		if order == binary.BigEndian {
			version = versionNewBE
		}
	}
	f := newFile(order)
	f.u8(o.flags).u8(version).u8(0).u8(uint8(o.exponent))
	f.u32(o.points)
	f.f64(o.startX).f64(o.endX)
	f.u32(o.subfiles)
	f.u8(0).u8(0).u8(0).u8(0) // x, y, z units, posting
	f.u32(o.packedDate)
	f.text("1 cm-1", 9)
	f.text("", 9)
	f.u16(0)    // peak
	f.zeros(32) // spare floats
	f.text("fixture", 130)
	f.zeros(30) // axis labels
	f.u32(o.logOffset)
	f.u32(0)               // modified
	f.u8(0).u8(0)          // processing, calibration
	f.u16(0)               // injection
	f.f32(0)               // concentration
	f.zeros(48)            // method
	f.f32(0).u32(0).f32(0) // z increment, w planes, w increment
	f.u8(0)                // w unit
	f.zeros(187)
	return f.build()
}

// oldHeaderOpts parameterizes a 224-byte old-generation header fixture.
type oldHeaderOpts struct {
	flags    uint8
	exponent int16
	points   float32
	startX   float32
	endX     float32
	yearWord uint16
	month    uint8
	day      uint8
	hour     uint8
	minute   uint8
}

func buildOldHeader(o oldHeaderOpts) []byte {
	f := newFile(binary.LittleEndian)
	f.u8(o.flags).u8(versionOld)
	f.i16(o.exponent)
	f.f32(o.points)
	f.f32(o.startX).f32(o.endX)
	f.u8(0).u8(0) // x, y units
	f.u16(o.yearWord)
	f.u8(o.month).u8(o.day).u8(o.hour).u8(o.minute)
	f.text("4 cm-1", 8)
	f.u16(0).u16(0) // peak, scans
	f.zeros(28)     // spare floats
	f.text("old fixture", 130)
	f.zeros(30)
	return f.build()
}

// subheaderOpts parameterizes a 32-byte subheader fixture.
type subheaderOpts struct {
	flags    uint8
	exponent int8
	index    uint16
	startZ   float32
	nextZ    float32
	points   uint32
}

func appendSubheader(f *fileBuilder, o subheaderOpts) {
	f.u8(o.flags).u8(uint8(o.exponent))
	f.u16(o.index)
	f.f32(o.startZ).f32(o.nextZ).f32(0)
	f.u32(o.points)
	f.u32(0) // scans
	f.f32(0) // w level
	f.zeros(4)
}

// appendLogBlock writes a log header plus binary and text regions.
func appendLogBlock(f *fileBuilder, binaryData []byte, text string) {
	textOffset := uint32(logHeaderSize + len(binaryData))
	diskSize := textOffset + uint32(len(text))
	f.u32(diskSize)
	f.u32(4096) // memory size
	f.u32(textOffset)
	f.u32(uint32(len(binaryData)))
	f.u32(0) // disk area
	f.zeros(44)
	f.bytes(binaryData)
	f.bytes([]byte(text))
}
