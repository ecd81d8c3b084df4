package spc

import "time"

// Generation identifies which of the two header layouts a file was written
// with. Old-generation files (version byte 0x4d, pre-1996 software) carry a
// 224-byte header and are always little-endian; new-generation files carry a
// 512-byte header whose version byte (0x4b or 0x4c) selects the byte order.
type Generation uint8

const (
	GenerationOld Generation = iota
	GenerationNew
)

// String returns "old" or "new".
func (g Generation) String() string {
	if g == GenerationOld {
		return "old"
	}
	return "new"
}

// Header is the decoded file header, one of *OldHeader or *NewHeader. The
// accessors cover everything the block decoder and renderers need without
// caring which generation produced the file.
type Header interface {
	// Generation reports which header layout the file uses.
	Generation() Generation

	// FileFlags returns the file-type flags byte.
	FileFlags() Flags

	// YExponent returns the header-level power-of-two exponent for integer
	// Y samples. -128 marks samples stored as IEEE floats.
	YExponent() int

	// PointCount returns the number of samples per subfile. Not meaningful
	// for XYXY layouts, where each subheader carries its own count.
	PointCount() int

	// XRange returns the first and last X coordinate for implicit X axes.
	XRange() (start, end float64)

	// XPoints materializes the implicit, evenly spaced X axis.
	XPoints() []float64

	// SubfileCount returns the number of subfiles in the body. Old-generation
	// multifile headers store no count and no reliable convention exists to
	// derive one, so they fail with ErrInconsistentSubfileCount.
	SubfileCount() (int, error)

	// LogOffset returns the absolute byte offset of the trailing log block,
	// if the header declares one.
	LogOffset() (int, bool)

	// Timestamp returns the collection time, if the header carries one.
	Timestamp() (time.Time, bool)
}

// linspace builds n evenly spaced values from start to end inclusive.
func linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (end - start) / float64(n-1)
	points := make([]float64, n)
	for i := range points {
		points[i] = start + float64(i)*step
	}
	return points
}
