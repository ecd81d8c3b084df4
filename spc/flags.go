package spc

import "fmt"

// Flags is the file-type flags byte at offset 0 of every SPC header. Its
// eight bits, from least to most significant: 16-bit Y precision, technique
// extension, multifile, random Z, uneven Z, custom axis labels, per-subfile
// X arrays (XYXY), explicit X array (XY).
type Flags uint8

// SixteenBitY reports whether Y samples are stored as 16-bit integers.
func (f Flags) SixteenBitY() bool {
	return f&0x01 != 0
}

// TechniqueExtension reports whether the instrument-technique field is
// meaningful in pre-0x4b software (TCGRAM).
func (f Flags) TechniqueExtension() bool {
	return f&0x02 != 0
}

// Multifile reports whether the file holds more than one subfile.
func (f Flags) Multifile() bool {
	return f&0x04 != 0
}

// RandomZ reports whether subfile Z values are randomly ordered.
func (f Flags) RandomZ() bool {
	return f&0x08 != 0
}

// UnevenZ reports whether subfile Z values are ordered but unevenly spaced.
func (f Flags) UnevenZ() bool {
	return f&0x10 != 0
}

// CustomAxisLabels reports whether axis label text overrides the unit codes.
func (f Flags) CustomAxisLabels() bool {
	return f&0x20 != 0
}

// PerSubfileX reports whether each subfile carries its own X array (TXYXYS).
func (f Flags) PerSubfileX() bool {
	return f&0x40 != 0
}

// ExplicitX reports whether an explicit X array precedes the Y data (TXVALS).
func (f Flags) ExplicitX() bool {
	return f&0x80 != 0
}

// DataShape is the data layout of the file body, derived from Flags.
type DataShape uint8

const (
	// ShapeY is a single subfile with implicit, evenly spaced X.
	ShapeY DataShape = iota
	// ShapeXY is a single subfile preceded by an explicit X array.
	ShapeXY
	// ShapeYY is multiple subfiles sharing an implicit X axis.
	ShapeYY
	// ShapeXYY is multiple subfiles sharing one explicit X array.
	ShapeXYY
	// ShapeXYXY is multiple subfiles, each with its own X array.
	ShapeXYXY
)

// String returns the conventional name of the shape.
func (s DataShape) String() string {
	switch s {
	case ShapeY:
		return "Y"
	case ShapeXY:
		return "XY"
	case ShapeYY:
		return "YY"
	case ShapeXYY:
		return "XYY"
	case ShapeXYXY:
		return "XYXY"
	}
	return fmt.Sprintf("DataShape(%d)", uint8(s))
}

// DataShape derives the layout of the file body. Per-subfile X arrays are
// only legal for multifile data with explicit X, so a single-file flags byte
// with the XYXY bit set is rejected.
func (f Flags) DataShape() (DataShape, error) {
	if !f.Multifile() {
		if !f.ExplicitX() {
			return ShapeY, nil
		}
		if f.PerSubfileX() {
			return 0, fmt.Errorf("%w: per-subfile X on single-file data (0x%02x)", ErrInvalidFlags, uint8(f))
		}
		return ShapeXY, nil
	}
	if !f.ExplicitX() {
		return ShapeYY, nil
	}
	if f.PerSubfileX() {
		return ShapeXYXY, nil
	}
	return ShapeXYY, nil
}
