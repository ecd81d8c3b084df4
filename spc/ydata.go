package spc

import (
	"fmt"
	"math"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// floatExponent marks IEEE floating-point Y storage in an exponent field.
const floatExponent = -128

// YMode identifies the on-disk encoding of a subfile's Y samples.
type YMode uint8

const (
	// YModeInt16 stores each sample as a signed 16-bit fixed-point value.
	YModeInt16 YMode = iota
	// YModeInt32 stores each sample as a signed 32-bit fixed-point value.
	YModeInt32
	// YModeInt32WordSwapped is the old-generation 32-bit layout with the
	// high 16-bit word written before the low one.
	YModeInt32WordSwapped
	// YModeFloat32 stores samples as IEEE single-precision floats, no
	// exponent scaling applied.
	YModeFloat32
)

func (m YMode) String() string {
	switch m {
	case YModeInt16:
		return "int16"
	case YModeInt32:
		return "int32"
	case YModeInt32WordSwapped:
		return "int32 (word swapped)"
	case YModeFloat32:
		return "float32"
	default:
		return fmt.Sprintf("YMode(%d)", uint8(m))
	}
}

// YData holds one subfile's Y samples exactly as decoded, keeping the raw
// fixed-point integers alongside the exponent so callers can recover the
// stored bits or materialize physical values as they prefer.
type YData struct {
	Mode     YMode
	Exponent int // effective exponent, meaningless for float data
	Int16s   []int16
	Int32s   []int32
	Floats   []float32
}

// resolveYMode combines the file header's encoding with the subfile's
// exponent. A subfile exponent of zero inherits the header's; -128 in the
// effective exponent selects float storage. A float header whose subfile
// resolves to fixed point is contradictory: the file-level promise of float
// data leaves no integer width to decode with.
func resolveYMode(h Header, subExp int8) (YMode, int, error) {
	exp := int(subExp)
	if exp == 0 {
		exp = h.YExponent()
	}
	if exp == floatExponent {
		return YModeFloat32, exp, nil
	}
	if h.YExponent() == floatExponent {
		return 0, 0, fmt.Errorf("%w: float header with fixed-point subfile exponent %d",
			ErrInconsistentYEncoding, exp)
	}
	if h.FileFlags().SixteenBitY() {
		return YModeInt16, exp, nil
	}
	if h.Generation() == GenerationOld {
		return YModeInt32WordSwapped, exp, nil
	}
	return YModeInt32, exp, nil
}

// decodeYData reads n Y samples in the given mode from cur. The stored
// count is untrusted: a negative value (an old-generation float count, or
// NaN, converts below zero) or one claiming more samples than the buffer
// holds is rejected before any allocation.
func decodeYData(cur *binpkg.Cursor, mode YMode, exp, n int) (*YData, error) {
	width := 4
	if mode == YModeInt16 {
		width = 2
	}
	if n < 0 || n > cur.Remaining()/width {
		return nil, fmt.Errorf("%w: %d samples of %d bytes, %d bytes remaining",
			binpkg.ErrPrematureTermination, n, width, cur.Remaining())
	}
	d := &YData{Mode: mode, Exponent: exp}
	switch mode {
	case YModeFloat32:
		d.Floats = make([]float32, n)
		for i := range d.Floats {
			v, err := cur.ReadFloat32()
			if err != nil {
				return nil, err
			}
			d.Floats[i] = v
		}
	case YModeInt16:
		d.Int16s = make([]int16, n)
		for i := range d.Int16s {
			v, err := cur.ReadInt16()
			if err != nil {
				return nil, err
			}
			d.Int16s[i] = v
		}
	case YModeInt32:
		d.Int32s = make([]int32, n)
		for i := range d.Int32s {
			v, err := cur.ReadInt32()
			if err != nil {
				return nil, err
			}
			d.Int32s[i] = v
		}
	case YModeInt32WordSwapped:
		d.Int32s = make([]int32, n)
		for i := range d.Int32s {
			raw, err := cur.ReadBytes(4)
			if err != nil {
				return nil, err
			}
			d.Int32s[i] = wordSwappedInt32(raw)
		}
	default:
		return nil, fmt.Errorf("unknown y mode %d", mode)
	}
	return d, nil
}

// wordSwappedInt32 reassembles an old-generation 32-bit sample whose high
// 16-bit word precedes the low one on disk.
func wordSwappedInt32(b []byte) int32 {
	u := uint32(b[2]) | uint32(b[3])<<8 | uint32(b[0])<<16 | uint32(b[1])<<24
	return int32(u)
}

// Values materializes the samples as physical float64 values. Fixed-point
// samples are scaled by 2^(exp-16) or 2^(exp-32) for 16- and 32-bit storage
// respectively; float samples pass through unscaled.
func (d *YData) Values() []float64 {
	switch d.Mode {
	case YModeFloat32:
		out := make([]float64, len(d.Floats))
		for i, v := range d.Floats {
			out[i] = float64(v)
		}
		return out
	case YModeInt16:
		scale := math.Exp2(float64(d.Exponent - 16))
		out := make([]float64, len(d.Int16s))
		for i, v := range d.Int16s {
			out[i] = float64(v) * scale
		}
		return out
	default:
		scale := math.Exp2(float64(d.Exponent - 32))
		out := make([]float64, len(d.Int32s))
		for i, v := range d.Int32s {
			out[i] = float64(v) * scale
		}
		return out
	}
}

// Len reports the number of samples.
func (d *YData) Len() int {
	switch d.Mode {
	case YModeFloat32:
		return len(d.Floats)
	case YModeInt16:
		return len(d.Int16s)
	default:
		return len(d.Int32s)
	}
}
