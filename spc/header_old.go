package spc

import (
	"encoding/binary"
	"fmt"
	"time"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// oldHeaderSize is the fixed length of an old-generation header.
const oldHeaderSize = 224

// OldHeader is the 224-byte header written by pre-1996 software (version
// byte 0x4d). Point count is stored as a float and the X limits only in
// single precision. The Z unit code shares a word with the year: its top
// four bits are the unit, the low twelve the year, and a year of zero means
// no timestamp was recorded.
type OldHeader struct {
	Flags      Flags
	Version    uint8
	ExponentY  int16
	PointsF    float32 // stored floating point count
	StartX     float32
	EndX       float32
	XUnit      AxisUnit
	YUnit      YUnit
	ZUnit      AxisUnit
	Collected  time.Time // zero when the header carries no timestamp
	Resolution string
	PeakPoint  uint16
	Scans      uint16
	Memo       string
	AxisLabels string
}

// decodeOldHeader decodes the fixed 224-byte old-generation header region.
// The caller has already sliced exactly oldHeaderSize bytes, so premature
// termination cannot occur here; every remaining failure is semantic.
func decodeOldHeader(raw []byte, order binary.ByteOrder) (*OldHeader, error) {
	cur := binpkg.NewCursor(raw, order)
	h := &OldHeader{}

	flags, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	h.Flags = Flags(flags)
	if h.Version, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if h.ExponentY, err = cur.ReadInt16(); err != nil {
		return nil, err
	}
	if h.PointsF, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.StartX, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.EndX, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}

	xUnit, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if h.XUnit, err = newAxisUnit(xUnit); err != nil {
		return nil, err
	}
	yUnit, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if h.YUnit, err = newYUnit(yUnit); err != nil {
		return nil, err
	}

	// The Z unit rides in the top nibble of the year word.
	yearWord, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	if h.ZUnit, err = newAxisUnit(uint8(yearWord >> 12)); err != nil {
		return nil, err
	}
	year := int(yearWord & 0x0fff)

	month, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	day, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	hour, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	minute, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if year != 0 {
		if h.Collected, err = composeDateTime(year, int(month), int(day), int(hour), int(minute)); err != nil {
			return nil, err
		}
	}

	if h.Resolution, err = cur.ReadString(8); err != nil {
		return nil, err
	}
	if h.PeakPoint, err = cur.ReadUint16(); err != nil {
		return nil, err
	}
	if h.Scans, err = cur.ReadUint16(); err != nil {
		return nil, err
	}

	for i := 0; i < 7; i++ {
		spare, err := cur.ReadFloat32()
		if err != nil {
			return nil, err
		}
		if spare != 0 {
			return nil, fmt.Errorf("%w: spare float %d = %g", ErrNonZeroReserved, i, spare)
		}
	}

	if h.Memo, err = cur.ReadString(130); err != nil {
		return nil, err
	}
	if h.AxisLabels, err = cur.ReadString(30); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *OldHeader) Generation() Generation { return GenerationOld }

func (h *OldHeader) FileFlags() Flags { return h.Flags }

func (h *OldHeader) YExponent() int { return int(h.ExponentY) }

func (h *OldHeader) PointCount() int { return int(h.PointsF) }

func (h *OldHeader) XRange() (float64, float64) {
	return float64(h.StartX), float64(h.EndX)
}

func (h *OldHeader) XPoints() []float64 {
	start, end := h.XRange()
	return linspace(start, end, h.PointCount())
}

// SubfileCount returns 1 for single-file data. Old-generation multifile
// headers store no subfile count; producers disagree on how to derive one,
// so multifile old files are rejected rather than guessed at.
func (h *OldHeader) SubfileCount() (int, error) {
	if h.Flags.Multifile() {
		return 0, ErrInconsistentSubfileCount
	}
	return 1, nil
}

// LogOffset always reports absence: the old layout has no log block field.
func (h *OldHeader) LogOffset() (int, bool) { return 0, false }

func (h *OldHeader) Timestamp() (time.Time, bool) {
	return h.Collected, !h.Collected.IsZero()
}
