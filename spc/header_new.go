package spc

import (
	"encoding/binary"
	"fmt"
	"time"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// newHeaderSize is the fixed length of a new-generation header.
const newHeaderSize = 512

// NewHeader is the 512-byte header introduced in 1996 (version byte 0x4b
// little endian, 0x4c big endian). Point count and subfile count are exact
// integers, the X limits are double precision, and a nonzero log offset
// points at a trailing log block.
type NewHeader struct {
	Flags               Flags
	Version             uint8
	Technique           Technique
	ExponentY           int8
	Points              uint32
	StartX              float64
	EndX                float64
	Subfiles            uint32
	XUnit               AxisUnit
	YUnit               YUnit
	ZUnit               AxisUnit
	PostingDisposition  uint8
	Collected           time.Time // zero when the packed date is zero
	Resolution          string
	SourceInstrument    string
	PeakPoint           uint16
	Memo                string
	AxisLabels          string
	LogBlockOffset      uint32
	ModifiedFlag        uint32
	ProcessingCode      uint8
	CalibrationLevel    uint8
	InjectionNumber     uint16
	ConcentrationFactor float32
	MethodFile          string
	ZSubfileIncrement   float32
	WPlanes             uint32
	WPlaneIncrement     float32
	WAxisUnit           AxisUnit
}

// decodeNewHeader decodes the fixed 512-byte new-generation header region.
func decodeNewHeader(raw []byte, order binary.ByteOrder) (*NewHeader, error) {
	cur := binpkg.NewCursor(raw, order)
	h := &NewHeader{}

	flags, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	h.Flags = Flags(flags)
	if h.Version, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	technique, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if h.Technique, err = newTechnique(technique); err != nil {
		return nil, err
	}
	if h.ExponentY, err = cur.ReadInt8(); err != nil {
		return nil, err
	}
	if h.Points, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if h.StartX, err = cur.ReadFloat64(); err != nil {
		return nil, err
	}
	if h.EndX, err = cur.ReadFloat64(); err != nil {
		return nil, err
	}
	if h.Subfiles, err = cur.ReadUint32(); err != nil {
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
	zUnit, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if h.ZUnit, err = newAxisUnit(zUnit); err != nil {
		return nil, err
	}
	if h.PostingDisposition, err = cur.ReadUint8(); err != nil {
		return nil, err
	}

	packedDate, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	if packedDate != 0 {
		year, month, day, hour, minute := unpackNewDate(packedDate)
		if h.Collected, err = composeDateTime(year, month, day, hour, minute); err != nil {
			return nil, err
		}
	}

	if h.Resolution, err = cur.ReadString(9); err != nil {
		return nil, err
	}
	if h.SourceInstrument, err = cur.ReadString(9); err != nil {
		return nil, err
	}
	if h.PeakPoint, err = cur.ReadUint16(); err != nil {
		return nil, err
	}

	for i := 0; i < 8; i++ {
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
	if h.LogBlockOffset, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if h.ModifiedFlag, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if h.ProcessingCode, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if h.CalibrationLevel, err = cur.ReadUint8(); err != nil {
		return nil, err
	}
	if h.InjectionNumber, err = cur.ReadUint16(); err != nil {
		return nil, err
	}
	if h.ConcentrationFactor, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.MethodFile, err = cur.ReadString(48); err != nil {
		return nil, err
	}
	if h.ZSubfileIncrement, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.WPlanes, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if h.WPlaneIncrement, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	wUnit, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if h.WAxisUnit, err = newAxisUnit(wUnit); err != nil {
		return nil, err
	}

	reserved, err := cur.ReadBytes(187)
	if err != nil {
		return nil, err
	}
	for i, b := range reserved {
		if b != 0 {
			return nil, fmt.Errorf("%w: reserved byte %d = %#x", ErrNonZeroReserved, i, b)
		}
	}
	return h, nil
}

func (h *NewHeader) Generation() Generation { return GenerationNew }

func (h *NewHeader) FileFlags() Flags { return h.Flags }

func (h *NewHeader) YExponent() int { return int(h.ExponentY) }

func (h *NewHeader) PointCount() int { return int(h.Points) }

func (h *NewHeader) XRange() (float64, float64) { return h.StartX, h.EndX }

func (h *NewHeader) XPoints() []float64 {
	return linspace(h.StartX, h.EndX, h.PointCount())
}

func (h *NewHeader) SubfileCount() (int, error) {
	if h.Flags.Multifile() {
		return int(h.Subfiles), nil
	}
	return 1, nil
}

func (h *NewHeader) LogOffset() (int, bool) {
	return int(h.LogBlockOffset), h.LogBlockOffset != 0
}

func (h *NewHeader) Timestamp() (time.Time, bool) {
	return h.Collected, !h.Collected.IsZero()
}
