package spc

import (
	"fmt"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// subheaderSize is the fixed length of a subfile header.
const subheaderSize = 32

// Flag bits a subheader may legally carry: subfile-changed, to-be-ignored
// and modified-by-arithmetic.
const subheaderFlagMask = 0b1000_1001

// Subheader precedes every subfile's data. Its exponent overrides the file
// header's when nonzero; the Z values place the subfile along the third
// axis of a multifile collection.
type Subheader struct {
	Flags     uint8
	ExponentY int8
	Index     uint16
	StartZ    float32
	NextZ     float32
	Noise     float32
	Points    uint32 // meaningful only for files with per-subfile X arrays
	Scans     uint32
	WLevel    float32
}

// decodeSubheader reads the next 32 bytes from cur as a subfile header.
func decodeSubheader(cur *binpkg.Cursor) (*Subheader, error) {
	sh := &Subheader{}

	flags, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if flags&^uint8(subheaderFlagMask) != 0 {
		return nil, fmt.Errorf("%w: %#08b", ErrInvalidSubheaderFlags, flags)
	}
	sh.Flags = flags

	if sh.ExponentY, err = cur.ReadInt8(); err != nil {
		return nil, err
	}
	if sh.Index, err = cur.ReadUint16(); err != nil {
		return nil, err
	}
	if sh.StartZ, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if sh.NextZ, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if sh.Noise, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}
	if sh.Points, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if sh.Scans, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if sh.WLevel, err = cur.ReadFloat32(); err != nil {
		return nil, err
	}

	reserved, err := cur.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	for i, b := range reserved {
		if b != 0 {
			return nil, fmt.Errorf("%w: subheader reserved byte %d = %#x", ErrNonZeroReserved, i, b)
		}
	}
	return sh, nil
}
