package spc

import (
	"fmt"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// Subfile is one decoded subfile: its subheader, Y samples and, for
// layouts where each subfile carries its own abscissa, the X values.
type Subfile struct {
	Subheader *Subheader
	X         []float64 // nil unless the layout stores per-subfile X
	Y         *YData
}

// Block is the decoded data section of a file, one variant per layout.
type Block interface {
	// Shape reports which of the five data layouts the block holds.
	Shape() DataShape
	// Subfiles returns the decoded subfiles in file order.
	Subfiles() []Subfile
}

// YBlock is a single subfile with X implied by the header's range.
type YBlock struct {
	Subfile Subfile
}

func (b *YBlock) Shape() DataShape    { return ShapeY }
func (b *YBlock) Subfiles() []Subfile { return []Subfile{b.Subfile} }

// XYBlock is a single subfile preceded by an explicit shared X array.
type XYBlock struct {
	X       []float64
	Subfile Subfile
}

func (b *XYBlock) Shape() DataShape    { return ShapeXY }
func (b *XYBlock) Subfiles() []Subfile { return []Subfile{b.Subfile} }

// YYBlock is a multifile collection sharing the header's implied X.
type YYBlock struct {
	Files []Subfile
}

func (b *YYBlock) Shape() DataShape    { return ShapeYY }
func (b *YYBlock) Subfiles() []Subfile { return b.Files }

// XYYBlock is a multifile collection sharing one explicit X array.
type XYYBlock struct {
	X     []float64
	Files []Subfile
}

func (b *XYYBlock) Shape() DataShape    { return ShapeXYY }
func (b *XYYBlock) Subfiles() []Subfile { return b.Files }

// DirectoryEntry locates one subfile of an XYXY collection. Some producers
// append a directory of these after the last subfile.
type DirectoryEntry struct {
	Position uint32
	Size     uint32
	Time     float32
}

// XYXYBlock is a multifile collection where every subfile carries its own
// point count and X array. Directory is nil when the file has none.
type XYXYBlock struct {
	Files     []Subfile
	Directory []DirectoryEntry
}

func (b *XYXYBlock) Shape() DataShape    { return ShapeXYXY }
func (b *XYXYBlock) Subfiles() []Subfile { return b.Files }

const directoryEntrySize = 12

// decodeBlock decodes the data section following the header. blockEnd is
// the offset where the data section must stop: the log block offset when
// the header declares one, otherwise the end of the buffer. It bounds the
// XYXY directory detection only; the caller verifies final alignment.
func decodeBlock(cur *binpkg.Cursor, h Header, blockEnd int) (Block, error) {
	shape, err := h.FileFlags().DataShape()
	if err != nil {
		return nil, err
	}
	count, err := h.SubfileCount()
	if err != nil {
		return nil, err
	}
	// Every subfile costs at least a subheader, so a count the buffer cannot
	// possibly hold is rejected before any per-subfile allocation.
	if count > cur.Remaining()/subheaderSize {
		return nil, fmt.Errorf("%w: %d subfiles declared, %d bytes remaining",
			binpkg.ErrPrematureTermination, count, cur.Remaining())
	}
	npts := h.PointCount()

	switch shape {
	case ShapeY:
		sub, err := decodeSubfile(cur, h, npts)
		if err != nil {
			return nil, err
		}
		return &YBlock{Subfile: *sub}, nil

	case ShapeXY:
		x, err := decodeXArray(cur, npts)
		if err != nil {
			return nil, err
		}
		sub, err := decodeSubfile(cur, h, npts)
		if err != nil {
			return nil, err
		}
		return &XYBlock{X: x, Subfile: *sub}, nil

	case ShapeYY:
		files := make([]Subfile, 0, count)
		for i := 0; i < count; i++ {
			sub, err := decodeSubfile(cur, h, npts)
			if err != nil {
				return nil, err
			}
			files = append(files, *sub)
		}
		return &YYBlock{Files: files}, nil

	case ShapeXYY:
		x, err := decodeXArray(cur, npts)
		if err != nil {
			return nil, err
		}
		files := make([]Subfile, 0, count)
		for i := 0; i < count; i++ {
			sub, err := decodeSubfile(cur, h, npts)
			if err != nil {
				return nil, err
			}
			files = append(files, *sub)
		}
		return &XYYBlock{X: x, Files: files}, nil

	default: // ShapeXYXY
		return decodeXYXY(cur, h, count, blockEnd)
	}
}

// decodeSubfile reads one subheader and its npts Y samples.
func decodeSubfile(cur *binpkg.Cursor, h Header, npts int) (*Subfile, error) {
	sh, err := decodeSubheader(cur)
	if err != nil {
		return nil, err
	}
	mode, exp, err := resolveYMode(h, sh.ExponentY)
	if err != nil {
		return nil, err
	}
	y, err := decodeYData(cur, mode, exp, npts)
	if err != nil {
		return nil, err
	}
	return &Subfile{Subheader: sh, Y: y}, nil
}

// decodeXYXY reads count subfiles, each with its own point count and X
// array, then sniffs for a trailing subfile directory: the file carries one
// exactly when the bytes left before blockEnd hold one entry per subfile.
func decodeXYXY(cur *binpkg.Cursor, h Header, count, blockEnd int) (*XYXYBlock, error) {
	files := make([]Subfile, 0, count)
	for i := 0; i < count; i++ {
		sh, err := decodeSubheader(cur)
		if err != nil {
			return nil, err
		}
		n := int(sh.Points)
		x, err := decodeXArray(cur, n)
		if err != nil {
			return nil, err
		}
		mode, exp, err := resolveYMode(h, sh.ExponentY)
		if err != nil {
			return nil, err
		}
		y, err := decodeYData(cur, mode, exp, n)
		if err != nil {
			return nil, err
		}
		files = append(files, Subfile{Subheader: sh, X: x, Y: y})
	}

	b := &XYXYBlock{Files: files}
	if gap := blockEnd - cur.Pos(); gap > 0 && gap == directoryEntrySize*count {
		b.Directory = make([]DirectoryEntry, 0, count)
		for i := 0; i < count; i++ {
			var e DirectoryEntry
			var err error
			if e.Position, err = cur.ReadUint32(); err != nil {
				return nil, err
			}
			if e.Size, err = cur.ReadUint32(); err != nil {
				return nil, err
			}
			if e.Time, err = cur.ReadFloat32(); err != nil {
				return nil, err
			}
			b.Directory = append(b.Directory, e)
		}
	}
	return b, nil
}

// decodeXArray reads n single-precision X values, widening to float64. The
// count is untrusted and checked against the remaining bytes before the
// slice is allocated.
func decodeXArray(cur *binpkg.Cursor, n int) ([]float64, error) {
	if n < 0 || n > cur.Remaining()/4 {
		return nil, fmt.Errorf("%w: %d x values, %d bytes remaining",
			binpkg.ErrPrematureTermination, n, cur.Remaining())
	}
	x := make([]float64, n)
	for i := range x {
		v, err := cur.ReadFloat32()
		if err != nil {
			return nil, err
		}
		x[i] = float64(v)
	}
	return x, nil
}
