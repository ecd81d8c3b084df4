package spc

import (
	"fmt"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// logHeaderSize is the fixed length of a log block header.
const logHeaderSize = 64

// LogHeader is the 64-byte header of a trailing log block.
type LogHeader struct {
	DiskSize   uint32
	MemorySize uint32 // must be a multiple of 4096
	TextOffset uint32 // relative to the start of the log block
	BinarySize uint32
	DiskArea   uint32
}

// LogBlock is the optional trailing log: a header, an opaque binary region
// and free-form text running to the end of the file.
type LogBlock struct {
	Header LogHeader
	Binary []byte
	Text   string
}

// decodeLogBlock decodes the log block starting at the cursor's current
// position and consuming the rest of the buffer.
func decodeLogBlock(cur *binpkg.Cursor) (*LogBlock, error) {
	start := cur.Pos()
	lb := &LogBlock{}

	var err error
	if lb.Header.DiskSize, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if lb.Header.MemorySize, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if lb.Header.MemorySize%4096 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLogMemorySize, lb.Header.MemorySize)
	}
	if lb.Header.TextOffset, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if lb.Header.BinarySize, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if lb.Header.DiskArea, err = cur.ReadUint32(); err != nil {
		return nil, err
	}

	reserved, err := cur.ReadBytes(44)
	if err != nil {
		return nil, err
	}
	for i, b := range reserved {
		if b != 0 {
			return nil, fmt.Errorf("%w: log reserved byte %d = %#x", ErrNonZeroReserved, i, b)
		}
	}

	if lb.Header.BinarySize > 0 {
		raw, err := cur.ReadBytes(int(lb.Header.BinarySize))
		if err != nil {
			return nil, err
		}
		lb.Binary = append([]byte(nil), raw...)
	}

	textStart := start + int(lb.Header.TextOffset)
	if err := cur.Seek(textStart); err != nil {
		return nil, err
	}
	raw, err := cur.ReadBytes(cur.Remaining())
	if err != nil {
		return nil, err
	}
	lb.Text = binpkg.TrimPadded(raw)
	return lb, nil
}
