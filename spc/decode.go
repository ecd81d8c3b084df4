package spc

import (
	"encoding/binary"
	"fmt"
	"os"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// Version bytes at offset 1 of every file. The old generation was only ever
// written little endian; the new generation declares its byte order here.
const (
	versionNewLE = 0x4b
	versionNewBE = 0x4c
	versionOld   = 0x4d
)

// Record is one fully decoded file.
type Record struct {
	Header Header
	Block  Block
	Log    *LogBlock // nil when the file has no log block
}

// Decode parses a complete file held in memory. The same input always
// produces the same Record or the same error.
func Decode(data []byte) (*Record, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 bytes, have %d",
			ErrPrematureTermination, len(data))
	}

	var (
		order      binary.ByteOrder
		headerSize int
		oldGen     bool
	)
	switch data[1] {
	case versionNewLE:
		order, headerSize = binary.LittleEndian, newHeaderSize
	case versionNewBE:
		order, headerSize = binary.BigEndian, newHeaderSize
	case versionOld:
		order, headerSize, oldGen = binary.LittleEndian, oldHeaderSize, true
	default:
		return nil, fmt.Errorf("%w: %#x", ErrUnrecognizedVersion, data[1])
	}

	cur := binpkg.NewCursor(data, order)
	headerRaw, err := cur.ReadBytes(headerSize)
	if err != nil {
		return nil, err
	}

	var header Header
	if oldGen {
		header, err = decodeOldHeader(headerRaw, order)
	} else {
		header, err = decodeNewHeader(headerRaw, order)
	}
	if err != nil {
		return nil, err
	}

	logOffset, hasLog := header.LogOffset()
	if hasLog && (logOffset < headerSize || logOffset > len(data)) {
		return nil, fmt.Errorf("%w: log offset %d outside file of %d bytes",
			ErrStructuralMisalignment, logOffset, len(data))
	}

	blockEnd := len(data)
	if hasLog {
		blockEnd = logOffset
	}
	block, err := decodeBlock(cur, header, blockEnd)
	if err != nil {
		return nil, err
	}

	rec := &Record{Header: header, Block: block}
	if !hasLog {
		if !cur.Exhausted() {
			return nil, fmt.Errorf("%w: %d trailing bytes after data section",
				ErrStructuralMisalignment, cur.Remaining())
		}
		return rec, nil
	}
	if cur.Pos() != logOffset {
		return nil, fmt.Errorf("%w: data section ends at %d, log block declared at %d",
			ErrStructuralMisalignment, cur.Pos(), logOffset)
	}
	if rec.Log, err = decodeLogBlock(cur); err != nil {
		return nil, err
	}
	return rec, nil
}

// Open reads and decodes the file at path.
func Open(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rec, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}
