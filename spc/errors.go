// Package spc provides a pure Go decoder for the legacy SPC
// scientific-instrument binary format.
//
// An SPC file carries one or more traces (spectra or chromatograms) behind a
// header that exists in two generations: the old 224-byte layout (always
// little-endian) and the new 512-byte layout, whose version byte also selects
// the byte order of everything that follows. Decode validates the structure
// strictly and returns an immutable Record; it performs no I/O and no logging.
package spc

import (
	"errors"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

// Decode errors. All are terminal: one failure aborts the whole buffer's
// decode with no partial result.
var (
	// ErrPrematureTermination reports a buffer shorter than a required field.
	ErrPrematureTermination = binpkg.ErrPrematureTermination

	// ErrUnrecognizedVersion reports a version byte outside {0x4b, 0x4c, 0x4d}.
	ErrUnrecognizedVersion = errors.New("unrecognized version byte")

	// ErrNonZeroReserved reports a non-zero byte in a spare or reserved region.
	ErrNonZeroReserved = errors.New("non-zero reserved region")

	// ErrInvalidUnitCode reports an axis unit byte outside the documented set.
	ErrInvalidUnitCode = errors.New("invalid unit code")

	// ErrInvalidTechnique reports an unknown instrument-technique code.
	ErrInvalidTechnique = errors.New("invalid instrument technique code")

	// ErrInvalidDateTime reports an out-of-range or ambiguous civil time.
	ErrInvalidDateTime = errors.New("invalid datetime")

	// ErrInvalidFlags reports an illegal flags-byte combination, such as the
	// XYXY bit set on a single-file flags byte.
	ErrInvalidFlags = errors.New("invalid flags byte")

	// ErrInvalidSubheaderFlags reports a subheader flag byte with bits set
	// outside the legal mask (bits 0, 3 and 7).
	ErrInvalidSubheaderFlags = errors.New("invalid subheader flags")

	// ErrInconsistentSubfileCount reports an old-generation multifile header,
	// which stores no subfile count and has no reliable convention to derive one.
	ErrInconsistentSubfileCount = errors.New("subfile count not stored in old-generation header")

	// ErrInconsistentYEncoding reports a contradiction between the header's
	// declared Y precision and a subfile's exponent.
	ErrInconsistentYEncoding = errors.New("inconsistent Y data encoding")

	// ErrStructuralMisalignment reports a cursor that did not land on the
	// expected offset after a block or log region.
	ErrStructuralMisalignment = errors.New("structural misalignment")

	// ErrInvalidLogMemorySize reports a log-block memory size that is not a
	// multiple of 4096.
	ErrInvalidLogMemorySize = errors.New("log memory size not a multiple of 4096")
)
