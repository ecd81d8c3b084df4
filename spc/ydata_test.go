package spc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binpkg "github.com/robert-malhotra/go-spc/internal/binary"
)

func TestWordSwappedInt32(t *testing.T) {
	// High 16-bit word stored first: [0x01 0x02 0x03 0x04] reassembles as
	// 0x02010403.
	assert.Equal(t, int32(0x02010403), wordSwappedInt32([]byte{0x01, 0x02, 0x03, 0x04}))
	assert.Equal(t, int32(-1), wordSwappedInt32([]byte{0xff, 0xff, 0xff, 0xff}))
	assert.Equal(t, int32(0), wordSwappedInt32([]byte{0, 0, 0, 0}))
}

func TestResolveYModeInheritsHeaderExponent(t *testing.T) {
	h := &NewHeader{ExponentY: 9}
	mode, exp, err := resolveYMode(h, 0)
	require.NoError(t, err)
	assert.Equal(t, YModeInt32, mode)
	assert.Equal(t, 9, exp)
}

func TestResolveYModeSubheaderOverride(t *testing.T) {
	h := &NewHeader{ExponentY: 9}
	_, exp, err := resolveYMode(h, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, exp)
}

func TestResolveYModeFloat(t *testing.T) {
	h := &NewHeader{ExponentY: floatExponent}
	mode, _, err := resolveYMode(h, 0)
	require.NoError(t, err)
	assert.Equal(t, YModeFloat32, mode)

	// A subheader may also select float storage on its own.
	h2 := &NewHeader{ExponentY: 5}
	mode, _, err = resolveYMode(h2, floatExponent)
	require.NoError(t, err)
	assert.Equal(t, YModeFloat32, mode)
}

func TestResolveYModeFloatHeaderIntegerSubfile(t *testing.T) {
	h := &NewHeader{ExponentY: floatExponent}
	_, _, err := resolveYMode(h, 4)
	assert.ErrorIs(t, err, ErrInconsistentYEncoding)
}

func TestResolveYModeWidths(t *testing.T) {
	h16 := &NewHeader{Flags: flag16Bit, ExponentY: 1}
	mode, _, err := resolveYMode(h16, 0)
	require.NoError(t, err)
	assert.Equal(t, YModeInt16, mode)

	old := &OldHeader{ExponentY: 1}
	mode, _, err = resolveYMode(old, 0)
	require.NoError(t, err)
	assert.Equal(t, YModeInt32WordSwapped, mode)

	old16 := &OldHeader{Flags: flag16Bit, ExponentY: 1}
	mode, _, err = resolveYMode(old16, 0)
	require.NoError(t, err)
	assert.Equal(t, YModeInt16, mode)
}

func TestYDataValuesScaling(t *testing.T) {
	// Exponent 16 makes the 16-bit scale exactly 1 and exponent 32 makes
	// the 32-bit scale exactly 1.
	d16 := &YData{Mode: YModeInt16, Exponent: 16, Int16s: []int16{100, -7}}
	assert.Equal(t, []float64{100, -7}, d16.Values())

	d16b := &YData{Mode: YModeInt16, Exponent: 17, Int16s: []int16{100}}
	assert.Equal(t, []float64{200}, d16b.Values())

	d32 := &YData{Mode: YModeInt32, Exponent: 32, Int32s: []int32{1 << 20}}
	assert.Equal(t, []float64{1 << 20}, d32.Values())

	d32b := &YData{Mode: YModeInt32, Exponent: 31, Int32s: []int32{2}}
	assert.Equal(t, []float64{1}, d32b.Values())

	df := &YData{Mode: YModeFloat32, Floats: []float32{1.25, -2.5}}
	assert.Equal(t, []float64{1.25, -2.5}, df.Values())
}

func TestDecodeYDataWordSwapped(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04}
	cur := binpkg.NewCursor(raw, binary.LittleEndian)
	d, err := decodeYData(cur, YModeInt32WordSwapped, 32, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{0x02010403}, d.Int32s)
	assert.Equal(t, 1, d.Len())
}

func TestDecodeYDataRejectsBadCounts(t *testing.T) {
	cur := binpkg.NewCursor(make([]byte, 8), binary.LittleEndian)
	_, err := decodeYData(cur, YModeInt16, 16, -1)
	assert.ErrorIs(t, err, binpkg.ErrPrematureTermination)
	// Eight bytes hold four 16-bit samples at most.
	_, err = decodeYData(cur, YModeInt16, 16, 5)
	assert.ErrorIs(t, err, binpkg.ErrPrematureTermination)
}

func TestDecodeYDataTruncated(t *testing.T) {
	cur := binpkg.NewCursor([]byte{0x01, 0x02}, binary.LittleEndian)
	_, err := decodeYData(cur, YModeInt32, 32, 1)
	assert.ErrorIs(t, err, binpkg.ErrPrematureTermination)
}
