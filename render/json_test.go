package render

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-spc/spc"
)

func TestNewDocument(t *testing.T) {
	rec := &spc.Record{
		Header: &spc.NewHeader{
			Points: 2, StartX: 0, EndX: 1,
			Technique: spc.TechniqueRaman,
			XUnit:     spc.UnitRamanShift,
			YUnit:     spc.YUnitCounts,
			Memo:      "sample 42",
		},
		Block: &spc.YBlock{Subfile: spc.Subfile{
			Subheader: &spc.Subheader{Index: 3, StartZ: 1.5},
			Y:         yData(9, 10),
		}},
		Log: &spc.LogBlock{Text: "operator=jk", Binary: []byte{1, 2, 3}},
	}

	doc := NewDocument(rec)
	assert.Equal(t, "new", doc.Generation)
	assert.Equal(t, "Y", doc.Shape)
	assert.Equal(t, "Raman spectrum", doc.Technique)
	assert.Equal(t, "Raman shift (cm-1)", doc.XUnit)
	assert.Equal(t, "Counts", doc.YUnit)
	assert.Equal(t, "sample 42", doc.Memo)
	assert.Nil(t, doc.Timestamp)

	require.Len(t, doc.Subfiles, 1)
	sub := doc.Subfiles[0]
	assert.Equal(t, uint16(3), sub.Index)
	assert.Equal(t, float32(1.5), sub.StartZ)
	assert.Equal(t, []float64{0, 1}, sub.X)
	assert.Equal(t, []float64{9, 10}, sub.Y)

	require.NotNil(t, doc.Log)
	assert.Equal(t, "operator=jk", doc.Log.Text)
	assert.Equal(t, 3, doc.Log.BinaryBytes)
}

func TestWriteJSONRoundTrips(t *testing.T) {
	rec := &spc.Record{
		Header: &spc.OldHeader{PointsF: 2, StartX: 1, EndX: 2},
		Block: &spc.YBlock{Subfile: spc.Subfile{
			Subheader: &spc.Subheader{},
			Y:         yData(5, 6),
		}},
	}

	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, rec))

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &doc))
	assert.Equal(t, "old", doc.Generation)
	require.Len(t, doc.Subfiles, 1)
	assert.Equal(t, []float64{5, 6}, doc.Subfiles[0].Y)
}
