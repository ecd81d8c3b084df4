package render

import (
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/robert-malhotra/go-spc/spc"
)

// Document is the JSON projection of a decoded record.
type Document struct {
	Generation string       `json:"generation"`
	Shape      string       `json:"shape"`
	Technique  string       `json:"technique,omitempty"`
	XUnit      string       `json:"xUnit"`
	YUnit      string       `json:"yUnit"`
	ZUnit      string       `json:"zUnit"`
	Timestamp  *time.Time   `json:"timestamp,omitempty"`
	Memo       string       `json:"memo,omitempty"`
	AxisLabels string       `json:"axisLabels,omitempty"`
	Subfiles   []SubfileDoc `json:"subfiles"`
	Log        *LogDoc      `json:"log,omitempty"`
}

// SubfileDoc is one subfile with its abscissa materialized.
type SubfileDoc struct {
	Index  uint16    `json:"index"`
	StartZ float32   `json:"startZ"`
	NextZ  float32   `json:"nextZ"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// LogDoc summarizes the trailing log block.
type LogDoc struct {
	Text        string `json:"text,omitempty"`
	BinaryBytes int    `json:"binaryBytes"`
}

// NewDocument projects a record into its JSON form.
func NewDocument(rec *spc.Record) *Document {
	doc := &Document{
		Generation: rec.Header.Generation().String(),
		Shape:      rec.Block.Shape().String(),
	}
	switch h := rec.Header.(type) {
	case *spc.OldHeader:
		doc.XUnit = h.XUnit.String()
		doc.YUnit = h.YUnit.String()
		doc.ZUnit = h.ZUnit.String()
		doc.Memo = h.Memo
		doc.AxisLabels = h.AxisLabels
	case *spc.NewHeader:
		doc.Technique = h.Technique.String()
		doc.XUnit = h.XUnit.String()
		doc.YUnit = h.YUnit.String()
		doc.ZUnit = h.ZUnit.String()
		doc.Memo = h.Memo
		doc.AxisLabels = h.AxisLabels
	}
	if ts, ok := rec.Header.Timestamp(); ok {
		doc.Timestamp = &ts
	}

	sharedX := sharedAbscissa(rec)
	for _, sub := range rec.Block.Subfiles() {
		x := sub.X
		if x == nil {
			x = sharedX
		}
		doc.Subfiles = append(doc.Subfiles, SubfileDoc{
			Index:  sub.Subheader.Index,
			StartZ: sub.Subheader.StartZ,
			NextZ:  sub.Subheader.NextZ,
			X:      x,
			Y:      sub.Y.Values(),
		})
	}

	if rec.Log != nil {
		doc.Log = &LogDoc{Text: rec.Log.Text, BinaryBytes: len(rec.Log.Binary)}
	}
	return doc
}

// WriteJSON renders a record as indented JSON.
func WriteJSON(w io.Writer, rec *spc.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rec))
}

func sharedAbscissa(rec *spc.Record) []float64 {
	switch b := rec.Block.(type) {
	case *spc.XYBlock:
		return b.X
	case *spc.XYYBlock:
		return b.X
	case *spc.XYXYBlock:
		return nil
	default:
		return rec.Header.XPoints()
	}
}
