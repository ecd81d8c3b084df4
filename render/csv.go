// Package render turns decoded records into delimited text and JSON.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/robert-malhotra/go-spc/spc"
)

// WriteCSV renders a record as comma-separated values. Single-trace
// layouts produce x,y rows; multifile layouts sharing an abscissa produce
// one Y column per subfile; per-subfile-X collections are emitted as
// consecutive sections, each preceded by a comment line naming the
// subfile's Z position. X values are always emitted ascending, reversing
// the trace when the file stores it high-to-low.
func WriteCSV(w io.Writer, rec *spc.Record) error {
	switch b := rec.Block.(type) {
	case *spc.YBlock:
		return writeTrace(w, rec.Header.XPoints(), b.Subfile.Y.Values())
	case *spc.XYBlock:
		return writeTrace(w, b.X, b.Subfile.Y.Values())
	case *spc.YYBlock:
		return writeColumns(w, rec.Header.XPoints(), b.Files)
	case *spc.XYYBlock:
		return writeColumns(w, b.X, b.Files)
	case *spc.XYXYBlock:
		for _, sub := range b.Files {
			if _, err := fmt.Fprintf(w, "# z=%g\n", sub.Subheader.StartZ); err != nil {
				return err
			}
			if err := writeTrace(w, sub.X, sub.Y.Values()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported block type %T", rec.Block)
	}
}

func writeTrace(w io.Writer, x, y []float64) error {
	x, ys := ascending(x, [][]float64{y})
	y = ys[0]
	cw := csv.NewWriter(w)
	row := make([]string, 2)
	for i := range x {
		row[0] = formatFloat(x[i])
		row[1] = formatFloat(y[i])
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeColumns(w io.Writer, x []float64, files []spc.Subfile) error {
	ys := make([][]float64, len(files))
	for i, sub := range files {
		ys[i] = sub.Y.Values()
	}
	x, ys = ascending(x, ys)

	cw := csv.NewWriter(w)
	row := make([]string, 1+len(ys))
	for i := range x {
		row[0] = formatFloat(x[i])
		for j, y := range ys {
			row[1+j] = formatFloat(y[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ascending reverses x and every y series in lockstep when x is stored
// high-to-low, so that output always reads left to right.
func ascending(x []float64, ys [][]float64) ([]float64, [][]float64) {
	if len(x) < 2 || x[0] <= x[len(x)-1] {
		return x, ys
	}
	rx := make([]float64, len(x))
	for i, v := range x {
		rx[len(x)-1-i] = v
	}
	rys := make([][]float64, len(ys))
	for j, y := range ys {
		ry := make([]float64, len(y))
		for i, v := range y {
			ry[len(y)-1-i] = v
		}
		rys[j] = ry
	}
	return rx, rys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
