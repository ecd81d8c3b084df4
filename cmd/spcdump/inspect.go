package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-spc/spc"
)

func inspectCmd() *cli.Command {
	var showLog bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header, subfile layout and log summary of a file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "log", Usage: "print the full log text", Destination: &showLog},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			if c.Args().Len() != 1 {
				return cli.Exit("error: inspect takes exactly one input file", 1)
			}
			path := c.Args().First()
			rec, err := spc.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			printRecord(path, rec)
			if showLog && rec.Log != nil {
				section("Log Text")
				fmt.Println(rec.Log.Text)
			}
			return nil
		},
	}
}

func printRecord(path string, rec *spc.Record) {
	fmt.Printf("File: %s\n", path)
	row("generation", rec.Header.Generation().String())
	row("shape", rec.Block.Shape().String())
	start, end := rec.Header.XRange()
	row("x_range", fmt.Sprintf("%g .. %g", start, end))
	rowInt("points", rec.Header.PointCount())
	if ts, ok := rec.Header.Timestamp(); ok {
		row("collected", ts.Format("2006-01-02 15:04"))
	}

	switch h := rec.Header.(type) {
	case *spc.OldHeader:
		row("x_unit", h.XUnit.String())
		row("y_unit", h.YUnit.String())
		row("z_unit", h.ZUnit.String())
		row("resolution", h.Resolution)
		row("memo", h.Memo)
	case *spc.NewHeader:
		row("technique", h.Technique.String())
		row("x_unit", h.XUnit.String())
		row("y_unit", h.YUnit.String())
		row("z_unit", h.ZUnit.String())
		row("resolution", h.Resolution)
		row("source", h.SourceInstrument)
		row("memo", h.Memo)
	}

	section("Subfiles")
	for i, sub := range rec.Block.Subfiles() {
		fmt.Printf("%3d  index=%-4d z=%-12g points=%-8d y=%s\n",
			i, sub.Subheader.Index, sub.Subheader.StartZ, sub.Y.Len(), sub.Y.Mode)
	}

	if rec.Log != nil {
		section("Log Block")
		rowInt("binary_bytes", len(rec.Log.Binary))
		rowInt("text_chars", len(rec.Log.Text))
	}
}

func section(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-14s %s\n", label+":", value)
}

func rowInt(label string, v int) {
	if v == 0 {
		return
	}
	row(label, fmt.Sprintf("%d", v))
}
