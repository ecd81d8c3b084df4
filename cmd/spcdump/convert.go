package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-spc/render"
	"github.com/robert-malhotra/go-spc/spc"
)

func convertCmd() *cli.Command {
	var (
		format  string
		outPath string
		verbose bool
	)

	return &cli.Command{
		Name:      "convert",
		Usage:     "Decode a file and write its traces as CSV or JSON",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format: csv or json",
				Value:       "csv",
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output path; \"-\" for stdout (default: input path with the format extension)",
				Destination: &outPath,
			},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log decode details", Destination: &verbose},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			if c.Args().Len() != 1 {
				return cli.Exit("error: convert takes exactly one input file", 1)
			}
			cfg, err := loadConfig()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: config: %v", err), 1)
			}
			if cfg.Format != "" && !c.IsSet("format") {
				format = cfg.Format
			}

			logger, err := newLogger(verbose || cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path := c.Args().First()
			rec, err := spc.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			logger.Debug("decoded",
				zap.String("file", path),
				zap.Stringer("generation", rec.Header.Generation()),
				zap.Stringer("shape", rec.Block.Shape()),
				zap.Int("subfiles", len(rec.Block.Subfiles())),
				zap.Bool("log_block", rec.Log != nil))

			format = strings.ToLower(format)
			if format != "csv" && format != "json" {
				return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 1)
			}
			if outPath == "" {
				outPath = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
			}

			var out io.Writer = os.Stdout
			if outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if format == "csv" {
				err = render.WriteCSV(out, rec)
			} else {
				err = render.WriteJSON(out, rec)
			}
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return nil
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
