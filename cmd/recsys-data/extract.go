// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recsys-data/internal/dataset"
	"github.com/pdiddy/recsys-data/internal/store"
	"github.com/pdiddy/recsys-data/internal/tabular"
	"github.com/pdiddy/recsys-data/pkg/types"
)

const defaultHead = 5

var extractCmd = &cobra.Command{
	Use:   "extract [datasets...]",
	Short: "Download datasets and load them into tables",
	Long: `Extract downloads each named dataset (articles, customers, transactions;
all three when none are given), parses it into a typed table, and prints its
shape, schema, and first rows.

With --output-dir each table is also written as CSV or JSON. With --sqlite
each table is saved into a SQLite database under the dataset name.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Int("head", defaultHead, "number of rows to preview (0 = none)")
	extractCmd.Flags().String("output-dir", "", "directory to write each table to")
	extractCmd.Flags().String("format", string(types.ExportCSV), "output file format: csv or json")
	extractCmd.Flags().String("sqlite", "", "SQLite database file to save tables into")

	_ = viper.BindPFlag("export.output_dir", extractCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("export.format", extractCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("export.sqlite_path", extractCmd.Flags().Lookup("sqlite"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	sets, err := datasetsFromArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	head, _ := cmd.Flags().GetInt("head")

	ex := &extractor{
		loader: dataset.NewLoader(cfg.Loader),
		export: cfg.Export,
		head:   head,
		out:    os.Stdout,
		log:    os.Stderr,
	}
	if cfg.Export.SQLitePath != "" {
		st, err := store.Open(cfg.Export.SQLitePath)
		if err != nil {
			return err
		}
		defer st.Close()
		ex.store = st
	}

	failed := ex.run(cmd.Context(), sets)
	if failed > 0 {
		return fmt.Errorf("%d dataset(s) failed", failed)
	}
	return nil
}

// extractor loads datasets one at a time and sends each table to the
// configured outputs.
type extractor struct {
	loader *dataset.Loader
	export types.ExportConfig
	store  *store.Store
	head   int
	out    io.Writer
	log    io.Writer
}

// run processes sets in order and returns the number that failed. A failed
// dataset does not stop the remaining ones.
func (e *extractor) run(ctx context.Context, sets []dataset.Dataset) int {
	failed := 0
	for _, d := range sets {
		if err := e.one(ctx, d); err != nil {
			fmt.Fprintf(e.log, "failed  %s: %v\n", d, err)
			failed++
		}
	}
	return failed
}

func (e *extractor) one(ctx context.Context, d dataset.Dataset) error {
	fmt.Fprintf(e.log, "fetching %s from %s\n", d, e.loader.URL(d))
	start := time.Now()

	tbl, err := e.loader.Extract(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.log, "loaded  %s: %d rows x %d columns in %v\n",
		d, tbl.Height(), tbl.Width(), time.Since(start).Round(time.Millisecond))

	writePreview(e.out, d.String(), tbl, e.head)

	if e.export.OutputDir != "" {
		path, err := writeTableFile(e.export.OutputDir, d, tbl, e.export.Format)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.log, "wrote   %s\n", path)
	}

	if e.store != nil {
		n, err := e.store.Save(ctx, d.String(), tbl)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.log, "saved   %s: %d rows to %s\n", d, n, e.export.SQLitePath)
	}
	return nil
}

// writeTableFile writes tbl to dir/<dataset>.<format> and returns the path.
func writeTableFile(dir string, d dataset.Dataset, tbl *types.Table, format types.ExportFormat) (string, error) {
	if format == "" {
		format = types.ExportCSV
	}
	write := tabular.WriteCSV
	switch format {
	case types.ExportCSV:
	case types.ExportJSON:
		write = tabular.WriteJSON
	default:
		return "", fmt.Errorf("unsupported format %q: use csv or json", format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, d.String()+"."+string(format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f, tbl); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, f.Close()
}

// datasetsFromArgs parses dataset names, defaulting to all datasets.
// Repeated names are kept once.
func datasetsFromArgs(args []string) ([]dataset.Dataset, error) {
	if len(args) == 0 {
		return dataset.All(), nil
	}
	seen := make(map[dataset.Dataset]bool)
	var sets []dataset.Dataset
	for _, a := range args {
		d, err := dataset.Parse(a)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			sets = append(sets, d)
		}
	}
	return sets, nil
}
