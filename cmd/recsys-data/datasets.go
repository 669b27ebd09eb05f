package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recsys-data/internal/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the available datasets and their endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return listDatasets(os.Stdout, dataset.NewLoader(cfg.Loader), jsonOutput)
	},
}

type datasetEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func listDatasets(w io.Writer, l *dataset.Loader, jsonOutput bool) error {
	entries := make([]datasetEntry, 0, len(dataset.All()))
	for _, d := range dataset.All() {
		entries = append(entries, datasetEntry{Name: d.String(), URL: l.URL(d)})
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-14s  %s\n", e.Name, e.URL)
	}
	return nil
}

func init() {
	datasetsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(datasetsCmd)
}
