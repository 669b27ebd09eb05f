// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recsys-data CLI, which downloads
// the H&M recommender datasets and loads them into tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recsys-data/internal/secrets"
	"github.com/pdiddy/recsys-data/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "recsys-data/0.1"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the recsys-data CLI.
var rootCmd = &cobra.Command{
	Use:   "recsys-data",
	Short: "Download and load the H&M recommender datasets",
	Long: `recsys-data fetches the H&M articles, customers, and transactions CSV
datasets over HTTP and loads each one into a typed in-memory table. Tables
can be previewed, described, written to CSV or JSON, or saved into SQLite.

Every run downloads afresh; nothing is cached.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./recsys-data.yaml or ~/.config/recsys-data/config.yaml)")
	pf.String("secrets-dir", ".secrets/", "directory of secret files (repo-token)")
	pf.Duration("timeout", 0, "HTTP request timeout (0 = no timeout)")
	pf.String("user-agent", defaultUserAgent, "User-Agent header for dataset requests")
	pf.String("base-url", "", "dataset repository base URL (default: the hops.works H&M repository)")

	_ = viper.BindPFlag("loader.timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("loader.user_agent", pf.Lookup("user-agent"))
	_ = viper.BindPFlag("loader.base_url", pf.Lookup("base-url"))

	viper.SetDefault("export.format", string(types.ExportCSV))
	viper.SetDefault("export.output_dir", "")
	viper.SetDefault("export.sqlite_path", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recsys-data")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recsys-data"))
		}
	}

	viper.SetEnvPrefix("RECSYS_DATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves settings from flags, environment, and the config
// file, then attaches the repository token from the loaded secrets.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Loader.Token = loadedSecrets.Get(secrets.RepoToken)
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
