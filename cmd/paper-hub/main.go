// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-hub CLI: search
// academic APIs, fetch papers by identifier, and download PDFs into a
// local hub.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-hub/internal/httputil"
	"github.com/pdiddy/paper-hub/internal/secrets"
	"github.com/pdiddy/paper-hub/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the paper-hub CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-hub",
	Short: "Search and download academic papers",
	Long: `paper-hub wraps the arXiv Atom API and the Semantic Scholar graph API.
It searches both, fetches papers by identifier, downloads PDFs into a
category-organized hub with JSON metadata sidecars, and keeps a local
SQLite index of everything downloaded.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-hub.yaml or ~/.config/paper-hub/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-hub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-hub"))
		}
	}

	viper.SetEnvPrefix("PAPER_HUB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the shared client settings from config file,
// environment, and secrets.
func clientConfig() types.ClientConfig {
	cfg := types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			SearchTimeout:   viper.GetDuration("search_timeout"),
			DownloadTimeout: viper.GetDuration("download_timeout"),
			UserAgent:       viper.GetString("user_agent"),
		},
		MinRequestInterval: viper.GetDuration("min_request_interval"),
		MaxRetries:         viper.GetInt("max_retries"),
		MaxConcurrent:      viper.GetInt("max_concurrent"),
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = httputil.DefaultUserAgent("paper-hub", version)
	}
	return cfg
}

// scholarConfig extends clientConfig with the API key from config,
// secrets directory, or environment.
func scholarConfig() types.ScholarConfig {
	cfg := types.ScholarConfig{ClientConfig: clientConfig()}
	cfg.APIKey = viper.GetString("scholar_api_key")
	if cfg.APIKey == "" {
		cfg.APIKey = loadedSecrets.Get("semantic-scholar-api-key", "SEMANTIC_SCHOLAR_API_KEY")
	}
	return cfg
}

// libraryConfig returns the download index settings, defaulting the
// database location to the hub directory.
func libraryConfig(hubDir string) types.LibraryConfig {
	dir := viper.GetString("library_dir")
	if dir == "" {
		dir = hubDir
	}
	return types.LibraryConfig{
		LibraryDir: dir,
		MaxResults: viper.GetInt("library_max_results"),
	}
}

const searchDeadline = 5 * time.Minute

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
