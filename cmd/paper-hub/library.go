package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect the local index of downloaded papers",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent downloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibrary(cmd, "")
	},
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <query terms...>",
	Short: "Full-text search over downloaded titles and abstracts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibrary(cmd, strings.Join(args, " "))
	},
}

func init() {
	libraryCmd.PersistentFlags().String("dir", "hub", "hub directory holding the library index")
	libraryCmd.PersistentFlags().Bool("json", false, "output entries as JSON")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, q string) error {
	dir, _ := cmd.Flags().GetString("dir")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := library.Open(libraryConfig(dir))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var entries []library.Entry
	if q == "" {
		entries, err = store.List(ctx)
	} else {
		entries, err = store.Search(ctx, q)
	}
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.DownloadedAt.Format("2006-01-02"), e.Title)
		fmt.Printf("    %s  [%s]  %s\n", e.ID, e.Category, e.PDFPath)
	}
	return nil
}
