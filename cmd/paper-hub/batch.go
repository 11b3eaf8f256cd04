package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/scholar"
)

var batchCmd = &cobra.Command{
	Use:   "batch <identifiers...>",
	Short: "Fetch several papers in one request (Semantic Scholar)",
	Long: `Batch fetches up to a few hundred paper records in a single call to
the Semantic Scholar batch endpoint and prints them as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
		defer cancel()

		client := scholar.NewClient(scholarConfig())
		papers, err := client.BatchPapers(ctx, args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
