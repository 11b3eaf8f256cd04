package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/arxiv"
	"github.com/pdiddy/paper-hub/internal/scholar"
	"github.com/pdiddy/paper-hub/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Fetch one paper's metadata by identifier",
	Long: `Get fetches a single paper record. arXiv identifiers look like
2301.01234 (optionally with an arXiv: prefix or version suffix);
Semantic Scholar accepts its 40-char paper IDs, DOIs, and prefixed
external IDs such as ARXIV:2301.01234.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().String("provider", "arxiv", "search provider: arxiv or scholar")
	getCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(getCmd)
}

// fetchByID dispatches the identifier to the chosen provider. A nil
// paper with nil error means the provider had no record.
func fetchByID(ctx context.Context, provider, id string) (*types.Paper, error) {
	switch provider {
	case "arxiv":
		return arxiv.NewClient(clientConfig()).GetByID(ctx, id)
	case "scholar", "semantic-scholar":
		return scholar.NewClient(scholarConfig()).GetByID(ctx, id)
	default:
		return nil, fmt.Errorf("unknown provider %q (want arxiv or scholar)", provider)
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	provider, _ := cmd.Flags().GetString("provider")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
	defer cancel()

	paper, err := fetchByID(ctx, provider, args[0])
	if err != nil {
		return err
	}
	if paper == nil {
		return fmt.Errorf("no paper found for %q", args[0])
	}
	return printPaper(os.Stdout, paper, asJSON)
}
