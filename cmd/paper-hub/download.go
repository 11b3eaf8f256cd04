package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/arxiv"
	"github.com/pdiddy/paper-hub/internal/download"
	"github.com/pdiddy/paper-hub/internal/library"
	"github.com/pdiddy/paper-hub/internal/scholar"
	"github.com/pdiddy/paper-hub/pkg/types"
)

var downloadCmd = &cobra.Command{
	Use:   "download <identifier>",
	Short: "Download a paper's PDF into the hub",
	Long: `Download fetches the paper's metadata, resolves its PDF location,
and streams the file into a category subdirectory of the hub with a
JSON metadata sidecar alongside. Already-downloaded papers are skipped
unless --overwrite is given. Each download is recorded in the library
index unless --no-index is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().String("provider", "arxiv", "search provider: arxiv or scholar")
	downloadCmd.Flags().String("dest", "hub", "hub directory for downloaded PDFs")
	downloadCmd.Flags().Bool("overwrite", false, "replace an existing PDF")
	downloadCmd.Flags().Bool("no-index", false, "skip recording the download in the library index")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	provider, _ := cmd.Flags().GetString("provider")
	dest, _ := cmd.Flags().GetString("dest")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	noIndex, _ := cmd.Flags().GetBool("no-index")

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating hub directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
	defer cancel()

	var (
		paper *types.Paper
		path  string
		err   error
	)
	switch provider {
	case "arxiv":
		client := arxiv.NewClient(clientConfig())
		if paper, err = client.GetByID(ctx, args[0]); err != nil {
			return err
		}
		if paper == nil {
			return fmt.Errorf("no paper found for %q", args[0])
		}
		path, err = client.Download(ctx, paper, dest, overwrite)
	case "scholar", "semantic-scholar":
		client := scholar.NewClient(scholarConfig())
		if paper, err = client.GetByID(ctx, args[0]); err != nil {
			return err
		}
		if paper == nil {
			return fmt.Errorf("no paper found for %q", args[0])
		}
		path, err = client.Download(ctx, paper, dest, overwrite)
	default:
		return fmt.Errorf("unknown provider %q (want arxiv or scholar)", provider)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "downloaded %s\n", path)

	if noIndex {
		return nil
	}
	store, err := library.Open(libraryConfig(dest))
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, paper, provider, path, download.CategoryDir(paper))
}
