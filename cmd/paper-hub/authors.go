package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/scholar"
)

var authorsCmd = &cobra.Command{
	Use:   "authors [name terms...]",
	Short: "Search Semantic Scholar authors or fetch one by ID",
	Long: `Authors searches the Semantic Scholar author index by name. With
--id, it fetches one author's record and paper list instead.`,
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().String("id", "", "fetch a single author by Semantic Scholar author ID")
	authorsCmd.Flags().Int("max-results", 20, "maximum results per request")
	authorsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	authorID, _ := cmd.Flags().GetString("id")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
	defer cancel()

	client := scholar.NewClient(scholarConfig())

	if authorID != "" {
		rec, err := client.GetAuthor(ctx, authorID)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("no author found for %q", authorID)
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}
		fmt.Printf("%s (id %s): %d papers, %d citations\n", rec.Name, rec.AuthorID, rec.PaperCount, rec.CitationCount)
		for _, p := range rec.Papers {
			fmt.Printf("  %s  %s\n", p.PaperID, p.Title)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide author name terms or --id")
	}

	records, err := client.SearchAuthors(ctx, strings.Join(args, " "), maxResults)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, rec := range records {
		fmt.Printf("%s  %s (%d papers, %d citations)\n", rec.AuthorID, rec.Name, rec.PaperCount, rec.CitationCount)
	}
	return nil
}
