package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-hub/internal/arxiv"
	"github.com/pdiddy/paper-hub/internal/query"
	"github.com/pdiddy/paper-hub/internal/resultfile"
	"github.com/pdiddy/paper-hub/internal/scholar"
	"github.com/pdiddy/paper-hub/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query terms...]",
	Short: "Search academic APIs for papers",
	Long: `Search queries arXiv or Semantic Scholar for papers. Positional
arguments are joined into a raw provider query string; alternatively,
field flags (--title, --author, --category, --abstract) and date flags
(--from/--to, --today) build a structured arXiv query. Field flags
combine with AND.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("provider", "arxiv", "search provider: arxiv or scholar")
	searchCmd.Flags().String("title", "", "match words in the title (arXiv only)")
	searchCmd.Flags().String("author", "", "match an author name (arXiv only)")
	searchCmd.Flags().String("abstract", "", "match words in the abstract (arXiv only)")
	searchCmd.Flags().String("category", "", "restrict to an arXiv category, e.g. cs.AI")
	searchCmd.Flags().String("from", "", "earliest submission date (e.g. 2024, 2024-06, 2024-06-15)")
	searchCmd.Flags().String("to", "", "latest submission date, inclusive")
	searchCmd.Flags().Bool("today", false, "restrict to papers submitted today (UTC)")
	searchCmd.Flags().String("sort-by", "", "sort field: relevance, lastUpdatedDate, or submittedDate")
	searchCmd.Flags().String("sort-order", "descending", "sort order: ascending or descending")
	searchCmd.Flags().Int("start", 0, "result window offset")
	searchCmd.Flags().Int("max-results", 20, "maximum results per request")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save results to a YAML file at this path")

	rootCmd.AddCommand(searchCmd)
}

// buildArxivQuery assembles the query from positional args or field
// flags. Raw args win; mixing both is rejected to avoid surprising
// token orderings.
func buildArxivQuery(cmd *cobra.Command, args []string) (query.Query, error) {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	abstract, _ := cmd.Flags().GetString("abstract")
	category, _ := cmd.Flags().GetString("category")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	today, _ := cmd.Flags().GetBool("today")

	hasFields := title != "" || author != "" || abstract != "" || category != "" ||
		from != "" || to != "" || today

	if len(args) > 0 {
		if hasFields {
			return nil, fmt.Errorf("use either a raw query or field flags, not both")
		}
		return query.Raw(strings.Join(args, " ")), nil
	}
	if !hasFields {
		return nil, fmt.Errorf("provide query terms or at least one field flag")
	}

	b := &query.Builder{}
	first := true
	addAnd := func() {
		if !first {
			b.And()
		}
		first = false
	}

	if title != "" {
		addAnd()
		b.Title(title)
	}
	if author != "" {
		addAnd()
		b.Author(author)
	}
	if abstract != "" {
		addAnd()
		b.Abstract(abstract)
	}
	if category != "" {
		addAnd()
		b.Category(category)
	}
	if today {
		addAnd()
		b.Today()
	}
	if from != "" || to != "" {
		if from == "" || to == "" {
			return nil, fmt.Errorf("--from and --to must be given together")
		}
		addAnd()
		b.DateRange(from, to, true)
	}

	if sortBy, _ := cmd.Flags().GetString("sort-by"); sortBy != "" {
		sortOrder, _ := cmd.Flags().GetString("sort-order")
		b.SortBy(sortBy, sortOrder)
	}
	return b, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	provider, _ := cmd.Flags().GetString("provider")
	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")

	ctx, cancel := context.WithTimeout(cmd.Context(), searchDeadline)
	defer cancel()

	var (
		rs  *types.ResultSet
		err error
	)
	switch provider {
	case "arxiv":
		q, qerr := buildArxivQuery(cmd, args)
		if qerr != nil {
			return qerr
		}
		client := arxiv.NewClient(clientConfig())
		rs, err = client.Search(ctx, q, start, maxResults)
	case "scholar", "semantic-scholar":
		if len(args) == 0 {
			return fmt.Errorf("the scholar provider takes a raw query; field flags are arXiv-only")
		}
		client := scholar.NewClient(scholarConfig())
		rs, err = client.Search(ctx, strings.Join(args, " "), start, maxResults)
	default:
		return fmt.Errorf("unknown provider %q (want arxiv or scholar)", provider)
	}
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := resultfile.Write(savePath, provider, rs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved results to %s\n", savePath)
	}
	return printPapers(os.Stdout, rs, asJSON)
}
