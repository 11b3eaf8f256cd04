package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-hub/pkg/types"
)

// printPapers writes a result listing, either as indented JSON or as a
// human-readable summary.
func printPapers(w io.Writer, rs *types.ResultSet, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	}

	fmt.Fprintf(w, "%d results (showing %d from index %d)\n\n", rs.TotalResults, len(rs.Papers), rs.StartIndex)
	for i, p := range rs.Papers {
		fmt.Fprintf(w, "%2d. %s\n", rs.StartIndex+i+1, p.Title)
		fmt.Fprintf(w, "    id: %s", p.ID)
		if p.DOI != "" {
			fmt.Fprintf(w, "  doi: %s", p.DOI)
		}
		fmt.Fprintln(w)
		if len(p.Authors) > 0 {
			names := make([]string, 0, len(p.Authors))
			for _, a := range p.Authors {
				names = append(names, a.Name)
			}
			fmt.Fprintf(w, "    %s\n", strings.Join(names, ", "))
		}
		if !p.Published.IsZero() {
			fmt.Fprintf(w, "    published: %s", p.Published.Format("2006-01-02"))
			if p.PrimaryCategory != "" {
				fmt.Fprintf(w, "  category: %s", p.PrimaryCategory)
			}
			if p.Venue != "" {
				fmt.Fprintf(w, "  venue: %s", p.Venue)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// printPaper writes one paper's full record.
func printPaper(w io.Writer, p *types.Paper, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Fprintf(w, "Title:     %s\n", p.Title)
	fmt.Fprintf(w, "ID:        %s\n", p.ID)
	if p.DOI != "" {
		fmt.Fprintf(w, "DOI:       %s\n", p.DOI)
	}
	if len(p.Authors) > 0 {
		names := make([]string, 0, len(p.Authors))
		for _, a := range p.Authors {
			names = append(names, a.Name)
		}
		fmt.Fprintf(w, "Authors:   %s\n", strings.Join(names, ", "))
	}
	if !p.Published.IsZero() {
		fmt.Fprintf(w, "Published: %s\n", p.Published.Format("2006-01-02"))
	}
	if p.PrimaryCategory != "" {
		fmt.Fprintf(w, "Category:  %s\n", p.PrimaryCategory)
	}
	if p.Venue != "" {
		fmt.Fprintf(w, "Venue:     %s (%d)\n", p.Venue, p.Year)
	}
	if p.CitationCount > 0 {
		fmt.Fprintf(w, "Citations: %d (%d influential)\n", p.CitationCount, p.InfluentialCitationCount)
	}
	if p.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", p.Summary)
	}
	return nil
}
