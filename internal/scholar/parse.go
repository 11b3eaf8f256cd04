// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-hub/internal/apierr"
	"github.com/pdiddy/paper-hub/pkg/types"
)

// Graph API JSON structures.
type searchResponse struct {
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Data   []paperJSON `json:"data"`
}

type paperJSON struct {
	PaperID                  string         `json:"paperId"`
	Title                    string         `json:"title"`
	Abstract                 string         `json:"abstract"`
	Venue                    string         `json:"venue"`
	Year                     int            `json:"year"`
	CitationCount            int            `json:"citationCount"`
	InfluentialCitationCount int            `json:"influentialCitationCount"`
	PublicationDate          string         `json:"publicationDate"`
	ExternalIDs              externalIDs    `json:"externalIds"`
	Authors                  []authorJSON   `json:"authors"`
	OpenAccessPDF            openAccessPDF  `json:"openAccessPdf"`
	References               []paperRefJSON `json:"references"`
	Citations                []paperRefJSON `json:"citations"`
}

type externalIDs struct {
	DOI   string `json:"DOI"`
	ArXiv string `json:"ArXiv"`
}

type openAccessPDF struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

type paperRefJSON struct {
	PaperID string `json:"paperId"`
	Title   string `json:"title"`
}

type authorJSON struct {
	AuthorID      string         `json:"authorId"`
	Name          string         `json:"name"`
	Affiliations  []string       `json:"affiliations"`
	PaperCount    int            `json:"paperCount"`
	CitationCount int            `json:"citationCount"`
	Papers        []paperRefJSON `json:"papers"`
}

func (a authorJSON) toRecord() types.AuthorRecord {
	rec := types.AuthorRecord{
		AuthorID:      a.AuthorID,
		Name:          a.Name,
		PaperCount:    a.PaperCount,
		CitationCount: a.CitationCount,
	}
	for _, p := range a.Papers {
		if p.PaperID != "" {
			rec.Papers = append(rec.Papers, types.PaperRef{PaperID: p.PaperID, Title: p.Title})
		}
	}
	return rec
}

type authorsResponse struct {
	Data []authorJSON `json:"data"`
}

// linkedResponse wraps /citations and /references entries, which nest
// the actual paper under citingPaper or citedPaper respectively.
type linkedResponse struct {
	Data []linkedEntry `json:"data"`
}

type linkedEntry struct {
	CitingPaper paperRefJSON `json:"citingPaper"`
	CitedPaper  paperRefJSON `json:"citedPaper"`
}

type autocompleteResponse struct {
	Matches []autocompleteMatch `json:"matches"`
}

type autocompleteMatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// parsePapers normalizes a batch of entries. A malformed entry is
// recorded but does not abort the batch; if any entry failed, the whole
// call fails with a ParseError summarizing the damage.
func parsePapers(data []paperJSON) ([]types.Paper, error) {
	papers := make([]types.Paper, 0, len(data))
	failures := 0
	firstIndex := -1
	var firstErr error

	for i, pj := range data {
		p, err := parsePaper(pj)
		if err != nil {
			if failures == 0 {
				firstIndex = i
				firstErr = err
			}
			failures++
			continue
		}
		papers = append(papers, p)
	}

	if failures > 0 {
		return nil, &apierr.ParseError{Failures: failures, FirstIndex: firstIndex, First: firstErr}
	}
	return papers, nil
}

// parsePaper normalizes one graph API entry into a Paper. The paperId
// is the only required field. The open-access PDF reference becomes a
// typed link so the shared resolver can use it.
func parsePaper(pj paperJSON) (types.Paper, error) {
	if pj.PaperID == "" {
		return types.Paper{}, fmt.Errorf("entry has no paperId")
	}

	p := types.Paper{
		ID:                       pj.PaperID,
		Title:                    strings.TrimSpace(pj.Title),
		Summary:                  strings.TrimSpace(pj.Abstract),
		DOI:                      pj.ExternalIDs.DOI,
		Venue:                    pj.Venue,
		Year:                     pj.Year,
		CitationCount:            pj.CitationCount,
		InfluentialCitationCount: pj.InfluentialCitationCount,
	}

	for _, a := range pj.Authors {
		if a.Name == "" {
			continue
		}
		p.Authors = append(p.Authors, types.Author{Name: a.Name, Affiliations: a.Affiliations})
	}

	if pj.OpenAccessPDF.URL != "" {
		p.Links = append(p.Links, types.Link{Href: pj.OpenAccessPDF.URL, Type: "application/pdf"})
	}

	if pj.PublicationDate != "" {
		if t, err := time.Parse("2006-01-02", pj.PublicationDate); err == nil {
			p.Published = t.UTC()
		}
	}
	if p.Published.IsZero() && pj.Year > 0 {
		p.Published = time.Date(pj.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	for _, r := range pj.References {
		if r.PaperID != "" {
			p.References = append(p.References, types.PaperRef{PaperID: r.PaperID, Title: r.Title})
		}
	}
	for _, c := range pj.Citations {
		if c.PaperID != "" {
			p.Citations = append(p.Citations, types.PaperRef{PaperID: c.PaperID, Title: c.Title})
		}
	}

	return p, nil
}
