// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-hub/internal/apierr"
	"github.com/pdiddy/paper-hub/pkg/types"
)

// Atom/OpenSearch feed XML structures. The arXiv extension elements
// live in the http://arxiv.org/schemas/atom namespace.
type atomFeed struct {
	TotalResults int         `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	StartIndex   int         `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex"`
	ItemsPerPage int         `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage"`
	Entries      []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string         `xml:"id"`
	Title           string         `xml:"title"`
	Summary         string         `xml:"summary"`
	Published       string         `xml:"published"`
	Updated         string         `xml:"updated"`
	Authors         []atomAuthor   `xml:"author"`
	Links           []atomLink     `xml:"link"`
	PrimaryCategory atomCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	Categories      []atomCategory `xml:"category"`
	Comment         string         `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef      string         `xml:"http://arxiv.org/schemas/atom journal_ref"`
	DOI             string         `xml:"http://arxiv.org/schemas/atom doi"`
}

type atomAuthor struct {
	Name         string   `xml:"name"`
	Affiliations []string `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Type  string `xml:"type,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// parseFeed decodes an Atom response into a ResultSet. Entries are
// parsed one by one; a malformed entry is recorded but does not abort
// the batch. If any entry failed, the whole call fails with a
// ParseError summarizing the damage — an intentional all-or-nothing
// contract at the call boundary despite partial internal success.
func parseFeed(data []byte) (*types.ResultSet, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, &apierr.ParseError{First: fmt.Errorf("decoding feed: %w", err)}
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	failures := 0
	firstIndex := -1
	var firstErr error

	for i, e := range feed.Entries {
		p, err := parseEntry(e)
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

	return &types.ResultSet{
		Papers:       papers,
		TotalResults: feed.TotalResults,
		StartIndex:   feed.StartIndex,
		ItemsPerPage: feed.ItemsPerPage,
	}, nil
}

// parseEntry normalizes one feed entry into a Paper. The identifier is
// the only required field; timestamps and extension fields are
// best-effort.
func parseEntry(e atomEntry) (types.Paper, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return types.Paper{}, fmt.Errorf("entry has no id")
	}

	p := types.Paper{
		ID:              id,
		Title:           strings.TrimSpace(e.Title),
		Summary:         strings.TrimSpace(e.Summary),
		PrimaryCategory: e.PrimaryCategory.Term,
		Comment:         strings.TrimSpace(e.Comment),
		JournalRef:      strings.TrimSpace(e.JournalRef),
		DOI:             strings.TrimSpace(e.DOI),
	}

	for _, a := range e.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		p.Authors = append(p.Authors, types.Author{Name: name, Affiliations: a.Affiliations})
	}

	for _, l := range e.Links {
		if l.Href == "" {
			continue
		}
		p.Links = append(p.Links, types.Link{Href: l.Href, Type: l.Type, Rel: l.Rel, Title: l.Title})
	}

	for _, c := range e.Categories {
		if c.Term != "" {
			p.Categories = append(p.Categories, c.Term)
		}
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		p.Published = t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		p.Updated = t.UTC()
	}

	return p, nil
}

// ExtractID pulls the bare arXiv identifier out of an abstract-page id
// URL (e.g. "http://arxiv.org/abs/2301.07041v1" becomes
// "2301.07041v1"). Returns the empty string when the URL has no /abs/
// segment.
func ExtractID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(prefix):]
}
