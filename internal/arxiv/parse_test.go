// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-hub/internal/apierr"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/"
      xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>ArXiv Query: search_query=all:electron</title>
  <opensearch:totalResults>1000</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>2</opensearch:itemsPerPage>
  <entry>
    <id>http://arxiv.org/abs/2301.07041v1</id>
    <title>  Attention Is All You Need  </title>
    <summary>
      The dominant sequence transduction models are based on complex
      recurrent or convolutional neural networks.
    </summary>
    <published>2023-01-17T14:00:00Z</published>
    <updated>2023-01-18T09:30:00Z</updated>
    <author>
      <name>Ashish Vaswani</name>
      <arxiv:affiliation>Google Brain</arxiv:affiliation>
    </author>
    <author>
      <name>Noam Shazeer</name>
    </author>
    <arxiv:comment>15 pages, 5 figures</arxiv:comment>
    <arxiv:journal_ref>NeurIPS 2017</arxiv:journal_ref>
    <arxiv:doi>10.1000/example.doi</arxiv:doi>
    <link href="http://arxiv.org/abs/2301.07041v1" rel="alternate" type="text/html"/>
    <link href="http://arxiv.org/pdf/2301.07041v1" rel="related" type="application/pdf" title="pdf"/>
    <arxiv:primary_category term="cs.CL"/>
    <category term="cs.CL"/>
    <category term="cs.LG"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.08100v2</id>
    <title>Second Paper</title>
    <summary>Short abstract.</summary>
    <published>2023-01-19T00:00:00Z</published>
    <updated>2023-01-20T00:00:00Z</updated>
    <author><name>Jane Doe</name></author>
    <arxiv:primary_category term="math.CO"/>
  </entry>
</feed>`

func TestParseFeed(t *testing.T) {
	rs, err := parseFeed([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("parseFeed() error = %v", err)
	}

	if rs.TotalResults != 1000 || rs.StartIndex != 0 || rs.ItemsPerPage != 2 {
		t.Errorf("pagination = (%d, %d, %d), want (1000, 0, 2)",
			rs.TotalResults, rs.StartIndex, rs.ItemsPerPage)
	}
	if len(rs.Papers) != 2 {
		t.Fatalf("len(Papers) = %d, want 2", len(rs.Papers))
	}

	p := rs.Papers[0]
	if p.ID != "http://arxiv.org/abs/2301.07041v1" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, want trimmed", p.Title)
	}
	if !strings.HasPrefix(p.Summary, "The dominant") {
		t.Errorf("Summary = %q, want trimmed", p.Summary)
	}
	if len(p.Authors) != 2 || p.Authors[0].Name != "Ashish Vaswani" {
		t.Fatalf("Authors = %+v", p.Authors)
	}
	if len(p.Authors[0].Affiliations) != 1 || p.Authors[0].Affiliations[0] != "Google Brain" {
		t.Errorf("Affiliations = %v", p.Authors[0].Affiliations)
	}
	if p.PrimaryCategory != "cs.CL" {
		t.Errorf("PrimaryCategory = %q", p.PrimaryCategory)
	}
	if len(p.Categories) != 2 {
		t.Errorf("Categories = %v", p.Categories)
	}
	if p.Comment != "15 pages, 5 figures" || p.JournalRef != "NeurIPS 2017" {
		t.Errorf("Comment/JournalRef = %q / %q", p.Comment, p.JournalRef)
	}
	if p.DOI != "10.1000/example.doi" {
		t.Errorf("DOI = %q", p.DOI)
	}
	if len(p.Links) != 2 || p.Links[1].Rel != "related" {
		t.Errorf("Links = %+v", p.Links)
	}

	want := time.Date(2023, 1, 17, 14, 0, 0, 0, time.UTC)
	if !p.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", p.Published, want)
	}
}

func TestParseFeedMalformedEntry(t *testing.T) {
	// Middle entry has no id; the other two are fine. The whole call
	// must fail with counts pointing at the bad entry.
	feed := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><id>http://arxiv.org/abs/1.1</id><title>A</title></entry>
  <entry><title>No ID Here</title></entry>
  <entry><id>http://arxiv.org/abs/3.3</id><title>C</title></entry>
</feed>`

	_, err := parseFeed([]byte(feed))
	var parseErr *apierr.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("parseFeed() error = %v, want ParseError", err)
	}
	if parseErr.Failures != 1 {
		t.Errorf("Failures = %d, want 1", parseErr.Failures)
	}
	if parseErr.FirstIndex != 1 {
		t.Errorf("FirstIndex = %d, want 1", parseErr.FirstIndex)
	}
	if parseErr.First == nil {
		t.Error("First should carry the underlying entry error")
	}
}

func TestParseFeedNotXML(t *testing.T) {
	_, err := parseFeed([]byte(`{"this": "is json"}`))
	var parseErr *apierr.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("parseFeed() error = %v, want ParseError", err)
	}
}

func TestParseFeedEmpty(t *testing.T) {
	feed := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">
  <opensearch:totalResults>0</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>0</opensearch:itemsPerPage>
</feed>`

	rs, err := parseFeed([]byte(feed))
	if err != nil {
		t.Fatalf("parseFeed() error = %v", err)
	}
	if len(rs.Papers) != 0 || rs.TotalResults != 0 {
		t.Errorf("empty feed parsed as %+v", rs)
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"versioned", "http://arxiv.org/abs/2301.07041v1", "2301.07041v1"},
		{"https", "https://arxiv.org/abs/2301.07041", "2301.07041"},
		{"no abs segment", "http://example.com/paper/123", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.input); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
