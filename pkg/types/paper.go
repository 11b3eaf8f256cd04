// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-hub clients
// and download pipeline.
package types

import "time"

// Author is a paper author as reported by a provider.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists institutional affiliations, when the provider
	// reports them.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Link is a hyperlink attached to a paper entry.
type Link struct {
	// Href is the link target.
	Href string `json:"href" yaml:"href"`

	// Type is the declared MIME type (e.g. "application/pdf"), if any.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Rel is the link relation (e.g. "alternate", "related"), if any.
	Rel string `json:"rel,omitempty" yaml:"rel,omitempty"`

	// Title is the link title, if any.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// PaperRef is a lightweight reference to another paper, used for
// Semantic Scholar reference and citation lists.
type PaperRef struct {
	PaperID string `json:"paper_id" yaml:"paper_id"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Paper is the normalized representation of a scholarly paper. ID is
// always present and non-empty; every other field is optional and
// defaults to its zero value. Provider-specific fields are grouped at
// the end: the arXiv block and the Semantic Scholar block.
type Paper struct {
	// ID is the provider-native identifier, opaque to callers
	// (arXiv abstract URL or Semantic Scholar paperId).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract, whitespace-trimmed.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Authors lists authors in provider order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Published and Updated are UTC timestamps; zero when the provider
	// did not report them.
	Published time.Time `json:"published,omitempty" yaml:"published,omitempty"`
	Updated   time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Links holds all links reported for the entry. The download
	// pipeline derives the PDF URL from these; it is never stored.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`

	// DOI is the digital object identifier, if reported.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// arXiv extension block.
	PrimaryCategory string   `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`
	Categories      []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Comment         string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	JournalRef      string   `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`

	// Semantic Scholar extension block.
	Venue                    string     `json:"venue,omitempty" yaml:"venue,omitempty"`
	Year                     int        `json:"year,omitempty" yaml:"year,omitempty"`
	CitationCount            int        `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
	InfluentialCitationCount int        `json:"influential_citation_count,omitempty" yaml:"influential_citation_count,omitempty"`
	References               []PaperRef `json:"references,omitempty" yaml:"references,omitempty"`
	Citations                []PaperRef `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// ResultSet is the outcome of one search call: the parsed papers plus
// pagination metadata and an echo of the originating query. Constructed
// once per call and not mutated afterwards.
type ResultSet struct {
	Papers []Paper `json:"papers" yaml:"papers"`

	// OpenSearch pagination metadata; zero when the provider omitted it.
	TotalResults int `json:"total_results,omitempty" yaml:"total_results,omitempty"`
	StartIndex   int `json:"start_index,omitempty" yaml:"start_index,omitempty"`
	ItemsPerPage int `json:"items_per_page,omitempty" yaml:"items_per_page,omitempty"`

	// Query, SortBy, and SortOrder echo the request that produced this set.
	Query     string `json:"query" yaml:"query"`
	SortBy    string `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
}

// AuthorRecord is a Semantic Scholar author search or detail result.
type AuthorRecord struct {
	AuthorID      string     `json:"author_id" yaml:"author_id"`
	Name          string     `json:"name" yaml:"name"`
	PaperCount    int        `json:"paper_count,omitempty" yaml:"paper_count,omitempty"`
	CitationCount int        `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
	Papers        []PaperRef `json:"papers,omitempty" yaml:"papers,omitempty"`
}
