// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"testing"

	"github.com/pdiddy/paper-hub/pkg/types"
)

func testPaper(id, title, abstract string) *types.Paper {
	return &types.Paper{
		ID:      id,
		Title:   title,
		Summary: abstract,
		Authors: []types.Author{{Name: "Jane Doe"}, {Name: "John Smith"}},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.LibraryConfig{LibraryDir: t.TempDir(), MaxResults: 10})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	papers := []*types.Paper{
		testPaper("id-1", "First Paper", "About transformers."),
		testPaper("id-2", "Second Paper", "About graph networks."),
	}
	for _, p := range papers {
		if err := s.Record(ctx, p, "arxiv", "/hub/CS_AI/"+p.ID+".pdf", "CS_AI"); err != nil {
			t.Fatalf("Record(%s) error = %v", p.ID, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	e := entries[0]
	if e.Source != "arxiv" || e.Category != "CS_AI" {
		t.Errorf("entry = %+v", e)
	}
	if len(e.Authors) != 2 || e.Authors[0] != "Jane Doe" {
		t.Errorf("Authors = %v", e.Authors)
	}
	if e.DownloadedAt.IsZero() {
		t.Error("DownloadedAt not recorded")
	}
}

func TestRecordUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testPaper("id-1", "Original Title", "Abstract.")
	if err := s.Record(ctx, p, "arxiv", "/hub/a.pdf", "CS_AI"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	p.Title = "Updated Title"
	if err := s.Record(ctx, p, "arxiv", "/hub/b.pdf", "CS_AI"); err != nil {
		t.Fatalf("second Record() error = %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 after upsert", len(entries))
	}
	if entries[0].Title != "Updated Title" || entries[0].PDFPath != "/hub/b.pdf" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestSearchFullText(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seed := []struct{ id, title, abstract string }{
		{"id-1", "Attention Is All You Need", "Sequence transduction with self-attention."},
		{"id-2", "Graph Neural Networks", "Message passing over graph structures."},
		{"id-3", "Diffusion Models", "Denoising diffusion probabilistic models."},
	}
	for _, sd := range seed {
		if err := s.Record(ctx, testPaper(sd.id, sd.title, sd.abstract), "arxiv", "/hub/"+sd.id+".pdf", "CS_LG"); err != nil {
			t.Fatalf("Record(%s) error = %v", sd.id, err)
		}
	}

	entries, err := s.Search(ctx, "attention")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "id-1" {
		t.Fatalf("Search(attention) = %+v, want id-1", entries)
	}

	// Abstract text is matched too.
	entries, err = s.Search(ctx, "diffusion")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "id-3" {
		t.Errorf("Search(diffusion) = %+v, want id-3", entries)
	}

	// Updates stay in sync with the index.
	if err := s.Record(ctx, testPaper("id-2", "Renamed Entirely", "Now about attention as well."), "arxiv", "/hub/id-2.pdf", "CS_LG"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	entries, err = s.Search(ctx, "attention")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Search(attention) after update = %d entries, want 2", len(entries))
	}
}

func TestMaxResultsLimit(t *testing.T) {
	s, err := Open(types.LibraryConfig{LibraryDir: t.TempDir(), MaxResults: 2})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := s.Record(ctx, testPaper(id, "Paper "+id, ""), "arxiv", "/hub/"+id+".pdf", "CS_AI"); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2 (capped)", len(entries))
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/library"
	s, err := Open(types.LibraryConfig{LibraryDir: dir})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.Close()

	// Reopening against the existing schema must succeed.
	s, err = Open(types.LibraryConfig{LibraryDir: dir})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	s.Close()
}
