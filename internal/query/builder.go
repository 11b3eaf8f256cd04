// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query assembles arXiv search_query strings from field
// predicates, boolean connectives, grouping, and date-range clauses.
package query

import (
	"fmt"
	"strings"
	"time"
)

// Sort fields accepted by the arXiv API.
const (
	SortRelevance     = "relevance"
	SortLastUpdated   = "lastUpdatedDate"
	SortSubmittedDate = "submittedDate"

	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// Query is the search argument accepted by the arXiv client: either a
// Raw provider string passed through verbatim, or a *Builder whose
// tokens are assembled at Build time. The client resolves the union
// with a type switch.
type Query interface {
	query()
}

// Raw is a provider query string used as-is.
type Raw string

func (Raw) query()      {}
func (*Builder) query() {}

// Builder assembles a search_query token by token. Methods return the
// receiver for chaining. Errors from DateRange parsing and the
// today/date-range conflict are deferred to Build; malformed boolean
// sequences are passed through verbatim to the provider.
type Builder struct {
	parts     []string
	sortBy    string
	sortOrder string

	todayUsed     bool
	dateRangeUsed bool
	err           error
}

// quote wraps a predicate value in double quotes, escaping interior
// quote characters. No further tokenization is attempted.
func quote(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `\"`) + `"`
}

// Title appends a ti: predicate.
func (b *Builder) Title(text string) *Builder {
	b.parts = append(b.parts, "ti:"+quote(text))
	return b
}

// Author appends an au: predicate.
func (b *Builder) Author(name string) *Builder {
	b.parts = append(b.parts, "au:"+quote(name))
	return b
}

// Abstract appends an abs: predicate.
func (b *Builder) Abstract(text string) *Builder {
	b.parts = append(b.parts, "abs:"+quote(text))
	return b
}

// Comment appends a co: predicate.
func (b *Builder) Comment(text string) *Builder {
	b.parts = append(b.parts, "co:"+quote(text))
	return b
}

// JournalRef appends a jr: predicate.
func (b *Builder) JournalRef(text string) *Builder {
	b.parts = append(b.parts, "jr:"+quote(text))
	return b
}

// Category appends a cat: predicate.
func (b *Builder) Category(cat string) *Builder {
	b.parts = append(b.parts, "cat:"+quote(cat))
	return b
}

// ReportNumber appends an rn: predicate.
func (b *Builder) ReportNumber(rn string) *Builder {
	b.parts = append(b.parts, "rn:"+quote(rn))
	return b
}

// And appends the AND connective.
func (b *Builder) And() *Builder {
	b.parts = append(b.parts, "AND")
	return b
}

// Or appends the OR connective.
func (b *Builder) Or() *Builder {
	b.parts = append(b.parts, "OR")
	return b
}

// AndNot appends the ANDNOT connective.
func (b *Builder) AndNot() *Builder {
	b.parts = append(b.parts, "ANDNOT")
	return b
}

// Group appends a nested builder as a parenthesized subgroup. The
// nested builder's deferred errors and date-clause flags propagate to
// the receiver.
func (b *Builder) Group(sub *Builder) *Builder {
	inner, err := sub.Build()
	if err != nil && b.err == nil {
		b.err = err
	}
	b.todayUsed = b.todayUsed || sub.todayUsed
	b.dateRangeUsed = b.dateRangeUsed || sub.dateRangeUsed
	b.parts = append(b.parts, "("+inner+")")
	return b
}

// GroupRaw appends a raw string as a parenthesized subgroup.
func (b *Builder) GroupRaw(raw string) *Builder {
	b.parts = append(b.parts, "("+raw+")")
	return b
}

// SortBy records the sort field and order sent alongside the query.
func (b *Builder) SortBy(field, order string) *Builder {
	b.sortBy = field
	b.sortOrder = order
	return b
}

// Sort returns the recorded sort field and order; both are empty when
// SortBy was never called.
func (b *Builder) Sort() (field, order string) {
	return b.sortBy, b.sortOrder
}

// rangeToken formats both endpoints as the compact 12-digit form the
// arXiv API expects inside a submittedDate range clause.
func rangeToken(start, end time.Time) string {
	const compact = "200601021504"
	return fmt.Sprintf("submittedDate:[%s TO %s]", start.Format(compact), end.Format(compact))
}

// DateRange appends a submittedDate range clause. Both endpoints are
// parsed permissively (see ParseDate), normalized to UTC, and checked
// for ordering. When endInclusive is set and the end was given as a
// bare year or year-month, the endpoint expands to the last minute of
// that period so inclusive semantics hold for coarse input.
func (b *Builder) DateRange(start, end string, endInclusive bool) *Builder {
	s, err := ParseDate(start)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	e, err := ParseDate(end)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}

	if endInclusive {
		e = expandCoarseEnd(end, e)
	}

	if s.After(e) {
		if b.err == nil {
			b.err = fmt.Errorf("date range: start %q is after end %q", start, end)
		}
		return b
	}

	b.parts = append(b.parts, rangeToken(s, e))
	b.dateRangeUsed = true
	return b
}

// Today appends a submittedDate clause spanning the current UTC day.
func (b *Builder) Today() *Builder {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	b.parts = append(b.parts, rangeToken(start, end))
	b.todayUsed = true
	return b
}

// Build joins all tokens with single spaces. It fails if both Today and
// DateRange were requested, or if any deferred parse or ordering error
// is pending. No operator-precedence validation is performed.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.todayUsed && b.dateRangeUsed {
		return "", fmt.Errorf("cannot combine Today with an explicit date range in one query")
	}
	return strings.Join(b.parts, " "), nil
}
