// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download resolves PDF URLs and streams papers to disk. It is
// a shared free-function library used by both provider clients; there
// is no per-provider subclassing, only the normalized Paper record.
package download

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-hub/pkg/types"
)

// arxivNumericPattern matches the modern numeric arXiv id form
// (e.g. "2101.00001") anywhere in a URL.
var arxivNumericPattern = regexp.MustCompile(`\d{4}\.\d{4,5}`)

// absTailPattern captures the identifier tail of an abstract-page URL.
var absTailPattern = regexp.MustCompile(`/abs/(.+)$`)

// ResolvePDFURL computes the download URL for a paper. The URL is
// derived, never stored, because feeds represent the PDF link
// inconsistently: an explicit typed link, a relation-only link, or no
// link at all. Resolution is tiered:
//
//  1. a link typed "application/pdf", with a ".pdf" suffix appended
//     when the href lacks one but its path shape looks like an arXiv id
//  2. a link with rel "related", under the same suffix rule
//  3. a URL synthesized from an "/abs/<tail>" id as
//     https://arxiv.org/pdf/<tail>.pdf
//
// Candidates whose scheme is not http or https are rejected and
// scanning continues. The empty string means no URL could be resolved.
func ResolvePDFURL(p *types.Paper) string {
	for _, l := range p.Links {
		if l.Type == "application/pdf" {
			if u := acceptCandidate(l.Href); u != "" {
				return u
			}
		}
	}

	for _, l := range p.Links {
		if strings.EqualFold(l.Rel, "related") {
			if u := acceptCandidate(l.Href); u != "" {
				return u
			}
		}
	}

	if m := absTailPattern.FindStringSubmatch(p.ID); m != nil {
		return "https://arxiv.org/pdf/" + m[1] + ".pdf"
	}
	return ""
}

// acceptCandidate validates the scheme and applies the suffix rule,
// returning the empty string for rejected candidates.
func acceptCandidate(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(href), ".pdf") {
		return href
	}
	if looksLikeArxivPath(href) {
		return href + ".pdf"
	}
	return href
}

// looksLikeArxivPath reports whether the href's path shape looks like
// an arXiv identifier: a /pdf/ segment, a final segment starting with a
// 4-digit year prefix, the literal "arXiv" prefix, a version marker, or
// the numeric id pattern anywhere in the URL.
func looksLikeArxivPath(href string) bool {
	if strings.Contains(href, "/pdf/") {
		return true
	}
	last := href
	if idx := strings.LastIndex(strings.TrimRight(href, "/"), "/"); idx >= 0 {
		last = strings.TrimRight(href, "/")[idx+1:]
	}
	if len(last) >= 4 && isDigits(last[:4]) {
		return true
	}
	if strings.HasPrefix(last, "arXiv") || strings.HasPrefix(last, "v") {
		return true
	}
	return arxivNumericPattern.MatchString(href)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// IDSuffix extracts the provider-native identifier tail used in
// download filenames: the "/abs/<tail>" portion of an arXiv id, the
// final path segment of any other slash-separated id, or the id itself.
func IDSuffix(id string) string {
	if m := absTailPattern.FindStringSubmatch(id); m != nil {
		return m[1]
	}
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}
