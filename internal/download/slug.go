// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugMaxLen caps slug length so filenames stay manageable.
const slugMaxLen = 80

// asciiFold decomposes characters (NFKD) and drops combining marks, so
// "Schrödinger" folds to "Schrodinger" before the ASCII strip.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts a title into a filesystem-safe stem: Unicode
// fold to ASCII, lowercase, non-alphanumeric runs collapsed to single
// underscores, trimmed, capped at slugMaxLen. Slugify is idempotent;
// input with no alphanumeric content yields the empty string.
func Slugify(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	slug := b.String()
	if len(slug) > slugMaxLen {
		slug = strings.TrimRight(slug[:slugMaxLen], "_")
	}
	return slug
}
