// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package categories holds a curated table of common arXiv category
// codes. The table is intentionally compact; extend as needed.
package categories

import "strings"

// Commonly used arXiv category codes.
const (
	CSAI    = "cs.AI"
	CSLG    = "cs.LG"
	CSCV    = "cs.CV"
	CSCL    = "cs.CL"
	CSNE    = "cs.NE"
	CSCR    = "cs.CR"
	MathPR  = "math.PR"
	MathNA  = "math.NA"
	StatML  = "stat.ML"
	HepTH   = "hep-th"
	HepPH   = "hep-ph"
	AstroPH = "astro-ph"
	NuclTH  = "nucl-th"
	QBio    = "q-bio"
	QFin    = "q-fin"
	CondMat = "cond-mat"
	EESS    = "eess"
)

// descriptions maps category codes to human-readable names.
var descriptions = map[string]string{
	CSAI:    "Artificial Intelligence",
	CSLG:    "Machine Learning",
	CSCV:    "Computer Vision and Pattern Recognition",
	CSCL:    "Computation and Language",
	CSNE:    "Neural and Evolutionary Computing",
	CSCR:    "Cryptography and Security",
	MathPR:  "Probability",
	MathNA:  "Numerical Analysis",
	StatML:  "Machine Learning (Statistics)",
	HepTH:   "High Energy Physics - Theory",
	HepPH:   "High Energy Physics - Phenomenology",
	AstroPH: "Astrophysics",
	NuclTH:  "Nuclear Theory",
	QBio:    "Quantitative Biology",
	QFin:    "Quantitative Finance",
	CondMat: "Condensed Matter",
	EESS:    "Electrical Engineering and Systems Science",
}

// Describe returns the human-readable name for a category code, or the
// empty string for codes outside the curated table.
func Describe(code string) string {
	return descriptions[code]
}

// Known reports whether the code is in the curated table.
func Known(code string) bool {
	_, ok := descriptions[code]
	return ok
}

// All returns the curated category codes in no particular order.
func All() []string {
	codes := make([]string, 0, len(descriptions))
	for code := range descriptions {
		codes = append(codes, code)
	}
	return codes
}

// DirName converts a category code or venue name into a filesystem
// directory name: uppercase, with runs of non-alphanumerics collapsed
// to single underscores ("cs.LG" becomes "CS_LG"). Empty or
// unrepresentable input yields "UNKNOWN".
func DirName(category string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToUpper(strings.TrimSpace(category)) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "UNKNOWN"
	}
	return b.String()
}
