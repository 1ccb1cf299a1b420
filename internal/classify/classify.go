// Package classify decides which style a raw input line should receive.
//
// Classification is an ordered, first-match-wins rule list: headings by
// marker, then numbered-list items, then bullets, then the plain-body
// default. The ordering is load-bearing; "# one" must become a heading, not
// a body line, and "1. item" must be checked before bullets so "1. - note"
// is a numbered item. Every line classifies to exactly one style;
// classification never fails.
package classify

import (
	"regexp"
	"strings"

	"github.com/dgallion1/docstyler/internal/styles"
)

// Line is a classified input line. It is produced per line and consumed
// immediately by the styler; nothing retains it.
type Line struct {
	Raw   string // Original line as supplied.
	Style string // Resolved style name.
	Text  string // Cleaned text with any marker prefix removed.
}

// rule is one classification step: match reports whether the line matches
// and returns the cleaned text; style resolves the style name against the
// active rule table.
type rule struct {
	match func(text string) (string, bool)
	style func(table styles.RuleTable) string
}

// bulletCandidates is the ordered fallback chain for bullet styling: the
// first name present in the active table wins, and the final candidate is
// used even when absent so partial tables still produce usable bullets.
var bulletCandidates = []string{"Normal Bullet", "List Paragraph Bullet Points"}

var numberedPattern = regexp.MustCompile(`^(\d+[.)]\s|[A-Za-z][.)]\s)`)

var rules = buildRules()

func buildRules() []rule {
	var rs []rule

	// Headings, level 1 through 4, each accepting a literal tag prefix and
	// a hash-marker prefix. The first matching (level, prefix) pair wins.
	headings := []struct {
		style    string
		prefixes []string
	}{
		{"Heading 1", []string{"H1:", "# "}},
		{"Heading 2", []string{"H2:", "## "}},
		{"Heading 3", []string{"H3:", "### "}},
		{"Heading 4", []string{"H4:", "#### "}},
	}
	for _, h := range headings {
		prefixes := h.prefixes
		name := h.style
		rs = append(rs, rule{
			match: func(text string) (string, bool) {
				for _, p := range prefixes {
					if strings.HasPrefix(text, p) {
						return strings.TrimSpace(text[len(p):]), true
					}
				}
				return "", false
			},
			style: func(styles.RuleTable) string { return name },
		})
	}

	// Numbered-list items: "1. ", "12) ", "a. ", "B) ". The numbering token
	// is stripped and not replaced; numbered items intentionally collapse
	// into Normal (callers pre-format their own numbering).
	rs = append(rs, rule{
		match: func(text string) (string, bool) {
			if !numberedPattern.MatchString(text) {
				return "", false
			}
			return strings.TrimSpace(numberedPattern.ReplaceAllString(text, "")), true
		},
		style: func(styles.RuleTable) string { return "Normal" },
	})

	// Bullets: the marker and its trailing space are removed.
	bulletMarkers := []string{"- ", "* ", "• "}
	rs = append(rs, rule{
		match: func(text string) (string, bool) {
			for _, m := range bulletMarkers {
				if strings.HasPrefix(text, m) {
					return strings.TrimSpace(text[len(m):]), true
				}
			}
			return "", false
		},
		style: func(table styles.RuleTable) string {
			for _, name := range bulletCandidates {
				if table.Has(name) {
					return name
				}
			}
			return bulletCandidates[len(bulletCandidates)-1]
		},
	})

	return rs
}

// Normalize strips trailing newline and carriage-return characters, then a
// single leading byte-order mark. Idempotent for any line carrying at most
// one BOM.
func Normalize(raw string) string {
	text := strings.TrimRight(raw, "\r\n")
	return strings.TrimPrefix(text, "\ufeff")
}

// Classify maps one raw line to its style name and cleaned text using the
// active rule table. The worst case is the default branch: style "Normal"
// with the normalized text unchanged, including empty text for blank lines.
func Classify(raw string, table styles.RuleTable) Line {
	text := Normalize(raw)
	for _, r := range rules {
		if clean, ok := r.match(text); ok {
			return Line{Raw: raw, Style: r.style(table), Text: clean}
		}
	}
	return Line{Raw: raw, Style: "Normal", Text: text}
}
