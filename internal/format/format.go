// Package format drives the classifier and styler over a full line sequence,
// producing the styled output document and the per-style usage report.
package format

import (
	"github.com/dgallion1/docstyler/internal/classify"
	"github.com/dgallion1/docstyler/internal/styler"
	"github.com/dgallion1/docstyler/internal/styles"
	"github.com/dgallion1/docstyler/internal/wordml"
)

// Usage counts how many output paragraphs used each style, for one request.
// Counts sum to the number of input lines.
type Usage map[string]int

// Build converts the ordered raw lines into a styled document using the
// active rule table. One paragraph is appended per line, in input order; an
// absent rule-table entry styles nothing. Zero lines produce a document with
// zero paragraphs and an empty report.
func Build(lines []string, table styles.RuleTable) (*wordml.Document, Usage) {
	doc := wordml.New()
	usage := Usage{}
	for _, line := range lines {
		cl := classify.Classify(line, table)
		p := doc.AddParagraph(cl.Text)
		styler.Apply(table.Get(cl.Style), p)
		usage[cl.Style]++
	}
	return doc, usage
}
