// Package styler applies one style-attribute record to one output paragraph.
// Each attribute is applied independently and only when present; the styler
// is stateless and never rejects a record.
package styler

import (
	"math"

	"github.com/dgallion1/docstyler/internal/styles"
	"github.com/dgallion1/docstyler/internal/wordml"
)

// alignments maps the schema's alignment enum onto w:jc values. Unrecognized
// alignment strings are ignored, leaving the document default.
var alignments = map[string]string{
	"Left":    "left",
	"Center":  "center",
	"Right":   "right",
	"Justify": "both",
}

// Unit conversions used by WordprocessingML: twentieths of a point for
// vertical spacing, twips for indentation, half-points for font size, and
// 240 units per single line for the auto line rule.
const (
	twipsPerCm      = 567
	lineUnitsPerOne = 240
)

// Apply sets p's paragraph- and run-level formatting from attrs. Run
// attributes are applied to every run; a paragraph with no runs gets one
// empty run first so they always attach somewhere.
func Apply(attrs styles.Attributes, p *wordml.Paragraph) {
	applyParagraph(attrs, p)
	applyRuns(attrs, p)
}

func applyParagraph(attrs styles.Attributes, p *wordml.Paragraph) {
	if attrs.Alignment != nil {
		if jc, ok := alignments[*attrs.Alignment]; ok {
			p.Props().Justification = jc
		}
	}
	if attrs.LineSpacing != nil {
		sp := p.Props().EnsureSpacing()
		sp.Line = round(*attrs.LineSpacing * lineUnitsPerOne)
		sp.LineRule = "auto"
	}
	if attrs.SpacingBeforePt != nil {
		p.Props().EnsureSpacing().Before = round(*attrs.SpacingBeforePt * 20)
	}
	if attrs.SpacingAfterPt != nil {
		p.Props().EnsureSpacing().After = round(*attrs.SpacingAfterPt * 20)
	}
	if attrs.IndentLeftCm != nil {
		p.Props().EnsureIndent().Left = round(*attrs.IndentLeftCm * twipsPerCm)
	}
	if attrs.IndentHangingCm != nil {
		// A hanging indent is the negation of the supplied first-line value.
		p.Props().EnsureIndent().FirstLine = round(-*attrs.IndentHangingCm * twipsPerCm)
	}
	// Keep flags are only ever set, never explicitly cleared.
	if attrs.KeepWithNext != nil && *attrs.KeepWithNext {
		p.Props().KeepNext = true
	}
	if attrs.KeepLinesTogether != nil && *attrs.KeepLinesTogether {
		p.Props().KeepLines = true
	}
}

func applyRuns(attrs styles.Attributes, p *wordml.Paragraph) {
	if len(p.Runs) == 0 {
		p.AddRun("")
	}
	for _, r := range p.Runs {
		if attrs.FontName != nil {
			r.Props().Font = *attrs.FontName
		}
		if attrs.FontSizePt != nil {
			r.Props().SizeHalfPoints = round(*attrs.FontSizePt * 2)
		}
		if attrs.Bold != nil {
			b := *attrs.Bold
			r.Props().Bold = &b
		}
		if attrs.Italic != nil {
			i := *attrs.Italic
			r.Props().Italic = &i
		}
		if attrs.Color != nil {
			r.Props().Color = styles.ResolveColor(*attrs.Color).Hex()
		}
	}
}

func round(f float64) *int {
	n := int(math.Round(f))
	return &n
}
