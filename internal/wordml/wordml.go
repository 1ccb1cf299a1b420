// Package wordml is the output document model: ordered paragraphs of text
// runs with optional paragraph- and run-level formatting, serialized as a
// WordprocessingML (.docx) package.
package wordml

import "strings"

// Document is an ordered sequence of styled paragraphs.
type Document struct {
	Paragraphs []*Paragraph
}

func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph holding text. Empty text produces a
// paragraph with no runs; the styler creates an empty run on demand so run
// attributes always have somewhere to attach.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.AddRun(text)
	}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// Paragraph holds formatting properties and text runs.
type Paragraph struct {
	Properties *ParagraphProperties
	Runs       []*Run
}

// Props returns the paragraph's properties, allocating them on first use.
func (p *Paragraph) Props() *ParagraphProperties {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	return p.Properties
}

// AddRun appends a text run to the paragraph.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// ParagraphProperties are the paragraph-level attributes the styler sets.
// Zero values mean "document default" and are not serialized.
type ParagraphProperties struct {
	KeepNext      bool     // Keep on the same page as the next paragraph.
	KeepLines     bool     // Keep all lines of the paragraph together.
	Spacing       *Spacing
	Indent        *Indent
	Justification string // left, center, right or both; empty means default.
}

// EnsureSpacing returns the spacing record, allocating it on first use.
func (pp *ParagraphProperties) EnsureSpacing() *Spacing {
	if pp.Spacing == nil {
		pp.Spacing = &Spacing{}
	}
	return pp.Spacing
}

// EnsureIndent returns the indent record, allocating it on first use.
func (pp *ParagraphProperties) EnsureIndent() *Indent {
	if pp.Indent == nil {
		pp.Indent = &Indent{}
	}
	return pp.Indent
}

// Spacing is vertical paragraph spacing in twentieths of a point; Line is a
// 240-per-single-line value with LineRule "auto" for multipliers.
type Spacing struct {
	Before   *int
	After    *int
	Line     *int
	LineRule string
}

// Indent is horizontal paragraph indentation in twips. A negative FirstLine
// is a hanging indent and serializes as w:hanging.
type Indent struct {
	Left      *int
	FirstLine *int
}

// Run is a single text run with optional character formatting.
type Run struct {
	Properties *RunProperties
	Text       string
}

// Props returns the run's properties, allocating them on first use.
func (r *Run) Props() *RunProperties {
	if r.Properties == nil {
		r.Properties = &RunProperties{}
	}
	return r.Properties
}

// RunProperties are the character-level attributes the styler sets. Nil or
// empty fields are not serialized.
type RunProperties struct {
	Font           string
	SizeHalfPoints *int
	Bold           *bool
	Italic         *bool
	Color          string // RRGGBB hex.
}
