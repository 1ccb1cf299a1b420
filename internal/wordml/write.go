package wordml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

const wordprocessingmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// WriteTo serializes the document as a .docx package: the content-types
// part, the package relationships and word/document.xml.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
	}

	docXML, err := d.marshalDocument()
	if err != nil {
		return cw.n, fmt.Errorf("marshal document.xml: %w", err)
	}
	parts = append(parts, struct {
		name string
		data []byte
	}{"word/document.xml", docXML})

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return cw.n, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close docx package: %w", err)
	}
	return cw.n, nil
}

func (d *Document) marshalDocument() ([]byte, error) {
	doc := xmlDocument{
		NS:   wordprocessingmlNS,
		Body: xmlBody{SectPr: defaultSectPr()},
	}
	for _, p := range d.Paragraphs {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, toXMLParagraph(p))
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}

// Wire representation of word/document.xml.

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr      `xml:"w:sectPr"`
}

type xmlParagraph struct {
	Props *xmlPPr  `xml:"w:pPr"`
	Runs  []xmlRun `xml:"w:r"`
}

// Child order in pPr follows the WordprocessingML schema sequence.
type xmlPPr struct {
	KeepNext  *xmlEmpty   `xml:"w:keepNext"`
	KeepLines *xmlEmpty   `xml:"w:keepLines"`
	Spacing   *xmlSpacing `xml:"w:spacing"`
	Ind       *xmlInd     `xml:"w:ind"`
	Jc        *xmlVal     `xml:"w:jc"`
}

type xmlEmpty struct{}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlSpacing struct {
	Before   *int   `xml:"w:before,attr,omitempty"`
	After    *int   `xml:"w:after,attr,omitempty"`
	Line     *int   `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type xmlInd struct {
	Left      *int `xml:"w:left,attr,omitempty"`
	FirstLine *int `xml:"w:firstLine,attr,omitempty"`
	Hanging   *int `xml:"w:hanging,attr,omitempty"`
}

type xmlRun struct {
	Props *xmlRPr `xml:"w:rPr"`
	Text  xmlText `xml:"w:t"`
}

type xmlRPr struct {
	Fonts  *xmlRFonts `xml:"w:rFonts"`
	Bold   *xmlOnOff  `xml:"w:b"`
	Italic *xmlOnOff  `xml:"w:i"`
	Color  *xmlVal    `xml:"w:color"`
	Size   *xmlVal    `xml:"w:sz"`
	SizeCs *xmlVal    `xml:"w:szCs"`
}

type xmlRFonts struct {
	ASCII string `xml:"w:ascii,attr,omitempty"`
	HAnsi string `xml:"w:hAnsi,attr,omitempty"`
}

// xmlOnOff serializes as <w:b/> when on and <w:b w:val="0"/> when off.
type xmlOnOff struct {
	Val string `xml:"w:val,attr,omitempty"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type xmlSectPr struct {
	PgSz  xmlPgSz  `xml:"w:pgSz"`
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// defaultSectPr is an A4 page with one-inch margins.
func defaultSectPr() xmlSectPr {
	return xmlSectPr{
		PgSz:  xmlPgSz{W: 11906, H: 16838},
		PgMar: xmlPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 708, Footer: 708},
	}
}

func toXMLParagraph(p *Paragraph) xmlParagraph {
	out := xmlParagraph{Props: toXMLPPr(p.Properties)}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, xmlRun{
			Props: toXMLRPr(r.Properties),
			Text:  xmlText{Space: "preserve", Value: r.Text},
		})
	}
	return out
}

func toXMLPPr(pp *ParagraphProperties) *xmlPPr {
	if pp == nil {
		return nil
	}
	out := &xmlPPr{}
	if pp.KeepNext {
		out.KeepNext = &xmlEmpty{}
	}
	if pp.KeepLines {
		out.KeepLines = &xmlEmpty{}
	}
	if s := pp.Spacing; s != nil {
		out.Spacing = &xmlSpacing{Before: s.Before, After: s.After, Line: s.Line, LineRule: s.LineRule}
	}
	if ind := pp.Indent; ind != nil {
		xi := &xmlInd{Left: ind.Left}
		if ind.FirstLine != nil {
			if v := *ind.FirstLine; v < 0 {
				hang := -v
				xi.Hanging = &hang
			} else {
				first := v
				xi.FirstLine = &first
			}
		}
		out.Ind = xi
	}
	if pp.Justification != "" {
		out.Jc = &xmlVal{Val: pp.Justification}
	}
	return out
}

func toXMLRPr(rp *RunProperties) *xmlRPr {
	if rp == nil {
		return nil
	}
	out := &xmlRPr{}
	if rp.Font != "" {
		out.Fonts = &xmlRFonts{ASCII: rp.Font, HAnsi: rp.Font}
	}
	if rp.Bold != nil {
		out.Bold = onOff(*rp.Bold)
	}
	if rp.Italic != nil {
		out.Italic = onOff(*rp.Italic)
	}
	if rp.Color != "" {
		out.Color = &xmlVal{Val: rp.Color}
	}
	if rp.SizeHalfPoints != nil {
		sz := fmt.Sprintf("%d", *rp.SizeHalfPoints)
		out.Size = &xmlVal{Val: sz}
		out.SizeCs = &xmlVal{Val: sz}
	}
	return out
}

func onOff(on bool) *xmlOnOff {
	if on {
		return &xmlOnOff{}
	}
	return &xmlOnOff{Val: "0"}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
