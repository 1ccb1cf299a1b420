package decode

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownDecoder handles Markdown drafts using goldmark. Headings come back
// as hash-marker lines and list items as bullet lines so the classifier can
// restyle them; heading levels beyond 4 are demoted to level 4.
type MarkdownDecoder struct{}

func (d *MarkdownDecoder) Lines(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		lines = append(lines, blockLines(n, src)...)
	}
	return lines, nil
}

func blockLines(n ast.Node, src []byte) []string {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level
		if level > 4 {
			level = 4
		}
		return []string{strings.Repeat("#", level) + " " + inlineText(node, src)}
	case *ast.List:
		var lines []string
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			for block := item.FirstChild(); block != nil; block = block.NextSibling() {
				if nested, ok := block.(*ast.List); ok {
					lines = append(lines, blockLines(nested, src)...)
					continue
				}
				lines = append(lines, "- "+inlineText(block, src))
			}
		}
		return lines
	default:
		t := blockText(n, src)
		if t == "" {
			return nil
		}
		return strings.Split(t, "\n")
	}
}

// blockText gets the raw text content of a goldmark block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		return inlineText(n, src)
	}
	return strings.TrimSpace(buf.String())
}

// inlineText collects the text of a node's inline children.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
