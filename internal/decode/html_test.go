package decode

import (
	"strings"
	"testing"
)

func TestHTMLDecoder_Basic(t *testing.T) {
	src := `<html><head><title>ignored</title><style>p{}</style></head><body>
<h1>Title</h1>
<p>Intro text.</p>
<h2>Section</h2>
<ul><li>first</li><li>second</li></ul>
<script>var x = 1;</script>
</body></html>`

	d := &HTMLDecoder{}
	lines, err := d.Lines(strings.NewReader(src), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"# Title",
		"Intro text.",
		"## Section",
		"- first",
		"- second",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestHTMLDecoder_DeepHeadingsDemoted(t *testing.T) {
	d := &HTMLDecoder{}
	lines, err := d.Lines(strings.NewReader("<body><h5>deep</h5></body>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "#### deep" {
		t.Errorf("expected h5 demoted to level 4, got %q", lines)
	}
}

func TestHTMLDecoder_CollapsesWhitespace(t *testing.T) {
	d := &HTMLDecoder{}
	lines, err := d.Lines(strings.NewReader("<body><p>two\n   words</p></body>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "two words" {
		t.Errorf("expected collapsed whitespace, got %q", lines)
	}
}
