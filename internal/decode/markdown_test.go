package decode

import (
	"strings"
	"testing"
)

func TestMarkdownDecoder_HeadingsAndLists(t *testing.T) {
	src := `# Title

Intro paragraph.

## Section

- first
- second

1. numbered
`
	d := &MarkdownDecoder{}
	lines, err := d.Lines(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"# Title",
		"Intro paragraph.",
		"## Section",
		"- first",
		"- second",
		"- numbered",
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

func TestMarkdownDecoder_DeepHeadingDemoted(t *testing.T) {
	d := &MarkdownDecoder{}
	lines, err := d.Lines(strings.NewReader("###### tiny\n"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "#### tiny" {
		t.Errorf("expected level-6 heading demoted to 4, got %q", lines)
	}
}

func TestMarkdownDecoder_Empty(t *testing.T) {
	d := &MarkdownDecoder{}
	lines, err := d.Lines(strings.NewReader(""), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %q", lines)
	}
}
