package format

import (
	"testing"

	"github.com/dgallion1/docstyler/internal/styles"
)

func TestBuild_EndToEnd(t *testing.T) {
	lines := []string{"# Title", "Intro text.", "- point one", "1. first item"}
	doc, usage := Build(lines, styles.Default())

	if len(doc.Paragraphs) != 4 {
		t.Fatalf("expected 4 paragraphs, got %d", len(doc.Paragraphs))
	}

	wantTexts := []string{"Title", "Intro text.", "point one", "first item"}
	for i, want := range wantTexts {
		if got := doc.Paragraphs[i].Text(); got != want {
			t.Errorf("paragraph %d: expected %q, got %q", i, want, got)
		}
	}

	wantUsage := Usage{"Heading 1": 1, "Normal": 2, "Normal Bullet": 1}
	if len(usage) != len(wantUsage) {
		t.Fatalf("expected usage %v, got %v", wantUsage, usage)
	}
	for style, n := range wantUsage {
		if usage[style] != n {
			t.Errorf("usage[%q]: expected %d, got %d", style, n, usage[style])
		}
	}

	// The heading should carry its styled attributes through to the runs.
	h := doc.Paragraphs[0]
	if h.Properties == nil || !h.Properties.KeepNext {
		t.Error("expected heading to keep with next")
	}
	run := h.Runs[0]
	if run.Properties == nil || run.Properties.Font != "Century Gothic" {
		t.Errorf("expected heading run font Century Gothic, got %+v", run.Properties)
	}
	if run.Properties.Color != "0052A3" {
		t.Errorf("expected heading color 0052A3, got %q", run.Properties.Color)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	doc, usage := Build(nil, styles.Default())
	if len(doc.Paragraphs) != 0 {
		t.Errorf("expected zero paragraphs, got %d", len(doc.Paragraphs))
	}
	if len(usage) != 0 {
		t.Errorf("expected empty usage, got %v", usage)
	}
}

func TestBuild_CountersSumToLineCount(t *testing.T) {
	lines := []string{
		"H1: One", "body", "", "- b", "* c", "2) d", "#### deep", "more body",
	}
	_, usage := Build(lines, styles.Default())
	total := 0
	for _, n := range usage {
		total += n
	}
	if total != len(lines) {
		t.Errorf("expected counters to sum to %d, got %d (%v)", len(lines), total, usage)
	}
}

func TestBuild_OrderPreserved(t *testing.T) {
	lines := []string{"c", "a", "b"}
	doc, _ := Build(lines, styles.Default())
	for i, want := range lines {
		if got := doc.Paragraphs[i].Text(); got != want {
			t.Errorf("paragraph %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestBuild_MissingRuleEntryStylesNothing(t *testing.T) {
	// A table without the resolved style still classifies and counts.
	table := styles.RuleTable{}
	doc, usage := Build([]string{"# Title", "body"}, table)
	if usage["Heading 1"] != 1 || usage["Normal"] != 1 {
		t.Errorf("unexpected usage: %v", usage)
	}
	if doc.Paragraphs[0].Properties != nil {
		t.Errorf("expected unstyled heading paragraph, got %+v", doc.Paragraphs[0].Properties)
	}
}

func TestBuild_BlankLinesBecomeEmptyParagraphs(t *testing.T) {
	doc, usage := Build([]string{"", ""}, styles.Default())
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if usage["Normal"] != 2 {
		t.Errorf("expected 2 Normal lines, got %v", usage)
	}
	// The styler attaches run attributes to a created empty run.
	if len(doc.Paragraphs[0].Runs) != 1 {
		t.Errorf("expected one styled empty run, got %d", len(doc.Paragraphs[0].Runs))
	}
}
