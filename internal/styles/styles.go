// Package styles defines the style rule schema: named bundles of paragraph-
// and run-level formatting attributes, the rule table that maps style names
// to them, and the color resolver.
package styles

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Attributes is one named style's formatting record. Every field is optional;
// a nil field means "leave the paragraph/run attribute at the document
// default". A record with no recognized fields is legal and styles nothing.
//
// Unknown keys in caller-supplied JSON or YAML are ignored, so the schema is
// forward-compatible.
type Attributes struct {
	FontName    *string  `json:"font_name,omitempty" yaml:"font_name"`
	FontSizePt  *float64 `json:"font_size_pt,omitempty" yaml:"font_size_pt"`
	Bold        *bool    `json:"bold,omitempty" yaml:"bold"`
	Italic      *bool    `json:"italic,omitempty" yaml:"italic"`
	Color       *string  `json:"color,omitempty" yaml:"color"`
	Alignment   *string  `json:"alignment,omitempty" yaml:"alignment"`
	LineSpacing *float64 `json:"line_spacing,omitempty" yaml:"line_spacing"`

	SpacingBeforePt *float64 `json:"spacing_before_pt,omitempty" yaml:"spacing_before_pt"`
	SpacingAfterPt  *float64 `json:"spacing_after_pt,omitempty" yaml:"spacing_after_pt"`
	IndentLeftCm    *float64 `json:"indent_left_cm,omitempty" yaml:"indent_left_cm"`
	IndentHangingCm *float64 `json:"indent_hanging_cm,omitempty" yaml:"indent_hanging_cm"`

	KeepWithNext      *bool `json:"keep_with_next,omitempty" yaml:"keep_with_next"`
	KeepLinesTogether *bool `json:"keep_lines_together,omitempty" yaml:"keep_lines_together"`

	// Descriptive metadata. Passed through for renderers that understand it;
	// the styler does not interpret these.
	BasedOn               *string  `json:"based_on,omitempty" yaml:"based_on"`
	FollowingStyle        *string  `json:"following_style,omitempty" yaml:"following_style"`
	NumberingLevel        *int     `json:"numbering_level,omitempty" yaml:"numbering_level"`
	NumberingPattern      *string  `json:"numbering_pattern,omitempty" yaml:"numbering_pattern"`
	BulletLevel           *int     `json:"bullet_level,omitempty" yaml:"bullet_level"`
	BulletAlignmentCm     *float64 `json:"bullet_alignment_cm,omitempty" yaml:"bullet_alignment_cm"`
	SpacingSameParagraphs *bool    `json:"spacing_same_paragraphs,omitempty" yaml:"spacing_same_paragraphs"`
	WidowOrphanControl    *bool    `json:"widow_orphan_control,omitempty" yaml:"widow_orphan_control"`
}

// RuleTable maps style names to their attribute records. A table is built
// once per formatting request and must be treated as read-only afterwards;
// concurrent requests each construct their own.
type RuleTable map[string]Attributes

// Get returns the attributes for name. A missing entry yields an empty
// record, which styles nothing; lookups never fail.
func (t RuleTable) Get(name string) Attributes {
	return t[name]
}

// Has reports whether name is present in the table.
func (t RuleTable) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// ParseJSON builds a rule table from a caller-supplied JSON style map.
// Structural errors are the caller boundary's to reject; unknown attribute
// keys inside a style are silently ignored.
func ParseJSON(data []byte) (RuleTable, error) {
	var t RuleTable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse style map: %w", err)
	}
	return t, nil
}

// LoadFile reads an operator-supplied YAML style map, replacing the built-in
// default table for the process.
func LoadFile(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style map: %w", err)
	}
	var t RuleTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse style map %s: %w", path, err)
	}
	return t, nil
}

func strp(s string) *string   { return &s }
func numb(f float64) *float64 { return &f }
func boolp(b bool) *bool      { return &b }
func intp(n int) *int         { return &n }
