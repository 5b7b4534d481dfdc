// Package report renders categorized field-presence statistics, either as the
// fixed-layout text report or as YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmorrow/flexfield/pkg/presence"
)

// Section banners. The percentage ranges are the presence package's tier
// cutoffs spelled out for the reader.
const (
	alwaysTitle    = "ALWAYS PRESENT (>=99.9% non-empty) - Can be non-optional"
	sometimesTitle = "SOMETIMES PRESENT (50-99%) - Conditional or truly optional"
	rarelyTitle    = "RARELY PRESENT (<50%) - Truly optional"
)

// Field is one attribute's reported statistics.
type Field struct {
	Name        string   `yaml:"field"`
	Present     int      `yaml:"present"`
	PresentPct  float64  `yaml:"present_pct"`
	NonEmpty    int      `yaml:"non_empty"`
	NonEmptyPct float64  `yaml:"non_empty_pct"`
	Samples     []string `yaml:"samples,omitempty"`
}

// Element is the full analysis result for one element type.
type Element struct {
	Type      string  `yaml:"element"`
	Total     int     `yaml:"total"`
	Always    []Field `yaml:"always,omitempty"`
	Sometimes []Field `yaml:"sometimes,omitempty"`
	Rarely    []Field `yaml:"rarely,omitempty"`
}

// Build converts one element type's categorized stats into the report shape.
// Samples are capped at presence.SampleReport here; the text renderer shows at
// most two of those.
func Build(elemType string, total int, always, sometimes, rarely []presence.Field) Element {
	return Element{
		Type:      elemType,
		Total:     total,
		Always:    buildFields(always),
		Sometimes: buildFields(sometimes),
		Rarely:    buildFields(rarely),
	}
}

func buildFields(fields []presence.Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		samples := f.Stats.Samples
		if len(samples) > presence.SampleReport {
			samples = samples[:presence.SampleReport]
		}
		out = append(out, Field{
			Name:        f.Name,
			Present:     f.Stats.Present,
			PresentPct:  f.Stats.PresentPct,
			NonEmpty:    f.Stats.NonEmpty,
			NonEmptyPct: f.Stats.NonEmptyPct,
			Samples:     samples,
		})
	}
	return out
}

// RenderText writes one element type's report: a hash banner with the type
// name, the occurrence count, then one section per tier. Zero occurrences
// print only the count line and no sections.
func RenderText(w io.Writer, e Element) {
	fmt.Fprintf(w, "\n\n%s\n", strings.Repeat("#", 60))
	fmt.Fprintf(w, "# %s\n", e.Type)
	fmt.Fprintln(w, strings.Repeat("#", 60))
	fmt.Fprintf(w, "Found %d %s elements\n", e.Total, e.Type)

	if e.Total == 0 {
		return
	}

	renderSection(w, alwaysTitle, e.Always, e.Total)
	renderSection(w, sometimesTitle, e.Sometimes, e.Total)
	renderSection(w, rarelyTitle, e.Rarely, e.Total)
}

func renderSection(w io.Writer, title string, fields []Field, total int) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s (%d fields)\n", title, len(fields))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, f := range fields {
		quoted := make([]string, 0, 2)
		for i, s := range f.Samples {
			if i == 2 {
				break
			}
			quoted = append(quoted, fmt.Sprintf("\"%s\"", s))
		}
		fmt.Fprintf(w, "  %-40s %5.1f%%  (%d/%d)  %s\n",
			f.Name, f.NonEmptyPct, f.NonEmpty, total, strings.Join(quoted, ", "))
	}
}
