// Package presence computes per-attribute presence statistics across the
// occurrences of one element type and buckets the attributes into three
// presence tiers.
package presence

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// SampleKeep is how many distinct sample values are collected per field.
	SampleKeep = 5
	// SampleReport is how many of the collected samples make it into reports.
	SampleReport = 3
	// SampleWidth truncates each sample value to its first N characters.
	// Uniqueness is judged on the truncated value.
	SampleWidth = 50

	// Tier cutoffs on the non-empty percentage. The 99.9 cutoff (rather than
	// exactly 100) absorbs floating-point rounding from the division.
	alwaysThreshold    = 99.9
	sometimesThreshold = 50.0
)

// FieldStats aggregates one attribute name across all occurrences of one
// element type. Present counts occurrences carrying the attribute at all;
// NonEmpty additionally requires a non-blank value after trimming whitespace.
type FieldStats struct {
	Present     int
	PresentPct  float64
	NonEmpty    int
	NonEmptyPct float64
	Samples     []string
}

// addSample records a truncated sample value if it is unseen and capacity
// remains. Samples keep first-seen order so reports are stable run to run.
// Truncation counts characters, not bytes, so a multi-byte value is never cut
// mid-rune.
func (fs *FieldStats) addSample(value string) {
	if len(fs.Samples) >= SampleKeep {
		return
	}
	if utf8.RuneCountInString(value) > SampleWidth {
		value = string([]rune(value)[:SampleWidth])
	}
	for _, s := range fs.Samples {
		if s == value {
			return
		}
	}
	fs.Samples = append(fs.Samples, value)
}

// Analyze tallies attribute presence across elements, one map per element
// occurrence. Percentages are relative to len(elements). Empty input returns
// an empty map; callers treat that as "nothing to report".
func Analyze(elements []map[string]string) map[string]*FieldStats {
	total := len(elements)
	if total == 0 {
		return map[string]*FieldStats{}
	}

	stats := map[string]*FieldStats{}
	for _, attrs := range elements {
		for field, value := range attrs {
			fs := stats[field]
			if fs == nil {
				fs = &FieldStats{}
				stats[field] = fs
			}
			fs.Present++
			if strings.TrimSpace(value) != "" {
				fs.NonEmpty++
				fs.addSample(value)
			}
		}
	}

	for _, fs := range stats {
		fs.PresentPct = float64(fs.Present) / float64(total) * 100
		fs.NonEmptyPct = float64(fs.NonEmpty) / float64(total) * 100
	}
	return stats
}

// Field pairs an attribute name with its stats inside a tier.
type Field struct {
	Name  string
	Stats *FieldStats
}

// Categorize partitions stats into the three tiers by non-empty percentage:
// always (>= 99.9), sometimes (>= 50), rarely (the rest). Every field lands
// in exactly one tier; fields within a tier are sorted by name ascending.
func Categorize(stats map[string]*FieldStats) (always, sometimes, rarely []Field) {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fs := stats[name]
		f := Field{Name: name, Stats: fs}
		switch {
		case fs.NonEmptyPct >= alwaysThreshold:
			always = append(always, f)
		case fs.NonEmptyPct >= sometimesThreshold:
			sometimes = append(sometimes, f)
		default:
			rarely = append(rarely, f)
		}
	}
	return always, sometimes, rarely
}
