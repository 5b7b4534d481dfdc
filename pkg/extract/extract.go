// Package extract scans raw FLEX XML text for self-closing elements and
// returns their attribute sets.
//
// The extraction is deliberately lexical: FLEX exports are flat documents of
// self-closing, attribute-only elements, so a pair of regular expressions is
// enough and the attribute names come back exactly as written (an XML/HTML
// parser would not be allowed to case-fold tradeID to tradeid). Known
// limitation: a quoted value containing a "/>"-like sequence ends the element
// match early. FLEX exports do not produce such values.
package extract

import (
	"fmt"
	"regexp"
	"sort"
)

// attrPattern matches one name="value" pair inside an element's attribute
// region. Values may be empty but never contain a literal double quote.
var attrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)

// anyElementPattern matches any self-closing element and captures its tag name.
var anyElementPattern = regexp.MustCompile(`<(\w+)\s+[^>]*?\s*/>`)

// Elements returns the attribute map of every self-closing <tag ... />
// occurrence in doc, in document order. Whitespace around attributes is
// tolerated and attribute order is free. An occurrence whose attribute region
// contains no name="value" pairs yields an empty map. Malformed pairs simply
// fail to match and are omitted; nothing is reported.
func Elements(doc, tag string) []map[string]string {
	pattern := regexp.MustCompile(fmt.Sprintf(`<%s\s+([^>]*?)\s*/>`, regexp.QuoteMeta(tag)))
	matches := pattern.FindAllStringSubmatch(doc, -1)

	elements := make([]map[string]string, 0, len(matches))
	for _, m := range matches {
		attrs := map[string]string{}
		for _, am := range attrPattern.FindAllStringSubmatch(m[1], -1) {
			attrs[am[1]] = am[2]
		}
		elements = append(elements, attrs)
	}
	return elements
}

// TagCount is one distinct self-closing tag name and how often it occurs.
type TagCount struct {
	Name  string
	Count int
}

// TagNames surveys doc for self-closing elements of any tag name and returns
// the distinct names with occurrence counts, most frequent first (ties broken
// by name).
func TagNames(doc string) []TagCount {
	counts := map[string]int{}
	for _, m := range anyElementPattern.FindAllStringSubmatch(doc, -1) {
		counts[m[1]]++
	}

	out := make([]TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, TagCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
