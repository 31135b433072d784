// Package highlight splits transcript text into plain and emphasized runs.
package highlight

import (
	"regexp"
	"strings"
)

// Run is a contiguous piece of text with a single visual treatment.
type Run struct {
	Text       string
	Emphasized bool
}

// Segments splits text on every case-insensitive occurrence of term.
//
// Matching is substring based, so "dates" also matches inside "updates".
// Matched text keeps its original casing. Concatenating the Text of all
// returned runs always reproduces text exactly.
func Segments(text, term string) []Run {
	if term == "" {
		return []Run{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	lowerTerm := strings.ToLower(term)

	var runs []Run
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		runs = appendRun(runs, text[last:loc[0]], lowerTerm)
		runs = appendRun(runs, text[loc[0]:loc[1]], lowerTerm)
		last = loc[1]
	}
	runs = appendRun(runs, text[last:], lowerTerm)

	if len(runs) == 0 {
		return []Run{{Text: text}}
	}
	return runs
}

// appendRun drops empty pieces left over at match boundaries.
func appendRun(runs []Run, s, lowerTerm string) []Run {
	if s == "" {
		return runs
	}
	return append(runs, Run{Text: s, Emphasized: strings.ToLower(s) == lowerTerm})
}

// Join reassembles the original text from runs.
func Join(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Count returns the number of emphasized runs.
func Count(runs []Run) int {
	n := 0
	for _, r := range runs {
		if r.Emphasized {
			n++
		}
	}
	return n
}
