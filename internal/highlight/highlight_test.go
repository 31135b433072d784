package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments_NoTerm(t *testing.T) {
	for _, text := range []string{"", "plain text", "dates and DATES"} {
		runs := Segments(text, "")
		require.Len(t, runs, 1)
		assert.Equal(t, Run{Text: text}, runs[0])
	}
}

func TestSegments_DatesTranscript(t *testing.T) {
	runs := Segments("Just checking the dates... alright", "dates")

	assert.Equal(t, []Run{
		{Text: "Just checking the ", Emphasized: false},
		{Text: "dates", Emphasized: true},
		{Text: "... alright", Emphasized: false},
	}, runs)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want []Run
	}{
		{
			name: "case insensitive keeps original casing",
			text: "Dates first, then DATES again",
			term: "dates",
			want: []Run{
				{Text: "Dates", Emphasized: true},
				{Text: " first, then ", Emphasized: false},
				{Text: "DATES", Emphasized: true},
				{Text: " again", Emphasized: false},
			},
		},
		{
			name: "substring match inside a word",
			text: "it updates",
			term: "dates",
			want: []Run{
				{Text: "it up", Emphasized: false},
				{Text: "dates", Emphasized: true},
			},
		},
		{
			name: "regex metacharacters are literal",
			text: "price is $4.99 (approx) not $4x99",
			term: "$4.99",
			want: []Run{
				{Text: "price is ", Emphasized: false},
				{Text: "$4.99", Emphasized: true},
				{Text: " (approx) not $4x99", Emphasized: false},
			},
		},
		{
			name: "parentheses and brackets",
			text: "see [a](b) here",
			term: "[a](b)",
			want: []Run{
				{Text: "see ", Emphasized: false},
				{Text: "[a](b)", Emphasized: true},
				{Text: " here", Emphasized: false},
			},
		},
		{
			name: "no occurrence",
			text: "nothing to see",
			term: "dates",
			want: []Run{{Text: "nothing to see"}},
		},
		{
			name: "empty text with term",
			text: "",
			term: "dates",
			want: []Run{{Text: ""}},
		},
		{
			name: "adjacent matches",
			text: "abab",
			term: "ab",
			want: []Run{
				{Text: "ab", Emphasized: true},
				{Text: "ab", Emphasized: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(tt.text, tt.term))
		})
	}
}

func TestSegments_RoundTrip(t *testing.T) {
	cases := []struct{ text, term string }{
		{"Just checking the dates... alright", "dates"},
		{"Okay, let's see... looking for Four Seasons in London.", "four seasons"},
		{"", ""},
		{"", "x"},
		{"x", "x"},
		{"a.b.c", "."},
		{"ünïcödé ÜNÏCÖDÉ", "ünïcödé"},
		{"***", "*"},
	}

	for _, c := range cases {
		runs := Segments(c.text, c.term)
		assert.Equal(t, c.text, Join(runs), "text=%q term=%q", c.text, c.term)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count(Segments("Dates and dates", "dates")))
	assert.Equal(t, 0, Count(Segments("Dates and dates", "")))
}
