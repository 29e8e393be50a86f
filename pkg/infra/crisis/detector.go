package crisis

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

var ErrNoKeywords = errors.New("crisis detector needs at least one keyword")

type Detector interface {
	Match(text string) bool
	Matches(text string) []string
}

// keywordDetector flags text containing any configured phrase as a
// case-insensitive substring.
type keywordDetector struct {
	matcher *goahocorasick.Machine
}

func NewKeywordDetector(keywords []string) (Detector, error) {
	patterns := lo.Uniq(lo.FilterMap(keywords, func(k string, _ int) (string, bool) {
		n := string(normalize(strings.TrimSpace(k)))
		return n, n != ""
	}))
	if len(patterns) == 0 {
		return nil, ErrNoKeywords
	}
	slices.Sort(patterns)

	runes := make([][]rune, len(patterns))
	for i, p := range patterns {
		runes[i] = []rune(p)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(runes); err != nil {
		return nil, err
	}
	return &keywordDetector{matcher: m}, nil
}

func (d *keywordDetector) Match(text string) bool {
	norm := normalize(text)
	if len(norm) == 0 {
		return false
	}
	return len(d.matcher.MultiPatternSearch(norm, true)) > 0
}

func (d *keywordDetector) Matches(text string) []string {
	norm := normalize(text)
	if len(norm) == 0 {
		return nil
	}
	terms := d.matcher.MultiPatternSearch(norm, false)
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		found = append(found, string(term.Word))
	}
	return lo.Uniq(found)
}

// normalize lowercases rune by rune and folds typographic apostrophes so
// "Don’t" and "don't" compare equal. Spacing and punctuation are kept.
func normalize(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '’', '‘', 'ʼ':
			r = '\''
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
