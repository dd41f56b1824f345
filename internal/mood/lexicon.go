package mood

import (
	"regexp"
	"strings"
)

// LexiconScorer is a bilingual (Malay/English) word-count sentiment scorer:
// (positive hits - negative hits) / total tokens.
type LexiconScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var wordPattern = regexp.MustCompile(`\w+`)

func NewLexiconScorer() *LexiconScorer {
	positive := []string{
		"baik", "suka", "happy", "gembira", "best", "seronok", "bagus", "terbaik",
		"syiok", "cun", "lawaa", "power", "mantap", "semangat", "ok", "setuju",
	}
	negative := []string{
		"tak", "tidak", "sedih", "sad", "benci", "geram", "fail", "gagal", "susah",
		"payah", "pening", "stress", "penat", "letih", "boring", "bosan", "malas",
	}

	s := &LexiconScorer{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		s.positive[w] = struct{}{}
	}
	for _, w := range negative {
		s.negative[w] = struct{}{}
	}
	return s
}

func (s *LexiconScorer) Score(text string) (float64, error) {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return 0.0, nil
	}

	var pos, neg int
	for _, tok := range tokens {
		if _, ok := s.positive[tok]; ok {
			pos++
		}
		if _, ok := s.negative[tok]; ok {
			neg++
		}
	}

	return float64(pos-neg) / float64(len(tokens)), nil
}
