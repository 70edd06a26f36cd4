package nlp

import (
	"strings"
	"unicode/utf8"

	"MedicalAssistant/internal/entity"
)

// minFragmentRunes is the shortest piece of user text tried against longer
// phrases. Shorter fragments would be contained in almost every phrase.
const minFragmentRunes = 3

type symptomExtractor struct {
	minFragment int
}

func NewSymptomExtractor() ISymptomExtractor {
	return &symptomExtractor{minFragment: minFragmentRunes}
}

func (e *symptomExtractor) Extract(utterance string, mapping *Mapping) entity.SymptomSet {
	found := entity.NewSymptomSet()
	for _, match := range e.Match(utterance, mapping) {
		found.Add(match.SymptomID)
	}
	return found
}

// Match returns every phrase hit of the utterance. The phrase table is tried
// first; the canonical forms are only consulted when it yields nothing.
func (e *symptomExtractor) Match(utterance string, mapping *Mapping) []MatchResult {
	if mapping == nil || strings.TrimSpace(utterance) == "" {
		return nil
	}

	tokens := mapping.Tokens(utterance)
	if len(tokens) == 0 {
		return nil
	}

	matches := e.matchPhrases(tokens, mapping.phrases)
	if len(matches) == 0 {
		matches = e.matchPhrases(tokens, mapping.fallback)
	}
	return matches
}

// matchPhrases runs the bidirectional containment test. A phrase found inside
// the text marks the tokens it spans as covered. The whole text is then tried
// inside every phrase regardless of coverage. The remaining token windows
// are tried the same way, longest first, skipping windows nested in one that
// already matched. Windows never grow past the longest phrase, since a longer
// one cannot be contained in any phrase.
func (e *symptomExtractor) matchPhrases(tokens []string, phrases []Phrase) []MatchResult {
	text := strings.Join(tokens, " ")
	starts := make([]int, len(tokens))
	offset := 0
	for i, tok := range tokens {
		starts[i] = offset
		offset += len(tok) + 1
	}

	var matches []MatchResult
	covered := make([]bool, len(tokens))

	for _, p := range phrases {
		hit := false
		for from := 0; from <= len(text); {
			idx := strings.Index(text[from:], p.Text)
			if idx < 0 {
				break
			}
			begin := from + idx
			end := begin + len(p.Text)
			markCovered(covered, starts, tokens, begin, end)
			hit = true
			from = begin + 1
		}
		if hit {
			matches = append(matches, MatchResult{
				Fragment:  p.Text,
				Phrase:    p.Text,
				SymptomID: p.SymptomID,
				Type:      MatchPhraseInText,
			})
		}
	}

	n := len(tokens)
	claimed := make([][2]int, 0)
	if found := e.matchInPhrases(text, phrases); len(found) > 0 {
		matches = append(matches, found...)
		if !anyCovered(covered, 0, n) {
			claimed = append(claimed, [2]int{0, n})
		}
	}

	for size := min(n, longestPhrase(phrases)); size >= 1; size-- {
		for lo := 0; lo+size <= n; lo++ {
			hi := lo + size
			if anyCovered(covered, lo, hi) || nested(claimed, lo, hi) {
				continue
			}
			found := e.matchInPhrases(strings.Join(tokens[lo:hi], " "), phrases)
			if len(found) > 0 {
				matches = append(matches, found...)
				claimed = append(claimed, [2]int{lo, hi})
			}
		}
	}

	return matches
}

func (e *symptomExtractor) matchInPhrases(fragment string, phrases []Phrase) []MatchResult {
	if utf8.RuneCountInString(fragment) < e.minFragment {
		return nil
	}
	var matches []MatchResult
	for _, p := range phrases {
		// an equal phrase was already reported as found in the text
		if p.Text != fragment && strings.Contains(p.Text, fragment) {
			matches = append(matches, MatchResult{
				Fragment:  fragment,
				Phrase:    p.Text,
				SymptomID: p.SymptomID,
				Type:      MatchTextInPhrase,
			})
		}
	}
	return matches
}

// longestPhrase returns the token count of the longest phrase.
func longestPhrase(phrases []Phrase) int {
	longest := 0
	for _, p := range phrases {
		if size := strings.Count(p.Text, " ") + 1; size > longest {
			longest = size
		}
	}
	return longest
}

func markCovered(covered []bool, starts []int, tokens []string, begin, end int) {
	for i, start := range starts {
		stop := start + len(tokens[i])
		if start < end && begin < stop {
			covered[i] = true
		}
	}
}

func anyCovered(covered []bool, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func nested(claimed [][2]int, lo, hi int) bool {
	for _, c := range claimed {
		if c[0] <= lo && hi <= c[1] {
			return true
		}
	}
	return false
}
