package nlp

import (
	"sort"
	"strings"
	"unicode"

	"MedicalAssistant/internal/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NewMapping builds the phrase table of one language. Canonical forms derived
// from the vocabulary are added first; local phrases override them when both
// normalise to the same text.
func NewMapping(tag language.Tag, stopWords []string, vocabulary []string, local map[string]string) *Mapping {
	m := &Mapping{
		tag:       tag,
		stopWords: make(map[string]bool, len(stopWords)),
		bySymptom: make(map[string]string),
	}
	for _, w := range stopWords {
		for _, token := range strings.Fields(normalize(tag, w)) {
			m.stopWords[token] = true
		}
	}

	table := make(map[string]string, len(vocabulary)+len(local))
	canonical := make(map[string]string, len(vocabulary)+len(local))
	for _, id := range vocabulary {
		if key := m.phraseKey(entity.CanonicalForm(id)); key != "" {
			table[key] = id
			canonical[key] = id
		}
	}

	localKeys := make([]string, 0, len(local))
	for phrase := range local {
		localKeys = append(localKeys, phrase)
	}
	sort.Strings(localKeys)
	for _, phrase := range localKeys {
		id := local[phrase]
		key := m.phraseKey(phrase)
		if key == "" || id == "" {
			continue
		}
		table[key] = id
		if _, seen := m.bySymptom[id]; !seen {
			m.bySymptom[id] = phrase
		}
		if ck := m.phraseKey(entity.CanonicalForm(id)); ck != "" {
			canonical[ck] = id
		}
	}

	m.phrases = sortedPhrases(table)
	m.fallback = sortedPhrases(canonical)
	return m
}

func sortedPhrases(table map[string]string) []Phrase {
	out := make([]Phrase, 0, len(table))
	for text, id := range table {
		out = append(out, Phrase{Text: text, SymptomID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}

func (m *Mapping) Tag() language.Tag {
	return m.tag
}

func (m *Mapping) Phrases() []Phrase {
	out := make([]Phrase, len(m.phrases))
	copy(out, m.phrases)
	return out
}

// Lookup returns the symptom a phrase maps to after normalisation.
func (m *Mapping) Lookup(phrase string) (string, bool) {
	key := m.phraseKey(phrase)
	i := sort.Search(len(m.phrases), func(i int) bool { return m.phrases[i].Text >= key })
	if i < len(m.phrases) && m.phrases[i].Text == key {
		return m.phrases[i].SymptomID, true
	}
	return "", false
}

// PhraseFor returns the first hand-authored phrase of a symptom, or its
// canonical form when the language has none.
func (m *Mapping) PhraseFor(symptomID string) string {
	if phrase, ok := m.bySymptom[symptomID]; ok {
		return strings.ReplaceAll(phrase, "_", " ")
	}
	return entity.CanonicalForm(symptomID)
}

func (m *Mapping) IsStopWord(token string) bool {
	return m.stopWords[token]
}

// Tokens normalises the text and drops stop words.
func (m *Mapping) Tokens(text string) []string {
	words := strings.Fields(normalize(m.tag, text))
	tokens := words[:0]
	for _, w := range words {
		if !m.stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func (m *Mapping) phraseKey(phrase string) string {
	return strings.Join(m.Tokens(phrase), " ")
}

// Normalize lowercases the text in a language aware way and replaces anything
// that is not a letter, mark or digit with a single space.
func Normalize(tag language.Tag, text string) string {
	return normalize(tag, text)
}

func normalize(tag language.Tag, text string) string {
	text = norm.NFC.String(text)
	text = cases.Lower(tag).String(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, text)

	return strings.Join(strings.Fields(text), " ")
}
