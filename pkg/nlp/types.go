package nlp

import (
	"MedicalAssistant/internal/entity"

	"golang.org/x/text/language"
)

type ISymptomExtractor interface {
	Extract(utterance string, mapping *Mapping) entity.SymptomSet
	Match(utterance string, mapping *Mapping) []MatchResult
}

// Phrase is a normalised local-language phrase and the canonical symptom it
// stands for.
type Phrase struct {
	Text      string `json:"text"`
	SymptomID string `json:"symptom_id"`
}

// Mapping is the per-language lookup table used for extraction. It is
// immutable once built and safe to share between goroutines.
type Mapping struct {
	tag       language.Tag
	stopWords map[string]bool
	phrases   []Phrase
	fallback  []Phrase
	bySymptom map[string]string
}

type MatchResult struct {
	Fragment  string `json:"fragment"`
	Phrase    string `json:"phrase"`
	SymptomID string `json:"symptom_id"`
	Type      string `json:"type"`
}

const (
	MatchPhraseInText = "phrase_in_text"
	MatchTextInPhrase = "text_in_phrase"
)
