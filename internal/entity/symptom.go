package entity

import (
	"sort"
	"strings"
)

// SymptomVocabulary is the ordered list of canonical symptom identifiers a
// classifier was trained with. The order defines the feature index.
type SymptomVocabulary []string

func (v SymptomVocabulary) Index() map[string]int {
	idx := make(map[string]int, len(v))
	for i, symptom := range v {
		idx[symptom] = i
	}
	return idx
}

// CanonicalForm turns an identifier such as "skin_rash" into "skin rash".
func CanonicalForm(symptomID string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(symptomID), "_", " "))
}

// NormalizeSymptomID cleans an identifier read from a data table header,
// dropping stray spaces such as in "spotting_ urination".
func NormalizeSymptomID(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), ""))
}

// SymptomSet is an unordered set of canonical symptom identifiers.
type SymptomSet map[string]struct{}

func NewSymptomSet(ids ...string) SymptomSet {
	s := make(SymptomSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s SymptomSet) Add(id string) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

func (s SymptomSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s SymptomSet) Merge(other SymptomSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

func (s SymptomSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SymptomVector is a binary feature vector indexed by vocabulary order.
type SymptomVector []uint8

// NewSymptomVector marks every identifier of the set that is part of the
// vocabulary. Unknown identifiers are ignored.
func NewSymptomVector(vocab SymptomVocabulary, index map[string]int, symptoms SymptomSet) SymptomVector {
	vec := make(SymptomVector, len(vocab))
	for id := range symptoms {
		if i, ok := index[id]; ok {
			vec[i] = 1
		}
	}
	return vec
}

func (v SymptomVector) Active() int {
	n := 0
	for _, bit := range v {
		if bit != 0 {
			n++
		}
	}
	return n
}
