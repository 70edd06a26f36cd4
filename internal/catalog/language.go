package catalog

import (
	"sort"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// Texts holds the localized strings used to compose responses. Format
// strings take a single %s argument.
type Texts struct {
	Welcome            string `json:"welcome"`
	NoSymptomsFound    string `json:"no_symptoms_found"`
	NoSymptomsYet      string `json:"no_symptoms_yet"`
	NoDescription      string `json:"no_description"`
	NoPrecautions      string `json:"no_precautions"`
	TopConditions      string `json:"top_conditions"`
	LowConfidence      string `json:"low_confidence"`
	DetailsFormat      string `json:"details_format"`
	DescriptionLabel   string `json:"description_label"`
	PrecautionsLabel   string `json:"precautions_label"`
	AddMoreSymptoms    string `json:"add_more_symptoms"`
	CheckOtherSymptoms string `json:"check_other_symptoms"`
	SuggestionsFormat  string `json:"suggestions_format"`
}

// Language is a built-in language pack. Phrases maps local phrases to
// canonical symptom identifiers; Conditions maps canonical condition names
// to their localized display names.
type Language struct {
	Code          string
	Name          string
	NativeName    string
	Tag           language.Tag
	StopWords     []string
	Phrases       map[string]string
	Conditions    map[string]string
	ResetKeywords []string
	DoneKeywords  []string
	Texts         Texts
}

var languages = map[string]*Language{
	english.Code: english,
	hindi.Code:   hindi,
	telugu.Code:  telugu,
}

// Lookup returns the built-in pack for a language code.
func Lookup(code string) (*Language, bool) {
	l, ok := languages[code]
	return l, ok
}

// Supported lists the built-in languages ordered by code.
func Supported() []*Language {
	out := make([]*Language, 0, len(languages))
	for _, l := range languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}
