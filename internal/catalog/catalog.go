package catalog

import (
	"errors"
	"strings"

	"MedicalAssistant/internal/entity"
	"MedicalAssistant/pkg/nlp"
)

var (
	ErrDataUnavailable     = errors.New("catalog: language data unavailable")
	ErrUnsupportedLanguage = errors.New("catalog: unsupported language")
)

// Diagnostics reports what was dropped or missing while a catalog loaded.
type Diagnostics struct {
	DescriptionsSkipped int      `json:"descriptions_skipped"`
	PrecautionsSkipped  int      `json:"precautions_skipped"`
	SeveritySkipped     int      `json:"severity_skipped"`
	MissingDescriptions []string `json:"missing_descriptions,omitempty"`
	MissingPrecautions  []string `json:"missing_precautions,omitempty"`
}

// Catalog is the read-only data of one language. It is safe for concurrent
// use once built.
type Catalog struct {
	lang         *Language
	mapping      *nlp.Mapping
	translations map[string]string
	reverse      map[string]string
	records      map[string]*entity.ConditionRecord
	severity     map[string]int
	diagnostics  Diagnostics
}

func newCatalog(lang *Language, vocabulary entity.SymptomVocabulary) *Catalog {
	c := &Catalog{
		lang:         lang,
		mapping:      nlp.NewMapping(lang.Tag, lang.StopWords, vocabulary, lang.Phrases),
		translations: make(map[string]string, len(lang.Conditions)),
		reverse:      make(map[string]string, len(lang.Conditions)),
		records:      make(map[string]*entity.ConditionRecord),
		severity:     make(map[string]int),
	}
	for canonical, local := range lang.Conditions {
		canonical = entity.NormalizeConditionName(canonical)
		c.translations[canonical] = local
		c.reverse[strings.TrimSpace(local)] = canonical
	}
	return c
}

func (c *Catalog) Code() string {
	return c.lang.Code
}

func (c *Catalog) Language() *Language {
	return c.lang
}

func (c *Catalog) Mapping() *nlp.Mapping {
	return c.mapping
}

func (c *Catalog) Texts() Texts {
	return c.lang.Texts
}

func (c *Catalog) Diagnostics() Diagnostics {
	return c.diagnostics
}

// TranslateCondition returns the localized display name, or the canonical
// name unchanged when the language has no translation.
func (c *Catalog) TranslateCondition(name string) string {
	if local, ok := c.translations[entity.NormalizeConditionName(name)]; ok {
		return local
	}
	return name
}

// CanonicalCondition resolves a display name back to its canonical name.
// Canonical names resolve to themselves.
func (c *Catalog) CanonicalCondition(display string) (string, bool) {
	display = strings.TrimSpace(display)
	if canonical, ok := c.reverse[display]; ok {
		return canonical, true
	}
	name := entity.NormalizeConditionName(display)
	if _, ok := c.translations[name]; ok {
		return name, true
	}
	if _, ok := c.records[name]; ok {
		return name, true
	}
	return "", false
}

func (c *Catalog) Description(condition string) (string, bool) {
	rec, ok := c.records[entity.NormalizeConditionName(condition)]
	if !ok || rec.Description == "" {
		return "", false
	}
	return rec.Description, true
}

// Describe returns the description or the localized placeholder.
func (c *Catalog) Describe(condition string) string {
	if d, ok := c.Description(condition); ok {
		return d
	}
	return c.lang.Texts.NoDescription
}

func (c *Catalog) Precautions(condition string) ([]string, bool) {
	rec, ok := c.records[entity.NormalizeConditionName(condition)]
	if !ok || len(rec.Precautions) == 0 {
		return nil, false
	}
	out := make([]string, len(rec.Precautions))
	copy(out, rec.Precautions)
	return out, true
}

// PrecautionsFor returns the precautions or a single localized placeholder.
func (c *Catalog) PrecautionsFor(condition string) []string {
	if p, ok := c.Precautions(condition); ok {
		return p
	}
	return []string{c.lang.Texts.NoPrecautions}
}

func (c *Catalog) Record(condition string) (entity.ConditionRecord, bool) {
	rec, ok := c.records[entity.NormalizeConditionName(condition)]
	if !ok {
		return entity.ConditionRecord{}, false
	}
	out := *rec
	out.Precautions = append([]string(nil), rec.Precautions...)
	return out, true
}

func (c *Catalog) Severity(symptomID string) (int, bool) {
	w, ok := c.severity[symptomID]
	return w, ok
}

// SeverityScore sums the weights of the known symptoms of the set.
func (c *Catalog) SeverityScore(symptoms entity.SymptomSet) int {
	score := 0
	for id := range symptoms {
		score += c.severity[id]
	}
	return score
}

// PhraseFor returns how a canonical symptom is written in this language.
func (c *Catalog) PhraseFor(symptomID string) string {
	return c.mapping.PhraseFor(symptomID)
}

// Intent classifies an utterance that is exactly one of the language's
// keywords. Anything else is a symptom description.
func (c *Catalog) Intent(utterance string) entity.Intent {
	text := nlp.Normalize(c.lang.Tag, utterance)
	if text == "" {
		return entity.IntentSymptoms
	}
	for _, k := range c.lang.ResetKeywords {
		if text == nlp.Normalize(c.lang.Tag, k) {
			return entity.IntentReset
		}
	}
	for _, k := range c.lang.DoneKeywords {
		if text == nlp.Normalize(c.lang.Tag, k) {
			return entity.IntentDone
		}
	}
	return entity.IntentSymptoms
}

func (c *Catalog) record(condition string) *entity.ConditionRecord {
	rec, ok := c.records[condition]
	if !ok {
		rec = &entity.ConditionRecord{Name: condition}
		c.records[condition] = rec
	}
	return rec
}

// joinCondition maps a condition name found in a data table to its
// canonical name. Localized names are resolved through the translations.
func (c *Catalog) joinCondition(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := c.reverse[name]; ok {
		return canonical
	}
	return entity.NormalizeConditionName(name)
}

// joinSymptom maps a symptom name found in a data table to its identifier.
func (c *Catalog) joinSymptom(name string) string {
	name = strings.TrimSpace(name)
	if id, ok := c.mapping.Lookup(name); ok {
		return id
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
