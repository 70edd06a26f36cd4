package catalog

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"MedicalAssistant/internal/entity"
	"MedicalAssistant/pkg/nlp"

	"github.com/sirupsen/logrus"
)

var testVocabulary = entity.SymptomVocabulary{
	"itching", "skin_rash", "continuous_sneezing", "chills", "joint_pain",
	"stomach_pain", "high_fever", "headache", "cough",
}

var testConditions = []string{"Fungal infection", "Allergy", "Dimorphic hemorrhoids(piles)", "Hypertension"}

type memSource struct {
	descriptions map[string]*entity.DescriptionTable
	precautions  map[string]*entity.PrecautionTable
	severity     map[string]*entity.SeverityTable
	fail         map[string]bool
	loads        map[string]int
}

var errBroken = errors.New("broken table")

func (m *memSource) LoadTrainingTable(ctx context.Context) (*entity.TrainingTable, error) {
	return &entity.TrainingTable{Vocabulary: testVocabulary}, nil
}

func (m *memSource) LoadDescriptions(ctx context.Context, code string) (*entity.DescriptionTable, error) {
	if m.loads == nil {
		m.loads = map[string]int{}
	}
	m.loads[code]++
	if m.fail[code] {
		return nil, errBroken
	}
	if t, ok := m.descriptions[code]; ok {
		return t, nil
	}
	return &entity.DescriptionTable{}, nil
}

func (m *memSource) LoadPrecautions(ctx context.Context, code string) (*entity.PrecautionTable, error) {
	if t, ok := m.precautions[code]; ok {
		return t, nil
	}
	return &entity.PrecautionTable{}, nil
}

func (m *memSource) LoadSeverity(ctx context.Context, code string) (*entity.SeverityTable, error) {
	if t, ok := m.severity[code]; ok {
		return t, nil
	}
	return nil, errBroken
}

func testSource() *memSource {
	return &memSource{
		descriptions: map[string]*entity.DescriptionTable{
			"en": {
				Rows: []entity.DescriptionRow{
					{Condition: "Fungal infection", Description: "A fungal infection of the skin."},
					{Condition: " Dimorphic  hemmorhoids(piles) ", Description: "Swollen veins."},
					{Condition: "Hypertension ", Description: "High blood pressure."},
				},
				Skipped: 2,
			},
			"hi": {
				Rows: []entity.DescriptionRow{
					{Condition: "फंगल संक्रमण", Description: "त्वचा का फंगल संक्रमण।"},
				},
			},
		},
		precautions: map[string]*entity.PrecautionTable{
			"en": {
				Rows: []entity.PrecautionRow{
					{Condition: "Fungal infection", Precautions: []string{"bath twice", " ", "use clean cloths", "", " keep dry ", "extra", "more"}},
					{Condition: "Allergy", Precautions: []string{"apply calamine"}},
				},
				Skipped: 1,
			},
		},
		severity: map[string]*entity.SeverityTable{
			"en": {
				Rows: []entity.SeverityRow{
					{Symptom: "itching", Weight: 1},
					{Symptom: " skin_rash", Weight: 3},
					{Symptom: "high_fever", Weight: 7},
				},
			},
		},
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func loadCatalog(t *testing.T, code string) *Catalog {
	t.Helper()
	c, err := NewLoader(testSource(), testVocabulary, testConditions, quietLogger()).Load(context.Background(), code)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", code, err)
	}
	return c
}

func TestLoadJoinsConditionNames(t *testing.T) {
	c := loadCatalog(t, "en")

	if d, ok := c.Description("Dimorphic hemorrhoids(piles)"); !ok || d != "Swollen veins." {
		t.Errorf("Description(piles) = %q, %v", d, ok)
	}
	if d, ok := c.Description("Hypertension"); !ok || d != "High blood pressure." {
		t.Errorf("Description(Hypertension) = %q, %v", d, ok)
	}
}

func TestDescriptionPlaceholders(t *testing.T) {
	c := loadCatalog(t, "en")

	if _, ok := c.Description("Malaria"); ok {
		t.Error("Description(Malaria) should not be found")
	}
	if got := c.Describe("Malaria"); got != english.Texts.NoDescription {
		t.Errorf("Describe(Malaria) = %q", got)
	}
	if got := c.PrecautionsFor("Malaria"); !reflect.DeepEqual(got, []string{english.Texts.NoPrecautions}) {
		t.Errorf("PrecautionsFor(Malaria) = %v", got)
	}
}

func TestPrecautionsAreCleaned(t *testing.T) {
	c := loadCatalog(t, "en")

	got, ok := c.Precautions("Fungal infection")
	want := []string{"bath twice", "use clean cloths", "keep dry", "extra"}
	if !ok || !reflect.DeepEqual(got, want) {
		t.Errorf("Precautions = %v, %v; want %v", got, ok, want)
	}
}

func TestDiagnostics(t *testing.T) {
	d := loadCatalog(t, "en").Diagnostics()

	if d.DescriptionsSkipped != 2 || d.PrecautionsSkipped != 1 {
		t.Errorf("skipped = %d/%d", d.DescriptionsSkipped, d.PrecautionsSkipped)
	}
	if !reflect.DeepEqual(d.MissingDescriptions, []string{"Allergy"}) {
		t.Errorf("MissingDescriptions = %v", d.MissingDescriptions)
	}
	if !reflect.DeepEqual(d.MissingPrecautions, []string{"Dimorphic hemorrhoids(piles)", "Hypertension"}) {
		t.Errorf("MissingPrecautions = %v", d.MissingPrecautions)
	}
}

func TestLocalizedRowsJoinCanonicalNames(t *testing.T) {
	c := loadCatalog(t, "hi")

	if d, ok := c.Description("Fungal infection"); !ok || d != "त्वचा का फंगल संक्रमण।" {
		t.Errorf("Description = %q, %v", d, ok)
	}
	if got := c.TranslateCondition("Fungal infection"); got != "फंगल संक्रमण" {
		t.Errorf("TranslateCondition = %q", got)
	}
	if got := c.Describe("Allergy"); got != hindi.Texts.NoDescription {
		t.Errorf("Describe(Allergy) = %q", got)
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	for _, lang := range Supported() {
		c := newCatalog(lang, testVocabulary)
		for canonical := range lang.Conditions {
			back, ok := c.CanonicalCondition(c.TranslateCondition(canonical))
			if !ok || back != canonical {
				t.Errorf("%s: round trip of %q = %q, %v", lang.Code, canonical, back, ok)
			}
		}
		if got := c.TranslateCondition("Not a condition"); got != "Not a condition" {
			t.Errorf("%s: untranslated name changed to %q", lang.Code, got)
		}
	}
}

func TestSeverity(t *testing.T) {
	c := loadCatalog(t, "en")

	if w, ok := c.Severity("skin_rash"); !ok || w != 3 {
		t.Errorf("Severity(skin_rash) = %d, %v", w, ok)
	}
	if got := c.SeverityScore(entity.NewSymptomSet("itching", "high_fever", "cough")); got != 8 {
		t.Errorf("SeverityScore = %d, want 8", got)
	}

	// The Hindi source has no severity table; loading still succeeds.
	if _, ok := loadCatalog(t, "hi").Severity("itching"); ok {
		t.Error("hi severity should be empty")
	}
}

func TestIntent(t *testing.T) {
	tests := []struct {
		code string
		in   string
		want entity.Intent
	}{
		{"en", "yes", entity.IntentReset},
		{"en", "  YES ", entity.IntentReset},
		{"en", "Done.", entity.IntentDone},
		{"en", "yes I have a cough", entity.IntentSymptoms},
		{"en", "", entity.IntentSymptoms},
		{"hi", "हाँ", entity.IntentReset},
		{"hi", "समाप्त", entity.IntentDone},
		{"te", "అవును", entity.IntentReset},
		{"te", "పూర్తి", entity.IntentDone},
		{"te", "done", entity.IntentSymptoms},
	}
	for _, tt := range tests {
		lang, _ := Lookup(tt.code)
		c := newCatalog(lang, testVocabulary)
		if got := c.Intent(tt.in); got != tt.want {
			t.Errorf("%s Intent(%q) = %v, want %v", tt.code, tt.in, got, tt.want)
		}
	}
}

func TestCatalogMappingExtracts(t *testing.T) {
	ex := nlp.NewSymptomExtractor()

	got := ex.Extract("मुझे खुजली और तेज बुखार है", loadCatalog(t, "hi").Mapping()).Sorted()
	if !reflect.DeepEqual(got, []string{"high_fever", "itching"}) {
		t.Errorf("hi Extract = %v", got)
	}

	// A lone word also matches the longer phrases that contain it.
	got = ex.Extract("నాకు దురద ఉంది", loadCatalog(t, "te").Mapping()).Sorted()
	if !reflect.DeepEqual(got, []string{"internal_itching", "irritation_in_anus", "itching"}) {
		t.Errorf("te Extract = %v", got)
	}

	if got := loadCatalog(t, "te").PhraseFor("skin_rash"); got != "చర్మం దద్దుర్లు" {
		t.Errorf("te PhraseFor(skin_rash) = %q", got)
	}
}

func TestLoadUnsupportedLanguage(t *testing.T) {
	_, err := NewLoader(testSource(), testVocabulary, nil, nil).Load(context.Background(), "fr")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("err = %v, want ErrUnsupportedLanguage", err)
	}
}
