package dataset

// Layout names the table files of a dataset. Per-language maps are keyed
// by language code.
type Layout struct {
	Training     string
	Descriptions map[string]string
	Precautions  map[string]string
	Severity     map[string]string
}

func DefaultLayout() Layout {
	return Layout{
		Training: "Training.csv",
		Descriptions: map[string]string{
			"en": "symptom_Description.csv",
			"hi": "symptom_Description_Hindi.csv",
			"te": "symptom_Description_Telugu.csv",
		},
		Precautions: map[string]string{
			"en": "symptom_precaution.csv",
			"hi": "symptom_precaution_Hindi.csv",
			"te": "symptom_precaution_Telugu.csv",
		},
		Severity: map[string]string{
			"en": "Symptom_severity.csv",
			"hi": "Symptom_severity_Hindi.csv",
			"te": "Symptom_severity_Telugu.csv",
		},
	}
}

const (
	labelColumn       = "prognosis"
	conditionColumn   = "disease"
	descriptionColumn = "description"
	precautionPrefix  = "precaution_"
	symptomColumn     = "symptom"
	weightColumn      = "weight"
)
