package entity

type TrainingSample struct {
	Vector SymptomVector
	Label  string
}

// TrainingTable is the labelled symptom matrix a classifier is fit on.
// Skipped counts rows dropped as malformed during loading.
type TrainingTable struct {
	Vocabulary SymptomVocabulary
	Samples    []TrainingSample
	Skipped    int
}

type DescriptionRow struct {
	Condition   string `db:"disease"`
	Description string `db:"description"`
}

type DescriptionTable struct {
	Rows    []DescriptionRow
	Skipped int
}

type PrecautionRow struct {
	Condition   string
	Precautions []string
}

type PrecautionTable struct {
	Rows    []PrecautionRow
	Skipped int
}

type SeverityRow struct {
	Symptom string `db:"symptom"`
	Weight  int    `db:"weight"`
}

type SeverityTable struct {
	Rows    []SeverityRow
	Skipped int
}
