package diagnosisRepository

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"reflect"
	"testing"

	"MedicalAssistant/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := New(sqlx.NewDb(db, "sqlite"), quietLogger())
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return repo
}

func seed(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	must := func(err error) {
		t.Helper()
		if err != nil {
			client.Rollback()
			t.Fatalf("seed: %v", err)
		}
	}

	for i, s := range []string{"itching", "skin_rash", "cough"} {
		must(client.Dataset.InsertSymptom(ctx, s, i))
	}
	must(client.Dataset.InsertTrainingRow(ctx, 1, "Fungal infection", []string{"itching", "skin_rash"}))
	must(client.Dataset.InsertTrainingRow(ctx, 2, "  Common   Cold ", []string{"cough"}))
	must(client.Dataset.InsertTrainingRow(ctx, 3, "Allergy", []string{"sneezing"}))
	must(client.Dataset.InsertTrainingRow(ctx, 4, "", []string{"cough"}))

	must(client.Dataset.InsertDescription(ctx, "en", entity.DescriptionRow{Condition: "Fungal infection", Description: "A fungal skin infection."}))
	must(client.Dataset.InsertDescription(ctx, "en", entity.DescriptionRow{Condition: "Common Cold", Description: " "}))
	must(client.Dataset.InsertPrecautions(ctx, "en", entity.PrecautionRow{
		Condition:   "Fungal infection",
		Precautions: []string{"bath twice", " ", "keep infected area dry"},
	}))
	must(client.Dataset.InsertSeverity(ctx, "en", entity.SeverityRow{Symptom: "itching", Weight: 1}))
	must(client.Dataset.InsertSeverity(ctx, "en", entity.SeverityRow{Symptom: "skin_rash", Weight: 3}))

	must(client.Commit())
}

func TestSourceTrainingTable(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)

	table, err := NewSource(repo).LoadTrainingTable(context.Background())
	if err != nil {
		t.Fatalf("LoadTrainingTable() error = %v", err)
	}

	if !reflect.DeepEqual([]string(table.Vocabulary), []string{"itching", "skin_rash", "cough"}) {
		t.Errorf("vocabulary = %v", table.Vocabulary)
	}
	if table.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", table.Skipped)
	}
	want := []entity.TrainingSample{
		{Vector: entity.SymptomVector{1, 1, 0}, Label: "Fungal infection"},
		{Vector: entity.SymptomVector{0, 0, 1}, Label: "Common Cold"},
	}
	if !reflect.DeepEqual(table.Samples, want) {
		t.Errorf("samples = %+v, want %+v", table.Samples, want)
	}
}

func TestSourceLanguageTables(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	src := NewSource(repo)
	ctx := context.Background()

	descriptions, err := src.LoadDescriptions(ctx, "en")
	if err != nil {
		t.Fatalf("LoadDescriptions() error = %v", err)
	}
	if len(descriptions.Rows) != 1 || descriptions.Skipped != 1 || descriptions.Rows[0].Description != "A fungal skin infection." {
		t.Errorf("descriptions = %+v", descriptions)
	}

	precautions, err := src.LoadPrecautions(ctx, "en")
	if err != nil {
		t.Fatalf("LoadPrecautions() error = %v", err)
	}
	wantPrecautions := []string{"bath twice", "keep infected area dry"}
	if len(precautions.Rows) != 1 || !reflect.DeepEqual(precautions.Rows[0].Precautions, wantPrecautions) {
		t.Errorf("precautions = %+v", precautions)
	}

	severity, err := src.LoadSeverity(ctx, "en")
	if err != nil {
		t.Fatalf("LoadSeverity() error = %v", err)
	}
	if len(severity.Rows) != 2 || severity.Rows[1].Weight != 3 {
		t.Errorf("severity = %+v", severity)
	}
}

func TestSourceMissingLanguage(t *testing.T) {
	repo := newTestRepository(t)
	seed(t, repo)
	src := NewSource(repo)
	ctx := context.Background()

	if _, err := src.LoadDescriptions(ctx, "te"); !errors.Is(err, ErrNoRows) {
		t.Errorf("LoadDescriptions(te) error = %v, want ErrNoRows", err)
	}
	if _, err := src.LoadPrecautions(ctx, "te"); !errors.Is(err, ErrNoRows) {
		t.Errorf("LoadPrecautions(te) error = %v, want ErrNoRows", err)
	}
	if _, err := src.LoadSeverity(ctx, "te"); !errors.Is(err, ErrNoRows) {
		t.Errorf("LoadSeverity(te) error = %v, want ErrNoRows", err)
	}
}

func TestRollbackDiscardsWrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if err := client.Dataset.InsertSymptom(ctx, "itching", 0); err != nil {
		t.Fatalf("InsertSymptom() error = %v", err)
	}
	if err := client.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	client, _ = repo.NewClient(false)
	vocab, err := client.Dataset.GetVocabulary(ctx)
	if err != nil {
		t.Fatalf("GetVocabulary() error = %v", err)
	}
	if len(vocab) != 0 {
		t.Errorf("vocabulary after rollback = %v", vocab)
	}
}

type tableSource struct {
	training *entity.TrainingTable
	language map[string]bool
}

func (s tableSource) LoadTrainingTable(ctx context.Context) (*entity.TrainingTable, error) {
	return s.training, nil
}

func (s tableSource) LoadDescriptions(ctx context.Context, code string) (*entity.DescriptionTable, error) {
	if !s.language[code] {
		return nil, ErrNoRows
	}
	return &entity.DescriptionTable{Rows: []entity.DescriptionRow{{Condition: "Allergy", Description: "desc " + code}}}, nil
}

func (s tableSource) LoadPrecautions(ctx context.Context, code string) (*entity.PrecautionTable, error) {
	if !s.language[code] {
		return nil, ErrNoRows
	}
	return &entity.PrecautionTable{Rows: []entity.PrecautionRow{{Condition: "Allergy", Precautions: []string{"avoid dust"}}}}, nil
}

func (s tableSource) LoadSeverity(ctx context.Context, code string) (*entity.SeverityTable, error) {
	return nil, ErrNoRows
}

func TestImport(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := tableSource{
		training: &entity.TrainingTable{
			Vocabulary: entity.SymptomVocabulary{"continuous_sneezing", "chills"},
			Samples: []entity.TrainingSample{
				{Vector: entity.SymptomVector{1, 1}, Label: "Allergy"},
				{Vector: entity.SymptomVector{0, 1}, Label: "Malaria"},
			},
		},
		language: map[string]bool{"en": true, "hi": true},
	}
	if err := Import(ctx, repo, in, []string{"en", "hi", "te"}, quietLogger()); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	out := NewSource(repo)
	table, err := out.LoadTrainingTable(ctx)
	if err != nil {
		t.Fatalf("LoadTrainingTable() error = %v", err)
	}
	if !reflect.DeepEqual(table.Samples, in.training.Samples) || table.Skipped != 0 {
		t.Errorf("round-tripped samples = %+v (skipped %d)", table.Samples, table.Skipped)
	}

	hi, err := out.LoadDescriptions(ctx, "hi")
	if err != nil || len(hi.Rows) != 1 || hi.Rows[0].Description != "desc hi" {
		t.Errorf("hi descriptions = %+v, %v", hi, err)
	}
	if _, err := out.LoadPrecautions(ctx, "te"); !errors.Is(err, ErrNoRows) {
		t.Errorf("te precautions error = %v, want ErrNoRows", err)
	}
}

func TestImportReplacesPreviousDataset(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := tableSource{
		training: &entity.TrainingTable{
			Vocabulary: entity.SymptomVocabulary{"itching", "chills"},
			Samples:    []entity.TrainingSample{{Vector: entity.SymptomVector{1, 0}, Label: "Fungal infection"}},
		},
		language: map[string]bool{"en": true},
	}
	second := tableSource{
		training: &entity.TrainingTable{
			Vocabulary: entity.SymptomVocabulary{"chills", "cough"},
			Samples:    []entity.TrainingSample{{Vector: entity.SymptomVector{1, 1}, Label: "Common Cold"}},
		},
		language: map[string]bool{"en": true},
	}

	if err := Import(ctx, repo, first, []string{"en"}, quietLogger()); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}
	if err := Import(ctx, repo, second, []string{"en"}, quietLogger()); err != nil {
		t.Fatalf("second Import() error = %v", err)
	}

	out := NewSource(repo)
	table, err := out.LoadTrainingTable(ctx)
	if err != nil {
		t.Fatalf("LoadTrainingTable() error = %v", err)
	}
	if !reflect.DeepEqual(table.Vocabulary, second.training.Vocabulary) {
		t.Errorf("vocabulary = %v, want %v", table.Vocabulary, second.training.Vocabulary)
	}
	if !reflect.DeepEqual(table.Samples, second.training.Samples) {
		t.Errorf("samples = %+v, want %+v", table.Samples, second.training.Samples)
	}

	descriptions, err := out.LoadDescriptions(ctx, "en")
	if err != nil || len(descriptions.Rows) != 1 {
		t.Errorf("descriptions = %+v, %v", descriptions, err)
	}
	precautions, err := out.LoadPrecautions(ctx, "en")
	if err != nil || len(precautions.Rows) != 1 {
		t.Errorf("precautions = %+v, %v", precautions, err)
	}
}
