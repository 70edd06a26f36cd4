package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"MedicalAssistant/internal/entity"
)

func writeFiles(t *testing.T, files map[string]string) *DirStore {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return NewDirStore(dir)
}

func TestLoadTrainingTable(t *testing.T) {
	store := writeFiles(t, map[string]string{
		"Training.csv": "\ufeffitching,skin_rash,spotting_ urination,fluid_overload,fluid_overload,prognosis,\n" +
			"1,1,0,0,0,Fungal infection,\n" +
			"0,0,1,0,1,Hypertension ,\n" +
			"1,x,0,0,0,Allergy,\n" +
			"1,0,0,0,0,,\n" +
			"\n" +
			"0,1,0,0,0,Dimorphic hemmorhoids(piles),\n",
	})

	table, err := NewCSVSource(store, DefaultLayout(), nil).LoadTrainingTable(context.Background())
	if err != nil {
		t.Fatalf("LoadTrainingTable error: %v", err)
	}

	wantVocab := entity.SymptomVocabulary{"itching", "skin_rash", "spotting_urination", "fluid_overload"}
	if !reflect.DeepEqual(table.Vocabulary, wantVocab) {
		t.Errorf("Vocabulary = %v, want %v", table.Vocabulary, wantVocab)
	}
	if len(table.Samples) != 3 || table.Skipped != 2 {
		t.Fatalf("samples = %d, skipped = %d", len(table.Samples), table.Skipped)
	}

	if got := table.Samples[1]; got.Label != "Hypertension" || !reflect.DeepEqual(got.Vector, entity.SymptomVector{0, 0, 1, 1}) {
		t.Errorf("sample 1 = %+v", got)
	}
	if got := table.Samples[2].Label; got != "Dimorphic hemorrhoids(piles)" {
		t.Errorf("sample 2 label = %q", got)
	}
}

func TestLoadTrainingTableWithoutLabel(t *testing.T) {
	store := writeFiles(t, map[string]string{"Training.csv": "itching,skin_rash\n1,0\n"})
	_, err := NewCSVSource(store, DefaultLayout(), nil).LoadTrainingTable(context.Background())
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestLoadDescriptions(t *testing.T) {
	store := writeFiles(t, map[string]string{
		"symptom_Description.csv": "Disease,Description\n" +
			"Fungal infection,\"A common skin infection, caused by fungus.\"\n" +
			"Allergy\n" +
			"GERD,\n",
	})

	table, err := NewCSVSource(store, DefaultLayout(), nil).LoadDescriptions(context.Background(), "en")
	if err != nil {
		t.Fatalf("LoadDescriptions error: %v", err)
	}
	want := []entity.DescriptionRow{{Condition: "Fungal infection", Description: "A common skin infection, caused by fungus."}}
	if !reflect.DeepEqual(table.Rows, want) || table.Skipped != 2 {
		t.Errorf("rows = %+v, skipped = %d", table.Rows, table.Skipped)
	}
}

func TestLoadPrecautions(t *testing.T) {
	store := writeFiles(t, map[string]string{
		"symptom_precaution_Hindi.csv": "Disease,Precaution_1,Precaution_2,Precaution_3,Precaution_4\n" +
			"फंगल संक्रमण,दिन में दो बार नहाएं, ,साफ कपड़े पहनें\n" +
			",a,b,c,d\n",
	})

	table, err := NewCSVSource(store, DefaultLayout(), nil).LoadPrecautions(context.Background(), "hi")
	if err != nil {
		t.Fatalf("LoadPrecautions error: %v", err)
	}
	if len(table.Rows) != 1 || table.Skipped != 1 {
		t.Fatalf("rows = %+v, skipped = %d", table.Rows, table.Skipped)
	}
	want := []string{"दिन में दो बार नहाएं", "साफ कपड़े पहनें"}
	if !reflect.DeepEqual(table.Rows[0].Precautions, want) {
		t.Errorf("precautions = %q, want %q", table.Rows[0].Precautions, want)
	}
}

func TestLoadSeverity(t *testing.T) {
	store := writeFiles(t, map[string]string{
		"Symptom_severity.csv": "Symptom,weight\nitching,1\n skin_rash ,3\nchills,high\n",
	})

	table, err := NewCSVSource(store, DefaultLayout(), nil).LoadSeverity(context.Background(), "en")
	if err != nil {
		t.Fatalf("LoadSeverity error: %v", err)
	}
	want := []entity.SeverityRow{{Symptom: "itching", Weight: 1}, {Symptom: "skin_rash", Weight: 3}}
	if !reflect.DeepEqual(table.Rows, want) || table.Skipped != 1 {
		t.Errorf("rows = %+v, skipped = %d", table.Rows, table.Skipped)
	}
}

func TestMissingTables(t *testing.T) {
	src := NewCSVSource(writeFiles(t, nil), DefaultLayout(), nil)

	if _, err := src.LoadDescriptions(context.Background(), "te"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := src.LoadSeverity(context.Background(), "fr"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("unknown language err = %v", err)
	}
}
