package diagnosisRepository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MedicalAssistant/internal/entity"
)

var ErrNoRows = errors.New("diagnosis repository: no rows for language")

// Source serves the dataset tables to the classifier and the language
// catalogs. It satisfies catalog.DataSource.
type Source struct {
	repo Repository
}

func NewSource(repo Repository) *Source {
	return &Source{repo: repo}
}

func (s *Source) LoadTrainingTable(ctx context.Context) (*entity.TrainingTable, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	vocab, err := client.Dataset.GetVocabulary(ctx)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	rows, err := client.Dataset.GetTrainingRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read training samples: %w", err)
	}

	table := &entity.TrainingTable{Vocabulary: vocab}
	index := vocab.Index()

rows:
	for _, row := range rows {
		label := entity.NormalizeConditionName(row.Prognosis.String)
		if label == "" {
			table.Skipped++
			continue
		}
		vec := make(entity.SymptomVector, len(vocab))
		for _, id := range row.SymptomList() {
			i, ok := index[entity.NormalizeSymptomID(id)]
			if !ok {
				table.Skipped++
				continue rows
			}
			vec[i] = 1
		}
		table.Samples = append(table.Samples, entity.TrainingSample{Vector: vec, Label: label})
	}
	return table, nil
}

func (s *Source) LoadDescriptions(ctx context.Context, code string) (*entity.DescriptionTable, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}
	rows, err := client.Dataset.GetDescriptions(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: descriptions %s", ErrNoRows, code)
	}

	table := &entity.DescriptionTable{}
	for _, row := range rows {
		row.Condition = strings.TrimSpace(row.Condition)
		row.Description = strings.TrimSpace(row.Description)
		if row.Condition == "" || row.Description == "" {
			table.Skipped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func (s *Source) LoadPrecautions(ctx context.Context, code string) (*entity.PrecautionTable, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}
	rows, err := client.Dataset.GetPrecautions(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: precautions %s", ErrNoRows, code)
	}

	table := &entity.PrecautionTable{}
	for _, row := range rows {
		condition := strings.TrimSpace(row.Disease.String)
		if condition == "" {
			table.Skipped++
			continue
		}
		table.Rows = append(table.Rows, entity.PrecautionRow{
			Condition:   condition,
			Precautions: row.Precautions(),
		})
	}
	return table, nil
}

func (s *Source) LoadSeverity(ctx context.Context, code string) (*entity.SeverityTable, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}
	rows, err := client.Dataset.GetSeverity(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: severity %s", ErrNoRows, code)
	}

	table := &entity.SeverityTable{}
	for _, row := range rows {
		row.Symptom = strings.TrimSpace(row.Symptom)
		if row.Symptom == "" {
			table.Skipped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
