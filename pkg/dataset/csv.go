package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"MedicalAssistant/internal/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownLanguage = errors.New("dataset: no table for language")
	ErrMissingColumn   = errors.New("dataset: required column missing")
)

// CSVSource reads the training, description, precaution and severity
// tables as CSV files from an ObjectStore.
type CSVSource struct {
	store  ObjectStore
	layout Layout
	log    *logrus.Logger
}

func NewCSVSource(store ObjectStore, layout Layout, log *logrus.Logger) *CSVSource {
	return &CSVSource{
		store:  store,
		layout: layout,
		log:    log,
	}
}

// LoadTrainingTable reads the symptom matrix. Every column except the
// label column is a symptom; repeated columns are merged into one feature.
func (s *CSVSource) LoadTrainingTable(ctx context.Context) (*entity.TrainingTable, error) {
	table := &entity.TrainingTable{}

	var (
		label   = -1
		feature []int
		index   = map[string]int{}
	)

	err := s.read(ctx, s.layout.Training, func(header []string) error {
		feature = make([]int, len(header))
		for i, name := range header {
			feature[i] = -1
			if strings.EqualFold(name, labelColumn) {
				label = i
				continue
			}
			id := entity.NormalizeSymptomID(name)
			if id == "" {
				continue
			}
			if at, ok := index[id]; ok {
				feature[i] = at
				continue
			}
			index[id] = len(table.Vocabulary)
			feature[i] = index[id]
			table.Vocabulary = append(table.Vocabulary, id)
		}
		if label < 0 {
			return fmt.Errorf("%w: %s", ErrMissingColumn, labelColumn)
		}
		return nil
	}, func(record []string) bool {
		if label >= len(record) {
			return false
		}
		name := entity.NormalizeConditionName(record[label])
		if name == "" {
			return false
		}

		vec := make(entity.SymptomVector, len(table.Vocabulary))
		for i, at := range feature {
			if at < 0 || i >= len(record) {
				continue
			}
			switch strings.TrimSpace(record[i]) {
			case "1":
				vec[at] = 1
			case "0", "":
			default:
				return false
			}
		}
		table.Samples = append(table.Samples, entity.TrainingSample{Vector: vec, Label: name})
		return true
	}, &table.Skipped)
	if err != nil {
		return nil, err
	}

	s.logLoaded(s.layout.Training, len(table.Samples), table.Skipped)
	return table, nil
}

func (s *CSVSource) LoadDescriptions(ctx context.Context, code string) (*entity.DescriptionTable, error) {
	name, ok := s.layout.Descriptions[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}

	table := &entity.DescriptionTable{}
	var cond, desc int

	err := s.read(ctx, name, func(header []string) error {
		var err error
		if cond, err = column(header, conditionColumn); err != nil {
			return err
		}
		desc, err = column(header, descriptionColumn)
		return err
	}, func(record []string) bool {
		if cond >= len(record) || desc >= len(record) {
			return false
		}
		row := entity.DescriptionRow{
			Condition:   strings.TrimSpace(record[cond]),
			Description: strings.TrimSpace(record[desc]),
		}
		if row.Condition == "" || row.Description == "" {
			return false
		}
		table.Rows = append(table.Rows, row)
		return true
	}, &table.Skipped)
	if err != nil {
		return nil, err
	}

	s.logLoaded(name, len(table.Rows), table.Skipped)
	return table, nil
}

func (s *CSVSource) LoadPrecautions(ctx context.Context, code string) (*entity.PrecautionTable, error) {
	name, ok := s.layout.Precautions[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}

	table := &entity.PrecautionTable{}
	var (
		cond        int
		precautions []int
	)

	err := s.read(ctx, name, func(header []string) error {
		var err error
		if cond, err = column(header, conditionColumn); err != nil {
			return err
		}
		for i, h := range header {
			if strings.HasPrefix(strings.ToLower(h), precautionPrefix) {
				precautions = append(precautions, i)
			}
		}
		return nil
	}, func(record []string) bool {
		if cond >= len(record) {
			return false
		}
		row := entity.PrecautionRow{Condition: strings.TrimSpace(record[cond])}
		if row.Condition == "" {
			return false
		}
		for _, i := range precautions {
			if i < len(record) {
				row.Precautions = append(row.Precautions, record[i])
			}
		}
		row.Precautions = entity.CleanPrecautions(row.Precautions)
		table.Rows = append(table.Rows, row)
		return true
	}, &table.Skipped)
	if err != nil {
		return nil, err
	}

	s.logLoaded(name, len(table.Rows), table.Skipped)
	return table, nil
}

func (s *CSVSource) LoadSeverity(ctx context.Context, code string) (*entity.SeverityTable, error) {
	name, ok := s.layout.Severity[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}

	table := &entity.SeverityTable{}
	var symptom, weight int

	err := s.read(ctx, name, func(header []string) error {
		var err error
		if symptom, err = column(header, symptomColumn); err != nil {
			return err
		}
		weight, err = column(header, weightColumn)
		return err
	}, func(record []string) bool {
		if symptom >= len(record) || weight >= len(record) {
			return false
		}
		w, err := strconv.Atoi(strings.TrimSpace(record[weight]))
		id := strings.TrimSpace(record[symptom])
		if err != nil || id == "" {
			return false
		}
		table.Rows = append(table.Rows, entity.SeverityRow{Symptom: id, Weight: w})
		return true
	}, &table.Skipped)
	if err != nil {
		return nil, err
	}

	s.logLoaded(name, len(table.Rows), table.Skipped)
	return table, nil
}

// read streams one CSV table. onRow reports whether the record was usable;
// unusable and unparsable records are counted in skipped.
func (s *CSVSource) read(ctx context.Context, name string, onHeader func([]string) error, onRow func([]string) bool, skipped *int) error {
	f, err := s.store.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", name, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	if err := onHeader(header); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			*skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if blank(record) {
			continue
		}
		if !onRow(record) {
			*skipped++
		}
	}
}

func (s *CSVSource) logLoaded(name string, rows, skipped int) {
	if s.log == nil {
		return
	}
	entry := s.log.WithFields(logrus.Fields{
		"table":   name,
		"rows":    rows,
		"skipped": skipped,
	})
	if skipped > 0 {
		entry.Warn("[dataset.CSVSource] skipped malformed rows")
		return
	}
	entry.Debug("[dataset.CSVSource] table loaded")
}

func column(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
}

func blank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
