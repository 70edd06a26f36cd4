package catalog

import (
	"context"
	"fmt"
	"sort"

	"MedicalAssistant/internal/entity"

	"github.com/sirupsen/logrus"
)

// DataSource provides the tabular data behind the classifier and the
// language catalogs. Implementations skip and count malformed rows.
type DataSource interface {
	LoadTrainingTable(ctx context.Context) (*entity.TrainingTable, error)
	LoadDescriptions(ctx context.Context, code string) (*entity.DescriptionTable, error)
	LoadPrecautions(ctx context.Context, code string) (*entity.PrecautionTable, error)
	LoadSeverity(ctx context.Context, code string) (*entity.SeverityTable, error)
}

type Loader struct {
	source     DataSource
	vocabulary entity.SymptomVocabulary
	conditions []string
	log        *logrus.Logger
}

// NewLoader binds a data source to the vocabulary and condition classes of
// a trained classifier.
func NewLoader(source DataSource, vocabulary entity.SymptomVocabulary, conditions []string, log *logrus.Logger) *Loader {
	return &Loader{
		source:     source,
		vocabulary: vocabulary,
		conditions: conditions,
		log:        log,
	}
}

// Load builds the catalog of one language. Description and precaution
// tables are required; a missing severity table only yields a warning.
func (l *Loader) Load(ctx context.Context, code string) (*Catalog, error) {
	lang, ok := Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	c := newCatalog(lang, l.vocabulary)

	descriptions, err := l.source.LoadDescriptions(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: descriptions for %s: %w", ErrDataUnavailable, code, err)
	}
	for _, row := range descriptions.Rows {
		rec := c.record(c.joinCondition(row.Condition))
		if rec.Description == "" {
			rec.Description = row.Description
		}
	}
	c.diagnostics.DescriptionsSkipped = descriptions.Skipped

	precautions, err := l.source.LoadPrecautions(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: precautions for %s: %w", ErrDataUnavailable, code, err)
	}
	for _, row := range precautions.Rows {
		rec := c.record(c.joinCondition(row.Condition))
		if len(rec.Precautions) == 0 {
			rec.Precautions = entity.CleanPrecautions(row.Precautions)
		}
	}
	c.diagnostics.PrecautionsSkipped = precautions.Skipped

	severity, err := l.source.LoadSeverity(ctx, code)
	if err != nil {
		l.warn(code, err, "[catalog.Load] severity table unavailable")
	} else {
		for _, row := range severity.Rows {
			c.severity[c.joinSymptom(row.Symptom)] = row.Weight
		}
		c.diagnostics.SeveritySkipped = severity.Skipped
	}

	for _, cond := range l.conditions {
		cond = entity.NormalizeConditionName(cond)
		if _, ok := c.Description(cond); !ok {
			c.diagnostics.MissingDescriptions = append(c.diagnostics.MissingDescriptions, cond)
		}
		if _, ok := c.Precautions(cond); !ok {
			c.diagnostics.MissingPrecautions = append(c.diagnostics.MissingPrecautions, cond)
		}
	}
	sort.Strings(c.diagnostics.MissingDescriptions)
	sort.Strings(c.diagnostics.MissingPrecautions)

	if l.log != nil {
		d := c.diagnostics
		l.log.WithFields(logrus.Fields{
			"language":             code,
			"phrases":              len(c.mapping.Phrases()),
			"conditions":           len(c.records),
			"descriptions_skipped": d.DescriptionsSkipped,
			"precautions_skipped":  d.PrecautionsSkipped,
			"severity_skipped":     d.SeveritySkipped,
			"missing_descriptions": len(d.MissingDescriptions),
			"missing_precautions":  len(d.MissingPrecautions),
		}).Info("[catalog.Load] language loaded")
	}

	return c, nil
}

func (l *Loader) warn(code string, err error, msg string) {
	if l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"language": code,
		"error":    err.Error(),
	}).Warn(msg)
}
