package diagnosisRepository

import (
	"context"
	"database/sql"
	"strings"

	"MedicalAssistant/internal/entity"
	contextPkg "MedicalAssistant/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// symptomSeparator joins the present symptoms of a training row.
const symptomSeparator = ","

type TrainingRowDB struct {
	ID        int64          `db:"id"`
	Prognosis sql.NullString `db:"prognosis"`
	Symptoms  sql.NullString `db:"symptoms"`
}

func (r TrainingRowDB) SymptomList() []string {
	var out []string
	for _, s := range strings.Split(r.Symptoms.String, symptomSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

type PrecautionRowDB struct {
	Disease     sql.NullString `db:"disease"`
	Precaution1 sql.NullString `db:"precaution_1"`
	Precaution2 sql.NullString `db:"precaution_2"`
	Precaution3 sql.NullString `db:"precaution_3"`
	Precaution4 sql.NullString `db:"precaution_4"`
}

func (r PrecautionRowDB) Precautions() []string {
	return entity.CleanPrecautions([]string{
		r.Precaution1.String,
		r.Precaution2.String,
		r.Precaution3.String,
		r.Precaution4.String,
	})
}

func (r *datasetRepository) GetVocabulary(ctx context.Context) (entity.SymptomVocabulary, error) {
	var vocab []string
	if err := r.q.SelectContext(ctx, &vocab, queryGetVocabulary); err != nil {
		r.logError(ctx, err, "Database error when reading symptom vocabulary")
		return nil, err
	}
	return vocab, nil
}

func (r *datasetRepository) GetTrainingRows(ctx context.Context) ([]TrainingRowDB, error) {
	var rows []TrainingRowDB
	if err := r.q.SelectContext(ctx, &rows, queryGetTrainingRows); err != nil {
		r.logError(ctx, err, "Database error when reading training samples")
		return nil, err
	}
	return rows, nil
}

func (r *datasetRepository) GetDescriptions(ctx context.Context, language string) ([]entity.DescriptionRow, error) {
	var rows []entity.DescriptionRow
	if err := r.selectNamed(ctx, &rows, queryGetDescriptions, map[string]interface{}{"language": language}); err != nil {
		r.logError(ctx, err, "Database error when reading condition descriptions")
		return nil, err
	}
	return rows, nil
}

func (r *datasetRepository) GetPrecautions(ctx context.Context, language string) ([]PrecautionRowDB, error) {
	var rows []PrecautionRowDB
	if err := r.selectNamed(ctx, &rows, queryGetPrecautions, map[string]interface{}{"language": language}); err != nil {
		r.logError(ctx, err, "Database error when reading condition precautions")
		return nil, err
	}
	return rows, nil
}

func (r *datasetRepository) GetSeverity(ctx context.Context, language string) ([]entity.SeverityRow, error) {
	var rows []entity.SeverityRow
	if err := r.selectNamed(ctx, &rows, queryGetSeverity, map[string]interface{}{"language": language}); err != nil {
		r.logError(ctx, err, "Database error when reading symptom severity")
		return nil, err
	}
	return rows, nil
}

func (r *datasetRepository) Clear(ctx context.Context) error {
	for _, stmt := range queryClear {
		if _, err := r.q.ExecContext(ctx, stmt); err != nil {
			r.logError(ctx, err, "Database error when clearing dataset")
			return err
		}
	}
	return nil
}

func (r *datasetRepository) InsertSymptom(ctx context.Context, symptom string, position int) error {
	return r.execNamed(ctx, queryInsertSymptom, map[string]interface{}{
		"symptom":  symptom,
		"position": position,
	})
}

func (r *datasetRepository) InsertTrainingRow(ctx context.Context, id int, prognosis string, symptoms []string) error {
	return r.execNamed(ctx, queryInsertTrainingRow, map[string]interface{}{
		"id":        id,
		"prognosis": prognosis,
		"symptoms":  strings.Join(symptoms, symptomSeparator),
	})
}

func (r *datasetRepository) InsertDescription(ctx context.Context, language string, row entity.DescriptionRow) error {
	return r.execNamed(ctx, queryInsertDescription, map[string]interface{}{
		"language":    language,
		"disease":     row.Condition,
		"description": row.Description,
	})
}

func (r *datasetRepository) InsertPrecautions(ctx context.Context, language string, row entity.PrecautionRow) error {
	argsKV := map[string]interface{}{
		"language": language,
		"disease":  row.Condition,
	}
	for i := 0; i < entity.MaxPrecautions; i++ {
		var p sql.NullString
		if i < len(row.Precautions) {
			p = sql.NullString{String: row.Precautions[i], Valid: true}
		}
		argsKV[precautionColumns[i]] = p
	}
	return r.execNamed(ctx, queryInsertPrecautions, argsKV)
}

func (r *datasetRepository) InsertSeverity(ctx context.Context, language string, row entity.SeverityRow) error {
	return r.execNamed(ctx, queryInsertSeverity, map[string]interface{}{
		"language": language,
		"symptom":  row.Symptom,
		"weight":   row.Weight,
	})
}

var precautionColumns = [entity.MaxPrecautions]string{"precaution_1", "precaution_2", "precaution_3", "precaution_4"}

func (r *datasetRepository) selectNamed(ctx context.Context, dest interface{}, namedQuery string, argsKV map[string]interface{}) error {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return err
	}
	return r.q.SelectContext(ctx, dest, r.q.Rebind(query), args...)
}

func (r *datasetRepository) execNamed(ctx context.Context, namedQuery string, argsKV map[string]interface{}) error {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.logError(ctx, err, "Failed to build SQL query")
		return err
	}

	if _, err := r.q.ExecContext(ctx, r.q.Rebind(query), args...); err != nil {
		r.logError(ctx, err, "Database error when writing dataset row")
		return err
	}
	return nil
}

func (r *datasetRepository) logError(ctx context.Context, err error, msg string) {
	r.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"error":      err.Error(),
	}).Error(msg)
}
