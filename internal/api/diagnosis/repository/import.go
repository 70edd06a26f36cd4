package diagnosisRepository

import (
	"context"
	"errors"
	"fmt"

	"MedicalAssistant/internal/catalog"
	contextPkg "MedicalAssistant/pkg/context"

	"github.com/sirupsen/logrus"
)

// Import replaces the stored dataset with src in one transaction. Tables
// missing from src for a language are skipped; the training table is
// required.
func Import(ctx context.Context, repo Repository, src catalog.DataSource, languages []string, log *logrus.Logger) (err error) {
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	client, err := repo.NewClient(true)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := client.Rollback(); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	training, err := src.LoadTrainingTable(ctx)
	if err != nil {
		return fmt.Errorf("load training table: %w", err)
	}
	if err = client.Dataset.Clear(ctx); err != nil {
		return err
	}
	for i, symptom := range training.Vocabulary {
		if err = client.Dataset.InsertSymptom(ctx, symptom, i); err != nil {
			return err
		}
	}
	for i, sample := range training.Samples {
		var present []string
		for j, bit := range sample.Vector {
			if bit != 0 {
				present = append(present, training.Vocabulary[j])
			}
		}
		if err = client.Dataset.InsertTrainingRow(ctx, i+1, sample.Label, present); err != nil {
			return err
		}
	}

	for _, code := range languages {
		fields := logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"language":   code,
		}

		if descriptions, loadErr := src.LoadDescriptions(ctx, code); loadErr != nil {
			log.WithFields(fields).WithError(loadErr).Warn("Skipping description table")
		} else {
			for _, row := range descriptions.Rows {
				if err = client.Dataset.InsertDescription(ctx, code, row); err != nil {
					return err
				}
			}
		}

		if precautions, loadErr := src.LoadPrecautions(ctx, code); loadErr != nil {
			log.WithFields(fields).WithError(loadErr).Warn("Skipping precaution table")
		} else {
			for _, row := range precautions.Rows {
				if err = client.Dataset.InsertPrecautions(ctx, code, row); err != nil {
					return err
				}
			}
		}

		if severity, loadErr := src.LoadSeverity(ctx, code); loadErr != nil {
			log.WithFields(fields).WithError(loadErr).Warn("Skipping severity table")
		} else {
			for _, row := range severity.Rows {
				if err = client.Dataset.InsertSeverity(ctx, code, row); err != nil {
					return err
				}
			}
		}
	}

	if err = client.Commit(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"symptoms":   len(training.Vocabulary),
		"samples":    len(training.Samples),
		"languages":  languages,
	}).Info("Dataset imported")
	return nil
}
