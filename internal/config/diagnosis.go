package config

import (
	"context"
	"fmt"

	diagnosisRepository "MedicalAssistant/internal/api/diagnosis/repository"
	diagnosisService "MedicalAssistant/internal/api/diagnosis/service"
	"MedicalAssistant/internal/catalog"
	"MedicalAssistant/pkg/classifier"
	"MedicalAssistant/pkg/dataset"
	"MedicalAssistant/pkg/nlp"

	"github.com/sirupsen/logrus"
)

// WithDiagnosisEngine trains the classifier on the configured dataset and
// preloads every language catalog. Database, S3 and Redis options must be
// applied before it when the configuration uses them.
func WithDiagnosisEngine(ctx context.Context, cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before diagnosis engine")
		}

		source, err := s.dataSource(ctx, cfg)
		if err != nil {
			return err
		}

		table, err := source.LoadTrainingTable(ctx)
		if err != nil {
			return fmt.Errorf("failed to load training table: %w", err)
		}

		classifierCfg := classifier.DefaultConfig(classifier.Variant(cfg.ClassifierVariant))
		classifierCfg.Seed = cfg.ClassifierSeed
		model, err := classifier.Train(table, classifierCfg, s.log)
		if err != nil {
			return fmt.Errorf("failed to train classifier: %w", err)
		}

		loader := catalog.NewLoader(source, model.Vocabulary(), model.Classes(), s.log)
		registry := catalog.NewRegistry(loader, cfg.DefaultLanguage, s.log)

		var others []string
		for _, l := range catalog.Supported() {
			if l.Code != cfg.DefaultLanguage {
				others = append(others, l.Code)
			}
		}
		if err := registry.Preload(ctx, others...); err != nil {
			return fmt.Errorf("failed to load default language %s: %w", cfg.DefaultLanguage, err)
		}

		s.diagnosis = &diagnosisService.Engine{
			Catalogs:   registry,
			Classifier: model,
			Extractor:  nlp.NewSymptomExtractor(),
			Cache:      s.redisServer,
			Log:        s.log,
		}
		s.sessionTTL = cfg.SessionTTL

		s.log.WithFields(logrus.Fields{
			"source":  cfg.DatasetSource,
			"variant": model.Variant(),
			"classes": len(model.Classes()),
			"skipped": table.Skipped,
		}).Info("Diagnosis engine ready")
		return nil
	}
}

func (s *Server) dataSource(ctx context.Context, cfg *AppConfig) (catalog.DataSource, error) {
	switch cfg.DatasetSource {
	case DatasetSourceCSV:
		return dataset.NewCSVSource(dataset.NewDirStore(cfg.DatasetDir), dataset.DefaultLayout(), s.log), nil
	case DatasetSourceS3:
		if s.s3Client == nil {
			return nil, fmt.Errorf("s3 client must be initialized before diagnosis engine")
		}
		return dataset.NewCSVSource(s.s3Client, dataset.DefaultLayout(), s.log), nil
	case DatasetSourcePostgres:
		if s.db == nil {
			return nil, fmt.Errorf("database must be initialized before diagnosis engine")
		}
		repo := diagnosisRepository.New(s.db, s.log)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate dataset schema: %w", err)
		}
		return diagnosisRepository.NewSource(repo), nil
	}
	return nil, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
}
