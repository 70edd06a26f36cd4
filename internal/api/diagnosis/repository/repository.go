package diagnosisRepository

import (
	"context"

	"MedicalAssistant/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
	Migrate(ctx context.Context) error
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Dataset:  &datasetRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// Migrate creates the dataset tables when they do not exist yet.
func (r *repository) Migrate(ctx context.Context) error {
	for _, stmt := range querySchema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			r.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to migrate dataset schema")
			return err
		}
	}
	return nil
}

type Client struct {
	Dataset interface {
		GetVocabulary(ctx context.Context) (entity.SymptomVocabulary, error)
		GetTrainingRows(ctx context.Context) ([]TrainingRowDB, error)
		GetDescriptions(ctx context.Context, language string) ([]entity.DescriptionRow, error)
		GetPrecautions(ctx context.Context, language string) ([]PrecautionRowDB, error)
		GetSeverity(ctx context.Context, language string) ([]entity.SeverityRow, error)

		Clear(ctx context.Context) error
		InsertSymptom(ctx context.Context, symptom string, position int) error
		InsertTrainingRow(ctx context.Context, id int, prognosis string, symptoms []string) error
		InsertDescription(ctx context.Context, language string, row entity.DescriptionRow) error
		InsertPrecautions(ctx context.Context, language string, row entity.PrecautionRow) error
		InsertSeverity(ctx context.Context, language string, row entity.SeverityRow) error
	}

	Commit   func() error
	Rollback func() error
}

type datasetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
