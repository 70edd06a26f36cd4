package main

import (
	"context"
	"os"

	"MedicalAssistant/database/postgres"
	diagnosisRepository "MedicalAssistant/internal/api/diagnosis/repository"
	"MedicalAssistant/internal/catalog"
	"MedicalAssistant/pkg/dataset"

	"github.com/spf13/cobra"
)

var (
	importDir         string
	importDatabaseURL string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy a CSV dataset into the dataset database",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		db, err := postgres.Connect(importDatabaseURL)
		exitOnError(err)
		defer db.Close()

		var languages []string
		for _, l := range catalog.Supported() {
			languages = append(languages, l.Code)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		source := dataset.NewCSVSource(dataset.NewDirStore(importDir), dataset.DefaultLayout(), logger)
		exitOnError(diagnosisRepository.Import(ctx, diagnosisRepository.New(db, logger), source, languages, logger))
	},
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "data", "directory holding the CSV tables")
	importCmd.Flags().StringVar(&importDatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	rootCmd.AddCommand(importCmd)
}
