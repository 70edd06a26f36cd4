package diagnosisRepository

var querySchema = []string{
	`CREATE TABLE IF NOT EXISTS symptom_vocabulary (
		symptom  TEXT PRIMARY KEY,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS training_samples (
		id        INTEGER PRIMARY KEY,
		prognosis TEXT NOT NULL,
		symptoms  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS condition_descriptions (
		language    TEXT NOT NULL,
		disease     TEXT NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS condition_precautions (
		language     TEXT NOT NULL,
		disease      TEXT NOT NULL,
		precaution_1 TEXT,
		precaution_2 TEXT,
		precaution_3 TEXT,
		precaution_4 TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS symptom_severity (
		language TEXT NOT NULL,
		symptom  TEXT NOT NULL,
		weight   INTEGER NOT NULL
	)`,
}

// queryClear empties every dataset table so an import replaces the previous one.
var queryClear = []string{
	`DELETE FROM symptom_vocabulary`,
	`DELETE FROM training_samples`,
	`DELETE FROM condition_descriptions`,
	`DELETE FROM condition_precautions`,
	`DELETE FROM symptom_severity`,
}

const (
	queryGetVocabulary = `
		SELECT
			symptom
		FROM symptom_vocabulary
		ORDER BY position
	`

	queryGetTrainingRows = `
		SELECT
			id,
			prognosis,
			symptoms
		FROM training_samples
		ORDER BY id
	`

	queryGetDescriptions = `
		SELECT
			disease,
			description
		FROM condition_descriptions
		WHERE language = :language
	`

	queryGetPrecautions = `
		SELECT
			disease,
			precaution_1,
			precaution_2,
			precaution_3,
			precaution_4
		FROM condition_precautions
		WHERE language = :language
	`

	queryGetSeverity = `
		SELECT
			symptom,
			weight
		FROM symptom_severity
		WHERE language = :language
	`

	queryInsertSymptom = `
		INSERT INTO symptom_vocabulary (
			symptom,
			position
		) VALUES (
			:symptom,
			:position
		)
	`

	queryInsertTrainingRow = `
		INSERT INTO training_samples (
			id,
			prognosis,
			symptoms
		) VALUES (
			:id,
			:prognosis,
			:symptoms
		)
	`

	queryInsertDescription = `
		INSERT INTO condition_descriptions (
			language,
			disease,
			description
		) VALUES (
			:language,
			:disease,
			:description
		)
	`

	queryInsertPrecautions = `
		INSERT INTO condition_precautions (
			language,
			disease,
			precaution_1,
			precaution_2,
			precaution_3,
			precaution_4
		) VALUES (
			:language,
			:disease,
			:precaution_1,
			:precaution_2,
			:precaution_3,
			:precaution_4
		)
	`

	queryInsertSeverity = `
		INSERT INTO symptom_severity (
			language,
			symptom,
			weight
		) VALUES (
			:language,
			:symptom,
			:weight
		)
	`
)
