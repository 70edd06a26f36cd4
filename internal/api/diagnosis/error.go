package diagnosis

import "MedicalAssistant/pkg/response"

var (
	ErrSessionNotFound     = response.NewError(404, "diagnosis session not found")
	ErrUnsupportedLanguage = response.NewError(400, "unsupported language")
	ErrInvalidUtterance    = response.NewError(400, "utterance must not be empty")
	ErrUtteranceTooLong    = response.NewError(400, "utterance is too long")
	ErrCatalogUnavailable  = response.NewError(503, "language data unavailable")
)
