package diagnosis

import "MedicalAssistant/internal/entity"

type ResultKind string

const (
	KindWelcome         ResultKind = "welcome"
	KindNoSymptomsFound ResultKind = "no_symptoms_found"
	KindNoSymptomsYet   ResultKind = "no_symptoms_yet"
	KindPrediction      ResultKind = "prediction"
	KindLanguageChanged ResultKind = "language_changed"
)

// DisplayResult is what a presentation layer renders after one turn. Lines
// are localized and ready to print; the remaining fields carry the same
// outcome in structured form.
type DisplayResult struct {
	Kind          ResultKind          `json:"kind"`
	Language      string              `json:"language"`
	Lines         []string            `json:"lines"`
	Symptoms      []string            `json:"symptoms"`
	Predictions   []entity.Prediction `json:"predictions,omitempty"`
	Details       *ConditionDetails   `json:"details,omitempty"`
	LowConfidence bool                `json:"low_confidence"`
	NeedsMore     bool                `json:"needs_more"`
	Suggestions   []string            `json:"suggestions,omitempty"`
	SeverityScore int                 `json:"severity_score"`
}

type ConditionDetails struct {
	Condition   string   `json:"condition"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}

type StartSessionRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=en hi te"`
}

// MaxUtteranceRunes bounds a single utterance. The validate tags below repeat it.
const MaxUtteranceRunes = 1000

type UtteranceRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi te"`
}

type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

type SessionResponse struct {
	ID       string         `json:"id"`
	Language string         `json:"language"`
	State    string         `json:"state"`
	Result   *DisplayResult `json:"result"`
}

const (
	ChatUtterance = "utterance"
	ChatLanguage  = "language"
	ChatReset     = "reset"
)

// ChatMessage is one client frame on the chat WebSocket.
type ChatMessage struct {
	Type     string `json:"type" validate:"required,oneof=utterance language reset"`
	Text     string `json:"text,omitempty" validate:"max=1000"`
	Language string `json:"language,omitempty"`
}

type ChatReply struct {
	Result *DisplayResult `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}
