package entity

import "time"

type ConversationState uint8

const (
	StateAwaitingInput ConversationState = iota
	StatePredicting
)

var ConversationStateMap = map[ConversationState]string{
	StateAwaitingInput: "awaiting_input",
	StatePredicting:    "predicting",
}

func (s ConversationState) String() string {
	return ConversationStateMap[s]
}

type Intent uint8

const (
	IntentSymptoms Intent = iota
	IntentReset
	IntentDone
)

// Session is the per-conversation accumulation of recognised symptoms.
type Session struct {
	ID           string
	Language     string
	Symptoms     SymptomSet
	State        ConversationState
	CreatedAt    time.Time
	LastActivity time.Time
}
