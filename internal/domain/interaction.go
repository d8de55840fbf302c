package domain

import "time"

// InteractionLog records what was suggested and what the user did with it.
// Written once per session terminal action.
type InteractionLog struct {
	ID              string
	UserID          *string
	ContentType     ContentType
	ContentID       string
	ConfidenceLevel string
	QuestionsAsked  []string
	UserResponses   map[string]string
	ActionTaken     InteractionAction
	CreatedAt       time.Time
}
