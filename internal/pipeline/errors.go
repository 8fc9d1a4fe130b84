package pipeline

import "github.com/tourvisto/backend/internal/domain"

// Stage identifies which step of the pipeline produced a failure.
type Stage string

const (
	StageValidate Stage = "validate"
	StageGenerate Stage = "generate"
	StageParse    Stage = "parse"
	StagePersist  Stage = "persist"
)

// User-visible failure messages. These are part of the API contract: clients
// match on them, so they must not drift.
const (
	msgMissingParams  = "Missing required parameters"
	msgGenerateFailed = "Failed to generate trip itinerary"
	msgParseFailed    = "Failed to parse AI response"
	msgPersistFailed  = "Failed to save trip to database"
)

// StageError is a pipeline stage failure. Error() returns the user-visible
// message; the underlying cause is kept for logs via Unwrap.
type StageError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *StageError) Error() string { return e.Message }

func (e *StageError) Unwrap() error { return e.Err }

// validationError builds the StageValidate failure. It wraps
// domain.ErrValidation so the HTTP layer can map it to 422.
func validationError() *StageError {
	return &StageError{Stage: StageValidate, Message: msgMissingParams, Err: domain.ErrValidation}
}
