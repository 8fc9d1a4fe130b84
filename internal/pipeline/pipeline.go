// Package pipeline implements the AI-assisted itinerary generation and
// persistence sequence: validate the request, generate an itinerary with the
// text model, parse the model's output into a strict schema, provision cover
// images, assemble the canonical record, and persist it as a new document.
//
// Every failure is converted into a Result at this boundary; Run never
// returns an error and never panics past itself. No stage runs more than
// once per invocation and nothing is retried.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tourvisto/backend/internal/domain"
)

// TextGenerator produces raw text for a prompt. Implemented by
// generative.Client in production.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageProvisioner resolves cover images for a search query. It cannot fail:
// implementations substitute a fallback set instead of returning an error.
// Implemented by images.Client in production.
type ImageProvisioner interface {
	Provision(ctx context.Context, query string) domain.ImageSet
}

// DocumentStore persists a trip record and returns it with the
// store-assigned identifier filled in. Implemented by repo.TripRepo in
// production.
type DocumentStore interface {
	Create(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error)
}

// CreatedDocument is the minimal echo of the stored trip returned to the
// caller on success.
type CreatedDocument struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	EstimatedPrice string    `json:"estimatedPrice"`
	CreatedAt      time.Time `json:"createdAt"`
	UserID         string    `json:"userId"`
}

// Result is the uniform outcome of one pipeline invocation. Exactly one of
// the two shapes is populated: {Success:true, ID, Document} or
// {Success:false, Error}.
type Result struct {
	Success  bool             `json:"success"`
	ID       string           `json:"id,omitempty"`
	Document *CreatedDocument `json:"document,omitempty"`
	Error    string           `json:"error,omitempty"`

	// FailedStage records which stage produced a failure; empty on success.
	// Not serialized — it exists so the HTTP layer can pick a status code
	// and tests can distinguish failure modes.
	FailedStage Stage `json:"-"`
}

// Pipeline wires the three external collaborators together.
type Pipeline struct {
	gen    TextGenerator
	images ImageProvisioner
	store  DocumentStore
	logger *slog.Logger
}

// New constructs a Pipeline.
func New(gen TextGenerator, images ImageProvisioner, store DocumentStore, logger *slog.Logger) *Pipeline {
	return &Pipeline{gen: gen, images: images, store: store, logger: logger}
}

// Run executes one invocation end to end. The returned Result is always
// well-formed: stage failures, and even a panicking collaborator, are
// converted into {Success:false, Error} here and nothing propagates to the
// caller.
func (p *Pipeline) Run(ctx context.Context, req domain.TripRequest) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "pipeline panic", "panic", r)
			result = Result{Success: false, Error: fmt.Sprint(r)}
		}
	}()

	rec, err := p.run(ctx, req)
	if err != nil {
		return p.failure(ctx, err)
	}

	var detail domain.TripDetail
	// The blob was marshaled from a TripDetail two stages ago, so a decode
	// failure means the store mangled it. The document is already persisted
	// at this point, so the invocation still succeeds; the echo just carries
	// the record's stored attributes and empty detail fields.
	if err := json.Unmarshal([]byte(rec.TripDetails), &detail); err != nil {
		p.logger.ErrorContext(ctx, "stored trip blob did not round-trip", "trip_id", rec.ID, "error", err)
	}

	return Result{
		Success: true,
		ID:      rec.ID.String(),
		Document: &CreatedDocument{
			Name:           detail.Name,
			Description:    detail.Description,
			EstimatedPrice: detail.EstimatedPrice,
			CreatedAt:      rec.CreatedAt,
			UserID:         rec.UserID,
		},
	}
}

// run performs the stage sequence and returns the persisted record or the
// first stage failure.
func (p *Pipeline) run(ctx context.Context, req domain.TripRequest) (domain.TripRecord, error) {
	if err := validateRequest(req); err != nil {
		return domain.TripRecord{}, err
	}

	// Generation and image search are independent, so they run concurrently.
	// errgroup does not propagate panics from child goroutines, and a panic
	// there would bypass the recover in Run and kill the process, so each
	// closure converts its own panics into errors before returning. Only
	// generation can fail in normal operation; the provisioner degrades to
	// its fallback set internally.
	var (
		rawText string
		imgs    domain.ImageSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &StageError{Stage: StageGenerate, Message: msgGenerateFailed, Err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		text, genErr := p.gen.GenerateText(gctx, buildPrompt(req))
		if genErr != nil {
			return &StageError{Stage: StageGenerate, Message: msgGenerateFailed, Err: genErr}
		}
		rawText = text
		return nil
	})
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("image provisioner panic: %v", r)
			}
		}()
		imgs = p.images.Provision(gctx, imageQuery(req))
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.TripRecord{}, err
	}

	detail, err := parseTripDetail(rawText)
	if err != nil {
		return domain.TripRecord{}, err
	}

	blob, err := json.Marshal(assembleDetail(detail))
	if err != nil {
		return domain.TripRecord{}, &StageError{Stage: StagePersist, Message: msgPersistFailed, Err: err}
	}

	rec := domain.TripRecord{
		TripDetails: string(blob),
		ImageURLs:   imgs.URLs,
		UserID:      req.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	saved, err := p.store.Create(ctx, rec)
	if err != nil {
		return domain.TripRecord{}, &StageError{Stage: StagePersist, Message: msgPersistFailed, Err: err}
	}

	if imgs.Source == domain.ImageSourceFallback {
		p.logger.InfoContext(ctx, "trip stored with fallback imagery", "trip_id", saved.ID)
	}
	return saved, nil
}

// failure converts a stage error into the uniform failure Result.
func (p *Pipeline) failure(ctx context.Context, err error) Result {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		if stageErr.Stage != StageValidate {
			// Validation failures are routine client errors; the rest mean an
			// external dependency misbehaved and deserve a log line.
			p.logger.ErrorContext(ctx, "pipeline stage failed",
				"stage", string(stageErr.Stage), "error", stageErr.Err)
		}
		return Result{Success: false, Error: stageErr.Message, FailedStage: stageErr.Stage}
	}

	p.logger.ErrorContext(ctx, "pipeline failed", "error", err)
	return Result{Success: false, Error: err.Error()}
}
