package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/id"
	"github.com/aina-travel/backend/internal/session"
)

// Source lists the POIs an import pulls in. Satisfied by the Instagram
// catalog loaded from the embedded source set.
type Source interface {
	All() []domain.POI
}

// ImportService runs the simulated "saved from Instagram" import. The real
// product would scrape a reel link; here the import is a fixed-delay task
// over an embedded source set. The delay is modelled as a cancellable timed
// task so that a future real network call slots in without changing the
// contract: a cancelled import adds nothing.
type ImportService struct {
	source  Source
	trips   TripAdder
	session *session.Session
	delay   time.Duration
	logger  *slog.Logger
}

// NewImportService constructs an ImportService. delay is the simulated
// extraction time; tests pass zero.
func NewImportService(source Source, trips TripAdder, sess *session.Session, delay time.Duration, logger *slog.Logger) *ImportService {
	return &ImportService{source: source, trips: trips, session: sess, delay: delay, logger: logger}
}

// ImportResult reports what one import run produced.
type ImportResult struct {
	JobID    string `json:"jobId"`
	Imported int    `json:"imported"`
}

// Run waits out the simulated delay, then adds every source POI to the saved
// library and to the trip selection through the usual grouping rule. Both
// inserts are idempotent, so re-running an import is harmless.
// Returns the context's error if cancelled before the delay elapses.
func (s *ImportService) Run(ctx context.Context) (ImportResult, error) {
	jobID, err := id.Generate("imp")
	if err != nil {
		return ImportResult{}, fmt.Errorf("service.ImportService.Run: %w", err)
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		s.logger.Info("import cancelled", "job_id", jobID)
		return ImportResult{}, ctx.Err()
	case <-timer.C:
	}

	items := s.source.All()
	err = s.session.Update(ctx, func(state *domain.SessionState) error {
		for _, poi := range items {
			if !state.InLibrary(poi.ID) {
				state.Library = append(state.Library, poi)
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("service.ImportService.Run: %w", err)
	}
	for _, poi := range items {
		if err := s.trips.Add(ctx, poi); err != nil {
			return ImportResult{}, fmt.Errorf("service.ImportService.Run: %w", err)
		}
	}

	s.logger.Info("import completed", "job_id", jobID, "items", len(items))
	return ImportResult{JobID: jobID, Imported: len(items)}, nil
}
