// Package journal implements the journal recorder: durable insert
// first, best-effort operator alert second.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chartwhisperer/internal/gateway/database"
	"chartwhisperer/internal/gateway/notifier"
	"chartwhisperer/internal/types"
)

// ErrStoreDisabled is returned by reads when no durable store is
// configured. Writes are unaffected: persistence is simply skipped.
var ErrStoreDisabled = errors.New("journal store not configured")

// Config is the configuration for the journal service.
type Config struct {
	// Store is the durable journal store. Nil disables persistence in
	// degraded/local deployments without disabling the endpoint.
	Store database.JournalStorer
	// Notifier is the operator alert channel. Nil disables alerts
	// silently.
	Notifier notifier.TextNotifier
	// Logger is the service logger.
	Logger *zerolog.Logger
}

// Service is the journal recorder.
type Service struct {
	cfg *Config
	now func() time.Time
}

// NewService initializes the journal service.
func NewService(cfg *Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("journal service requires a logger")
	}
	return &Service{cfg: cfg, now: time.Now}, nil
}

// Save records the entry and then alerts the operator channel. The
// insert strictly precedes the alert: a persistence failure aborts the
// operation, while an alert failure is logged and swallowed. Save
// assigns the entry's ID and creation time.
func (s *Service) Save(ctx context.Context, entry *types.JournalEntry) error {
	entry.ID = uuid.NewString()
	entry.CreatedOn = s.now().UTC()

	if s.cfg.Store != nil {
		if err := s.cfg.Store.InsertEntry(ctx, entry); err != nil {
			s.cfg.Logger.Error().Err(err).Str("pair", entry.Pair).Msg("journal insert failed")
			return types.E(types.KindPersistenceFailure, "journal persistence failed", err)
		}
	}

	s.notify(entry)
	return nil
}

// List fetches the most recent entries from the durable store.
func (s *Service) List(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	if s.cfg.Store == nil {
		return nil, ErrStoreDisabled
	}
	return s.cfg.Store.ListEntries(ctx, limit)
}

// notify sends the journal alert. Best-effort: the outcome never
// reaches the caller.
func (s *Service) notify(entry *types.JournalEntry) {
	if s.cfg.Notifier == nil {
		return
	}
	msg := notifier.BuildJournalAlert(entry).RenderMarkdown()
	if err := s.cfg.Notifier.SendText(msg); err != nil {
		s.cfg.Logger.Warn().Err(err).Str("pair", entry.Pair).Msg("journal alert delivery failed")
	}
}
