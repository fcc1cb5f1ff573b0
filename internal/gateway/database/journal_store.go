package database

import (
	"context"
	"fmt"
	"net/http"
	"time"

	rqlitehttp "github.com/rqlite/rqlite-go-http"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"chartwhisperer/internal/types"
)

const (
	// SQL statements. Prices are stored as TEXT to keep decimal
	// precision intact across the wire.
	createJournalTableSQL = "CREATE TABLE IF NOT EXISTS journal (id TEXT PRIMARY KEY, analysisid TEXT, pair TEXT, bias TEXT, entry TEXT, stoploss TEXT, takeprofit TEXT, analysistext TEXT, createdon INTEGER)"
	insertJournalEntrySQL = "INSERT INTO journal(id, analysisid, pair, bias, entry, stoploss, takeprofit, analysistext, createdon) VALUES(?,?,?,?,?,?,?,?,?)"
	listJournalEntriesSQL = "SELECT id, analysisid, pair, bias, entry, stoploss, takeprofit, analysistext, createdon FROM journal ORDER BY createdon DESC, id LIMIT ?"
)

// JournalStorer defines the requirements for durably recording journal
// entries.
type JournalStorer interface {
	// InsertEntry stores the provided entry as one record.
	InsertEntry(ctx context.Context, entry *types.JournalEntry) error
	// ListEntries fetches the most recent entries, newest first.
	ListEntries(ctx context.Context, limit int) ([]types.JournalEntry, error)
}

// StoreConfig is the configuration for the hosted journal store.
type StoreConfig struct {
	// Endpoint is the store's HTTP connection endpoint.
	Endpoint string
	// User is the store user.
	User string
	// Pass is the store user pass.
	Pass string
	// Logger is the store logger.
	Logger *zerolog.Logger
}

// Store is a journal store backed by a hosted rqlite endpoint.
type Store struct {
	cfg    *StoreConfig
	client *rqlitehttp.Client
}

// Ensure the store implements the JournalStorer interface.
var _ JournalStorer = (*Store)(nil)

// NewStore initializes the hosted store connection and bootstraps the
// journal table.
func NewStore(ctx context.Context, cfg *StoreConfig) (*Store, error) {
	httpc := &http.Client{Timeout: time.Second * 5}
	client, err := rqlitehttp.NewClient(cfg.Endpoint, httpc)
	if err != nil {
		return nil, fmt.Errorf("creating journal store client: %w", err)
	}

	if cfg.User != "" {
		client.SetBasicAuth(cfg.User, cfg.Pass)
	}

	s := &Store{
		cfg:    cfg,
		client: client,
	}

	if err := s.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("bootstrapping journal store: %w", err)
	}

	return s, nil
}

// bootstrap creates the journal table if needed.
func (s *Store) bootstrap(ctx context.Context) error {
	resp, err := s.client.Execute(ctx, rqlitehttp.SQLStatements{
		{SQL: createJournalTableSQL},
	}, &rqlitehttp.ExecuteOptions{
		Transaction: true,
		Timings:     true,
	})
	if err != nil {
		return err
	}
	if has, idx, errStr := resp.HasError(); has {
		return fmt.Errorf("creating journal table: %d -> %s", idx, errStr)
	}

	return nil
}

// InsertEntry stores the provided entry as one record.
func (s *Store) InsertEntry(ctx context.Context, entry *types.JournalEntry) error {
	resp, err := s.client.Execute(ctx, rqlitehttp.SQLStatements{
		{
			SQL: insertJournalEntrySQL,
			PositionalParams: []any{entry.ID, entry.AnalysisID, entry.Pair, entry.Bias,
				entry.Entry.String(), entry.StopLoss.String(), entry.TakeProfit.String(),
				entry.AnalysisText, entry.CreatedOn.Unix()},
		},
	}, &rqlitehttp.ExecuteOptions{Transaction: true, Timings: true})
	if err != nil {
		return err
	}
	if has, idx, errStr := resp.HasError(); has {
		return fmt.Errorf("inserting journal entry %s: %d -> %s", entry.ID, idx, errStr)
	}

	return nil
}

// ListEntries fetches the most recent entries, newest first.
func (s *Store) ListEntries(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	resp, err := s.client.QuerySingle(ctx, listJournalEntriesSQL, limit)
	if err != nil {
		return nil, err
	}

	var entries []types.JournalEntry
	for _, result := range resp.GetQueryResultsAssoc() {
		for _, row := range result.Rows {
			entry, err := rowToEntry(row)
			if err != nil {
				s.cfg.Logger.Error().Err(err).Msg("skipping malformed journal row")
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// rowToEntry decodes one associative result row back into an entry.
func rowToEntry(row map[string]any) (types.JournalEntry, error) {
	entry := types.JournalEntry{
		ID:           asString(row["id"]),
		AnalysisID:   asString(row["analysisid"]),
		Pair:         asString(row["pair"]),
		Bias:         asString(row["bias"]),
		AnalysisText: asString(row["analysistext"]),
	}

	var err error
	if entry.Entry, err = asDecimal(row["entry"]); err != nil {
		return entry, fmt.Errorf("decoding entry price: %w", err)
	}
	if entry.StopLoss, err = asDecimal(row["stoploss"]); err != nil {
		return entry, fmt.Errorf("decoding stop loss: %w", err)
	}
	if entry.TakeProfit, err = asDecimal(row["takeprofit"]); err != nil {
		return entry, fmt.Errorf("decoding take profit: %w", err)
	}

	if ts, ok := row["createdon"].(float64); ok {
		entry.CreatedOn = time.Unix(int64(ts), 0).UTC()
	}

	return entry, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case string:
		return decimal.NewFromString(val)
	case float64:
		return decimal.NewFromFloat(val), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
