// Package usage records how the font catalog is used. Events are batched
// into SQLite and summarised for the stats endpoint.
package usage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Event types
const (
	EventLookup     = "lookup"
	EventLookupMiss = "lookup_miss"
	EventBuildURL   = "build_url"
	EventLoad       = "load"
)

// Sources
const (
	SourceAPI = "api"
	SourceMCP = "mcp"
	SourceUI  = "ui"
)

// Recorder batches event writes using go-zero's BulkInserter.
type Recorder struct {
	conn     sqlx.SqlConn
	inserter *sqlx.BulkInserter
}

// FamilyCount is a per-family event tally
type FamilyCount struct {
	Family string `db:"family"`
	Count  int    `db:"count"`
}

// NewRecorder creates a recorder writing to the font_events table.
func NewRecorder(conn sqlx.SqlConn) (*Recorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `font_events` (`id`, `family`, `event_type`, `source`, `timestamp`) values (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter font_events error: %v", err)
		}
	})

	return &Recorder{conn: conn, inserter: inserter}, nil
}

// Record batches an event. A nil recorder drops it, so callers can run
// without a database.
func (r *Recorder) Record(family, eventType, source string) {
	if r == nil {
		return
	}
	if err := r.inserter.Insert(
		uuid.New().String(),
		family,
		eventType,
		source,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		logx.Errorf("Failed to record font event: %v", err)
	}
}

// Lookup records a hit or a miss
func (r *Recorder) Lookup(family, source string, found bool) {
	if found {
		r.Record(family, EventLookup, source)
		return
	}
	r.Record(family, EventLookupMiss, source)
}

// Flush forces pending events to be written.
func (r *Recorder) Flush() {
	if r == nil {
		return
	}
	r.inserter.Flush()
}

// Stats returns event counts keyed by event type.
func (r *Recorder) Stats(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		EventType string `db:"event_type"`
		Count     int    `db:"count"`
	}
	if err := r.conn.QueryRowsCtx(ctx, &rows,
		"SELECT event_type, COUNT(*) AS count FROM font_events GROUP BY event_type"); err != nil {
		return nil, err
	}

	stats := make(map[string]int, len(rows))
	for _, row := range rows {
		stats[row.EventType] = row.Count
	}
	return stats, nil
}

// TopFamilies returns the most frequent families for eventType
func (r *Recorder) TopFamilies(ctx context.Context, eventType string, limit int) ([]FamilyCount, error) {
	var rows []FamilyCount
	err := r.conn.QueryRowsCtx(ctx, &rows, `
		SELECT family, COUNT(*) AS count FROM font_events
		WHERE event_type = ?
		GROUP BY family
		ORDER BY count DESC, family ASC
		LIMIT ?`, eventType, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
