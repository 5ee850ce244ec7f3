package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the "completion_events" table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	query, args := builder().
		Insert(completionTable.Name).
		Columns("timestamp", "session_id", "word_key", "mistakes", "duration_ms").
		Values(time.Now().UTC(), data.SessionID, data.WordKey, data.Mistakes, data.DurationMs).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error) {
	t := entsql.Table(completionTable.Name)
	sel := builder().
		Select(t.C("id"), t.C("timestamp"), t.C("session_id"), t.C("word_key"), t.C("mistakes"), t.C("duration_ms")).
		From(t).
		OrderBy(entsql.Desc(t.C("id")))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(t.C("timestamp"), opts.From))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(t.C("timestamp"), opts.To))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}
	defer rows.Close()

	var out []CompletionRecord
	for rows.Next() {
		var rec CompletionRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.SessionID, &rec.WordKey, &rec.Mistakes, &rec.DurationMs); err != nil {
			return nil, fmt.Errorf("scan completion event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) WordStats(ctx context.Context) ([]WordStat, error) {
	t := entsql.Table(completionTable.Name)
	query, args := builder().
		Select(
			t.C("word_key"),
			entsql.As(entsql.Count("*"), "completions"),
			entsql.As(entsql.Sum(t.C("mistakes")), "total_mistakes"),
			entsql.As(entsql.Min(t.C("duration_ms")), "best_ms"),
		).
		From(t).
		GroupBy(t.C("word_key")).
		OrderBy(entsql.Desc("completions"), t.C("word_key")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query word stats: %w", err)
	}
	defer rows.Close()

	var out []WordStat
	for rows.Next() {
		var ws WordStat
		if err := rows.Scan(&ws.WordKey, &ws.Completions, &ws.TotalMistakes, &ws.BestMs); err != nil {
			return nil, fmt.Errorf("scan word stat: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

func (r *eventRepo) ClearCompletions(ctx context.Context) error {
	query, args := builder().Delete(completionTable.Name).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear completion events: %w", err)
	}
	return nil
}
