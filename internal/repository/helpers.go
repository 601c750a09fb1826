package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
)

// tsLayout is fixed-width so that text comparison in SQL orders the same way
// as the timestamps themselves.
const tsLayout = "2006-01-02T15:04:05.000Z"

func formatTS(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

func parseTS(s string) (time.Time, error) {
	t, err := time.Parse(tsLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullIntToPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// rangeClause appends the optional logged_at bounds of r to a query that
// already filters by user.
func rangeClause(query string, args []any, r domain.LogRange) (string, []any) {
	if !r.From.IsZero() {
		query += ` AND logged_at >= ?`
		args = append(args, formatTS(r.From))
	}
	if !r.To.IsZero() {
		query += ` AND logged_at <= ?`
		args = append(args, formatTS(r.To))
	}
	return query + ` ORDER BY id`, args
}

// nowUTC returns the current time truncated to the stored precision.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
