package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/domain"
)

// logTables maps each log kind to its table. Table names never come from
// user input.
var logTables = map[domain.LogKind]string{
	domain.LogWater:   "water_logs",
	domain.LogFood:    "food_logs",
	domain.LogWorkout: "workout_logs",
}

// SQLiteLogRepo implements LogRepo using a SQLite database.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(conn db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: conn}
}

func (r *SQLiteLogRepo) AppendWater(ctx context.Context, l *domain.WaterLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = nowUTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO water_logs (user_id, logged_at, volume_ml) VALUES (?, ?, ?)`,
		l.UserID, formatTS(l.LoggedAt), l.VolumeML,
	)
	if err != nil {
		return fmt.Errorf("inserting water log: %w", err)
	}
	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading water log id: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) AppendFood(ctx context.Context, l *domain.FoodLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = nowUTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO food_logs (user_id, logged_at, product, grams, calories) VALUES (?, ?, ?, ?, ?)`,
		l.UserID, formatTS(l.LoggedAt), l.Product, l.Grams, l.Calories,
	)
	if err != nil {
		return fmt.Errorf("inserting food log: %w", err)
	}
	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading food log id: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) AppendWorkout(ctx context.Context, l *domain.WorkoutLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = nowUTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO workout_logs (user_id, logged_at, kind, minutes, calories, water_ml) VALUES (?, ?, ?, ?, ?, ?)`,
		l.UserID, formatTS(l.LoggedAt), l.Kind, l.Minutes, l.Calories, l.WaterML,
	)
	if err != nil {
		return fmt.Errorf("inserting workout log: %w", err)
	}
	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading workout log id: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) ListWater(ctx context.Context, userID int64, lr domain.LogRange) ([]*domain.WaterLog, error) {
	query, args := rangeClause(`SELECT id, user_id, logged_at, volume_ml FROM water_logs WHERE user_id = ?`,
		[]any{userID}, lr)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing water logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WaterLog
	for rows.Next() {
		var l domain.WaterLog
		var ts string
		if err := rows.Scan(&l.ID, &l.UserID, &ts, &l.VolumeML); err != nil {
			return nil, fmt.Errorf("scanning water log: %w", err)
		}
		if l.LoggedAt, err = parseTS(ts); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating water logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteLogRepo) ListFood(ctx context.Context, userID int64, lr domain.LogRange) ([]*domain.FoodLog, error) {
	query, args := rangeClause(`SELECT id, user_id, logged_at, product, grams, calories FROM food_logs WHERE user_id = ?`,
		[]any{userID}, lr)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing food logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.FoodLog
	for rows.Next() {
		var l domain.FoodLog
		var ts string
		if err := rows.Scan(&l.ID, &l.UserID, &ts, &l.Product, &l.Grams, &l.Calories); err != nil {
			return nil, fmt.Errorf("scanning food log: %w", err)
		}
		if l.LoggedAt, err = parseTS(ts); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteLogRepo) ListWorkouts(ctx context.Context, userID int64, lr domain.LogRange) ([]*domain.WorkoutLog, error) {
	query, args := rangeClause(`SELECT id, user_id, logged_at, kind, minutes, calories, water_ml FROM workout_logs WHERE user_id = ?`,
		[]any{userID}, lr)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing workout logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WorkoutLog
	for rows.Next() {
		var l domain.WorkoutLog
		var ts string
		if err := rows.Scan(&l.ID, &l.UserID, &ts, &l.Kind, &l.Minutes, &l.Calories, &l.WaterML); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		if l.LoggedAt, err = parseTS(ts); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteLogRepo) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	var total int64
	for _, kind := range domain.AllLogKinds {
		res, err := r.db.ExecContext(ctx, `DELETE FROM `+logTables[kind]+` WHERE user_id = ?`, userID)
		if err != nil {
			return 0, fmt.Errorf("deleting %s logs: %w", kind, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("counting deleted %s logs: %w", kind, err)
		}
		total += n
	}
	return total, nil
}
