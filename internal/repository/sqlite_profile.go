package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT user_id, weight_kg, height_cm, age, activity_min, city, calorie_target, updated_at
		FROM profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Profile
	var target sql.NullInt64
	var updatedAt string
	err := row.Scan(&p.UserID, &p.WeightKg, &p.HeightCm, &p.Age, &p.ActivityMin, &p.City, &target, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.CalorieTarget = nullIntToPtr(target)
	if p.UpdatedAt, err = parseTS(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert replaces the whole profile row for p.UserID.
func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = nowUTC()
	}
	query := `INSERT OR REPLACE INTO profiles
		(user_id, weight_kg, height_cm, age, activity_min, city, calorie_target, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.WeightKg,
		p.HeightCm,
		p.Age,
		p.ActivityMin,
		p.City,
		nullableIntToValue(p.CalorieTarget),
		formatTS(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
