package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func countWater(t *testing.T, database *sql.DB, userID int64) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM water_logs WHERE user_id = ?`, userID).Scan(&n))
	return n
}

func insertWater(ctx context.Context, tx db.DBTX, userID int64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO water_logs (user_id, logged_at, volume_ml) VALUES (?, '2025-06-01T08:00:00.000Z', 250)`, userID)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertWater(ctx, tx, 1)
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countWater(t, database, 1), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertWater(ctx, tx, 2); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.Equal(t, 0, countWater(t, database, 2), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertWater(ctx, tx, 3)
			panic("boom")
		})
	})

	assert.Equal(t, 0, countWater(t, database, 3), "row should not exist after panic rollback")
}
