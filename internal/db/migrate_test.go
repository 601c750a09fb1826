package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"profiles", "water_logs", "food_logs", "workout_logs"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_water_logs_user_ts", "idx_food_logs_user_ts", "idx_workout_logs_user_ts"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_WorkoutWaterColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO workout_logs (user_id, logged_at, kind, minutes, calories)
		VALUES (1, '2025-06-01T08:00:00.000Z', 'run', 30, 300)`)
	require.NoError(t, err)

	var waterML int
	require.NoError(t, db.QueryRow(`SELECT water_ml FROM workout_logs WHERE user_id = 1`).Scan(&waterML))
	assert.Equal(t, 0, waterML, "water_ml defaults to zero")
}

func TestSchemaVersion_Latest(t *testing.T) {
	db := openTestDB(t)

	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestMigrateDown_RollsBackOneStep(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, MigrateDown(db))
	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	require.NoError(t, Migrate(db))
	v, err = SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO water_logs (user_id, logged_at, volume_ml) VALUES (1, '2025-06-01T08:00:00.000Z', 0)`)
	assert.Error(t, err, "volume_ml must be positive")

	_, err = db.Exec(`INSERT INTO profiles (user_id, weight_kg, height_cm, age, activity_min, city, updated_at)
		VALUES (1, -1, 170, 30, 0, 'Oslo', '2025-06-01T08:00:00.000Z')`)
	assert.Error(t, err, "weight_kg must be positive")
}
