package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/healthbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile(42, testutil.WithCity("Kazan"))
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, 70.0, got.WeightKg)
	assert.Equal(t, 175.0, got.HeightCm)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, 45, got.ActivityMin)
	assert.Equal(t, "Kazan", got.City)
	assert.Nil(t, got.CalorieTarget)
	assert.True(t, p.UpdatedAt.Equal(got.UpdatedAt))
}

func TestProfileRepo_Upsert_ReplacesWholeRecord(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(7, testutil.WithCalorieTarget(2500))))

	replacement := testutil.NewTestProfile(7, testutil.WithWeight(80), testutil.WithCity("Perm"))
	require.NoError(t, repo.Upsert(ctx, replacement))

	got, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.WeightKg)
	assert.Equal(t, "Perm", got.City)
	assert.Nil(t, got.CalorieTarget, "override from the first profile must not survive")
}

func TestProfileRepo_CalorieTargetRoundTrip(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(9, testutil.WithCalorieTarget(1900))))

	got, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, got.CalorieTarget)
	assert.Equal(t, 1900, *got.CalorieTarget)
}

func TestProfileRepo_IsolatedPerUser(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(1, testutil.WithAge(20))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(2, testutil.WithAge(60))))

	a, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	b, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 20, a.Age)
	assert.Equal(t, 60, b.Age)
}
