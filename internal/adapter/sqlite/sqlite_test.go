package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "fittrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck
	require.NoError(t, db.Ping(context.Background()))
}

func TestHydration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	day, err := db.FindByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Nil(t, day)

	saved, err := db.Save(ctx, &domain.HydrationDay{Date: "2024-01-01", Cups: 1})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	saved.Cups = 3
	_, err = db.Save(ctx, saved)
	require.NoError(t, err)

	day, err = db.FindByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, domain.HydrationDay{ID: saved.ID, Date: "2024-01-01", Cups: 3}, *day)

	_, err = db.Save(ctx, &domain.HydrationDay{Date: "2024-01-01", Cups: 1})
	assert.ErrorIs(t, err, domain.ErrDayExists)

	_, err = db.Save(ctx, &domain.HydrationDay{ID: 999, Date: "2024-03-01", Cups: 1})
	assert.Error(t, err)

	_, err = db.Save(ctx, &domain.HydrationDay{Date: "2023-12-30", Cups: 2})
	require.NoError(t, err)
	days, err := db.FindByDateBetween(ctx, "2023-12-26", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2023-12-30", days[0].Date)
	assert.Equal(t, "2024-01-01", days[1].Date)
}

func TestMeals(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepo(db)
	ctx := context.Background()

	oatmeal := domain.Meal{
		Name: "Oatmeal", Calories: 300, Carbs: 54, Protein: 10, Fat: 5,
		Time: "08:00", MealType: "Breakfast", Icon: "🥣", Color: "#f5deb3", Date: "2024-01-01",
	}
	stored, err := repo.Save(ctx, &oatmeal)
	require.NoError(t, err)
	require.NotZero(t, stored.ID)

	for _, d := range []string{"2023-12-25", "2023-12-26", "2024-01-02"} {
		_, err := repo.Save(ctx, &domain.Meal{Name: "meal", Date: d})
		require.NoError(t, err)
	}

	daily, err := repo.FindByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, daily, 1)
	want := oatmeal
	want.ID = stored.ID
	assert.Equal(t, want, daily[0])

	weekly, err := repo.FindByDateBetween(ctx, "2023-12-26", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.Equal(t, "2023-12-26", weekly[0].Date)
}

func TestMealLogs(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealLogRepo(db)
	ctx := context.Background()

	entry := domain.MealLogEntry{
		UserID: 42, MealName: "Eggs", MealType: "Breakfast",
		Calories: 200, Carbs: 1, Protein: 12, Fat: 15,
		LogDate: "2024-01-01", LogTime: "07:45:00",
	}
	stored, err := repo.Save(ctx, &entry)
	require.NoError(t, err)
	require.NotZero(t, stored.ID)

	_, err = repo.Save(ctx, &domain.MealLogEntry{UserID: 42, MealName: "Soup", LogDate: "2023-12-31", LogTime: "19:00:00"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &domain.MealLogEntry{UserID: 7, MealName: "Rice", LogDate: "2024-01-01", LogTime: "12:00:00"})
	require.NoError(t, err)

	got, err := repo.FindAllByUserIDAndLogDate(ctx, 42, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	entry.ID = stored.ID
	assert.Equal(t, entry, got[0])

	got, err = repo.FindAllByUserIDAndLogDate(ctx, 8, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, got)
}
