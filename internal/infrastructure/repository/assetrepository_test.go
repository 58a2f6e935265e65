package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func newLaptop(t *testing.T, code string, categoryID *uint) *asset.Asset {
	t.Helper()
	purchased := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)
	a, err := asset.NewAsset(asset.Spec{
		AssetCode:    code,
		CategoryID:   categoryID,
		Type:         "Laptop",
		Model:        "ThinkPad T14",
		PurchaseDate: &purchased,
		Specs:        map[string]any{"cpu": "i7", "ram": "16GB"},
		AssignedTo:   &asset.Assignment{EmployeeID: "E001", EmployeeName: "Nguyen An", Department: "IT"},
	}, baseTime)
	require.NoError(t, err)
	return a
}

func TestAssetRepository_RoundTrip(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	a := newLaptop(t, "LT-001", uintPtr(1))
	require.NoError(t, repo.Create(ctx, a))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "LT-001", found.AssetCode())
	assert.Equal(t, vo.HealthGood, found.HealthStatus())
	assert.Equal(t, vo.UsageSpare, found.UsageStatus())
	assert.Equal(t, "i7", found.Specs()["cpu"])
	assert.Nil(t, found.Software())
	require.NotNil(t, found.AssignedTo())
	assert.Equal(t, "Nguyen An", found.AssignedTo().EmployeeName)
	require.NotNil(t, found.PurchaseDate())
	assert.Equal(t, "2023-11-20", found.PurchaseDate().Format("2006-01-02"))

	inUse := vo.UsageInUse
	require.NoError(t, found.Apply(asset.Patch{
		UsageStatus: &inUse,
		CategoryID:  uintPtr(0),
		AssignedTo:  asset.AssignmentPatch{Present: true},
	}, baseTime.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.UsageInUse, updated.UsageStatus())
	assert.Nil(t, updated.CategoryID())
	assert.Nil(t, updated.AssignedTo())
}

func TestAssetRepository_ExistsAndCount(t *testing.T) {
	repo := NewAssetRepository(setupTestDB(t))
	ctx := context.Background()

	a := newLaptop(t, "LT-001", uintPtr(7))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, newLaptop(t, "LT-002", uintPtr(7))))

	exists, err := repo.ExistsByCode(ctx, "LT-001", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "LT-001", a.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.CountByCategory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	err = repo.Create(ctx, newLaptop(t, "LT-001", nil))
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestAssetRepository_DeleteCascadesHistory(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewAssetRepository(conn)
	history := NewAssetHistoryRepository(conn)
	ctx := context.Background()

	a := newLaptop(t, "LT-001", nil)
	require.NoError(t, repo.Create(ctx, a))
	entry, err := asset.NewPurchaseEntry(a, baseTime)
	require.NoError(t, err)
	require.NoError(t, history.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, a.ID()))

	entries, err := history.ListByAssetID(ctx, a.ID())
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = repo.GetByID(ctx, a.ID())
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, a.ID())))
}

func TestAssetHistoryRepository(t *testing.T) {
	conn := setupTestDB(t)
	history := NewAssetHistoryRepository(conn)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	older, err := asset.NewHistoryEntry(1, day(1), asset.ActionAssign, "Handover to: An", "")
	require.NoError(t, err)
	sameDay, err := asset.NewHistoryEntry(1, day(5), asset.ActionCheckin, "Returned", "Lan")
	require.NoError(t, err)
	latest, err := asset.NewHistoryEntry(1, day(5), asset.ActionBroken, "Screen cracked", "Lan")
	require.NoError(t, err)
	for _, e := range []*asset.HistoryEntry{older, sameDay, latest} {
		require.NoError(t, history.Create(ctx, e))
	}

	entries, err := history.ListByAssetID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{asset.ActionBroken, asset.ActionCheckin, asset.ActionAssign},
		[]string{entries[0].ActionType(), entries[1].ActionType(), entries[2].ActionType()})
	assert.Equal(t, asset.PerformerDefaultManual, entries[2].PerformedBy())

	desc := "Handover to: Nguyen An"
	moved := day(2)
	require.NoError(t, older.Correct(asset.HistoryCorrection{Description: &desc, Date: &moved}))
	require.NoError(t, history.Update(ctx, older))

	got, err := history.GetByID(ctx, older.ID())
	require.NoError(t, err)
	assert.Equal(t, desc, got.Description())
	assert.True(t, moved.Equal(got.Date()))

	require.NoError(t, history.Delete(ctx, older.ID()))
	_, err = history.GetByID(ctx, older.ID())
	assert.True(t, errors.IsNotFoundError(err))
}
