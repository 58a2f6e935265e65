package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func TestCategoryRepository(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))
	ctx := context.Background()

	laptops, err := category.NewCategory("Laptops", "LT", "portable")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, laptops))
	screens, err := category.NewCategory("Monitors", "MN", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, screens))

	exists, err := repo.ExistsByName(ctx, "Laptops", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByCode(ctx, "LT", laptops.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, screens.Rename("Displays", "DP", "external"))
	require.NoError(t, repo.Update(ctx, screens))
	got, err := repo.GetByID(ctx, screens.ID())
	require.NoError(t, err)
	assert.Equal(t, "DP", got.Code())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Laptops", all[0].Name())

	require.NoError(t, repo.Delete(ctx, laptops.ID()))
	_, err = repo.GetByID(ctx, laptops.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketCategoryRepository(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewTicketCategoryRepository(conn)
	tickets := NewTicketRepository(conn)
	ctx := context.Background()

	inactive := false
	hardware, err := category.NewTicketCategory("Hardware", "HW", "", nil, nil, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, hardware))
	legacy, err := category.NewTicketCategory("Legacy", "LG", "", nil, &inactive, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, legacy))

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "HW", active[0].Code())
	assert.Equal(t, category.DefaultSLAHours, active[0].SLAHours())

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byIDs, err := repo.GetByIDs(ctx, []uint{legacy.ID(), 404})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.False(t, byIDs[0].IsActive())

	tk, err := ticket.NewTicket("Broken mouse", "", uintPtr(hardware.ID()), nil, vo.PriorityLow, nil, requester, baseTime)
	require.NoError(t, err)
	require.NoError(t, tickets.Create(ctx, tk))

	count, err := repo.CountTickets(ctx, hardware.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	hardware.Archive()
	require.NoError(t, repo.Update(ctx, hardware))
	got, err := repo.GetByID(ctx, hardware.ID())
	require.NoError(t, err)
	assert.False(t, got.IsActive())
}
