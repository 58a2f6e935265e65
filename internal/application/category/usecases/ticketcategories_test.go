package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/category/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func newTicketCategoryUseCases() (*TicketCategoryUseCases, *memoryTicketCategoryRepository) {
	repo := newMemoryTicketCategoryRepository()
	return NewTicketCategoryUseCases(repo, testChecker(), mockTransactor{}, logger.NewNopLogger()), repo
}

func intPtr(v int) *int {
	return &v
}

func TestTicketCategoryUseCases_CreateDefaults(t *testing.T) {
	uc, _ := newTicketCategoryUseCases()

	created, err := uc.Create(context.Background(), CreateTicketCategoryCommand{Principal: itStaff(), Name: "Network", Code: "NET"})

	require.NoError(t, err)
	assert.Equal(t, 24, created.SLAHours)
	assert.True(t, created.IsActive)
}

func TestTicketCategoryUseCases_Conflicts(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTicketCategoryUseCases()
	network, err := uc.Create(ctx, CreateTicketCategoryCommand{Principal: itStaff(), Name: "Network", Code: "NET", SLAHours: intPtr(4)})
	require.NoError(t, err)
	hardware, err := uc.Create(ctx, CreateTicketCategoryCommand{Principal: itStaff(), Name: "Hardware", Code: "HW"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, CreateTicketCategoryCommand{Principal: itStaff(), Name: "Network", Code: "NW"})
	assert.True(t, errors.IsConflictError(err))

	name := "Network"
	_, err = uc.Update(ctx, UpdateTicketCategoryCommand{Principal: itStaff(), ID: hardware.ID, Name: &name})
	assert.True(t, errors.IsConflictError(err))

	sla := 8
	updated, err := uc.Update(ctx, UpdateTicketCategoryCommand{Principal: itStaff(), ID: network.ID, Name: &name, SLAHours: &sla})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.SLAHours)

	_, err = uc.Update(ctx, UpdateTicketCategoryCommand{Principal: itStaff(), ID: network.ID, SLAHours: intPtr(0)})
	assert.True(t, errors.IsValidationError(err))
}

func TestTicketCategoryUseCases_DeleteSoftOrHard(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTicketCategoryUseCases()
	used, err := uc.Create(ctx, CreateTicketCategoryCommand{Principal: itStaff(), Name: "Network", Code: "NET"})
	require.NoError(t, err)
	unused, err := uc.Create(ctx, CreateTicketCategoryCommand{Principal: itStaff(), Name: "Hardware", Code: "HW"})
	require.NoError(t, err)
	repo.ticketCount[used.ID] = 3

	result, err := uc.Delete(ctx, itStaff(), used.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.DeleteStatusArchived, result.Status)
	archived, err := repo.GetByID(ctx, used.ID)
	require.NoError(t, err)
	assert.False(t, archived.IsActive())

	result, err = uc.Delete(ctx, itStaff(), unused.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.DeleteStatusDeleted, result.Status)
	assert.NotContains(t, repo.rows, unused.ID)

	active, err := uc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := uc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = uc.Delete(ctx, staff(), used.ID)
	assert.True(t, errors.IsForbiddenError(err))
}
