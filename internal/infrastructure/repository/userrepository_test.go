package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (prefixHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.NewUnauthorizedError("mismatch")
	}
	return nil
}

func TestUserRepository(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	lan, err := user.NewUser("lan", "Lan IT", "secret1", authorization.RoleIT, prefixHasher{}, baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, lan))

	require.NoError(t, conn.Create(&models.UserModel{
		Username:     "gone",
		PasswordHash: "h:secret1",
		Role:         authorization.RoleStaff.String(),
		IsActive:     false,
		CreatedAt:    baseTime,
	}).Error)

	found, err := repo.GetByUsername(ctx, "lan")
	require.NoError(t, err)
	assert.Equal(t, lan.ID(), found.ID())
	assert.Equal(t, authorization.RoleIT, found.Role())
	assert.True(t, found.VerifyPassword("secret1", prefixHasher{}))

	gone, err := repo.GetByUsername(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, gone.IsActive())

	exists, err := repo.ExistsByUsername(ctx, "lan")
	require.NoError(t, err)
	assert.True(t, exists)

	dup, err := user.NewUser("lan", "", "secret1", authorization.RoleStaff, prefixHasher{}, baseTime)
	require.NoError(t, err)
	assert.True(t, errors.IsDuplicateError(repo.Create(ctx, dup)))

	byIDs, err := repo.GetByIDs(ctx, []uint{lan.ID(), 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, gone.ID()))
	_, err = repo.GetByID(ctx, gone.ID())
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, gone.ID())))
}
