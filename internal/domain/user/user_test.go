package user

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

// mockPasswordHasher prefixes the password instead of hashing it.
type mockPasswordHasher struct{}

func (mockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockPasswordHasher) Verify(password, hash string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return errors.New("mismatch")
	}
	return nil
}

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" alice ", "Alice Tran", "secret1", authorization.RoleIT, mockPasswordHasher{}, now)
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "hashed:secret1", u.PasswordHash())
	assert.True(t, u.IsActive())
	assert.True(t, u.VerifyPassword("secret1", mockPasswordHasher{}))
	assert.False(t, u.VerifyPassword("wrong", mockPasswordHasher{}))
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     authorization.UserRole
	}{
		{"blank username", " ", "secret1", authorization.RoleStaff},
		{"short password", "bob", "123", authorization.RoleStaff},
		{"unknown role", "bob", "secret1", authorization.UserRole("root")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, "", tt.password, tt.role, mockPasswordHasher{}, now)
			assert.Error(t, err)
		})
	}
}

func TestDisplayName(t *testing.T) {
	u, err := ReconstructUser(1, "bob", "", "h", authorization.RoleStaff, true, now)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.DisplayName())
}
