package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type memoryUserRepository struct {
	users  map[uint]*user.User
	nextID uint
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uint]*user.User)}
}

func (m *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.ID()] = u
	return nil
}

func (m *memoryUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *memoryUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *memoryUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *memoryUserRepository) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *memoryUserRepository) Delete(ctx context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

// plainHasher prefixes the password so tests avoid bcrypt cost.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "plain:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(userID uint, username string, role authorization.UserRole) (string, int64, error) {
	if s.err != nil {
		return "", 0, s.err
	}
	return strings.Join([]string{"token", username, role.String()}, "."), 3600, nil
}

func testChecker() policy.Checker {
	return policy.NewStaticChecker([]policy.Rule{
		{Role: authorization.RoleAdmin, Resource: policy.ResourceUser, Action: policy.ActionManage},
	})
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}
