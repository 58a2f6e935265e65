package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/user/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/testutil"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	apperrors "github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type mockLoginUC struct {
	got usecases.LoginCommand
	err error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*dto.LoginResponse, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LoginResponse{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600}, nil
}

type mockUserService struct {
	listFn   func(policy.Principal) ([]*dto.UserDTO, error)
	createFn func(usecases.CreateUserCommand) (*dto.UserDTO, error)
	deleteFn func(policy.Principal, uint) error
	meFn     func(policy.Principal) (*dto.UserDTO, error)
}

func (m *mockUserService) List(_ context.Context, p policy.Principal) ([]*dto.UserDTO, error) {
	return m.listFn(p)
}

func (m *mockUserService) Create(_ context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	return m.createFn(cmd)
}

func (m *mockUserService) Delete(_ context.Context, p policy.Principal, id uint) error {
	return m.deleteFn(p, id)
}

func (m *mockUserService) Me(_ context.Context, p policy.Principal) (*dto.UserDTO, error) {
	return m.meFn(p)
}

type mockBlobs struct {
	files map[string]string
}

func (m *mockBlobs) Open(_ context.Context, objectPath string) (io.ReadCloser, error) {
	content, ok := m.files[objectPath]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockLoginUC{}
		h := NewAuthHandler(uc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/login", map[string]string{
			"username": "alice",
			"password": "secret",
		})

		h.Login(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", uc.got.Username)
		assert.Contains(t, w.Body.String(), `"access_token":"tok"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc := &mockLoginUC{err: apperrors.NewUnauthorizedError("Incorrect username or password")}
		h := NewAuthHandler(uc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/login", map[string]string{
			"username": "alice",
			"password": "wrong",
		})

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		h := NewAuthHandler(&mockLoginUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/login", map[string]string{"username": "alice"})

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Me(t *testing.T) {
	svc := &mockUserService{
		meFn: func(p policy.Principal) (*dto.UserDTO, error) {
			return &dto.UserDTO{ID: p.UserID, Username: "alice", Role: p.Role.String()}, nil
		},
	}
	h := NewUserHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users/me", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleHR)

	h.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	assert.Contains(t, w.Body.String(), `"role":"HR"`)
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got usecases.CreateUserCommand
		svc := &mockUserService{
			createFn: func(cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
				got = cmd
				return &dto.UserDTO{ID: 2, Username: cmd.Username, Role: cmd.Role}, nil
			},
		}
		h := NewUserHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", map[string]string{
			"username": "bob",
			"password": "secret1",
			"role":     "IT",
		})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

		h.CreateUser(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "bob", got.Username)
		assert.Equal(t, uint(1), got.Principal.UserID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := &mockUserService{
			createFn: func(usecases.CreateUserCommand) (*dto.UserDTO, error) {
				return nil, apperrors.NewConflictError("username already exists")
			},
		}
		h := NewUserHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", map[string]string{
			"username": "bob",
			"password": "secret1",
			"role":     "IT",
		})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

		h.CreateUser(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		h := NewUserHandler(&mockUserService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", map[string]string{
			"username": "bob",
			"password": "x",
			"role":     "IT",
		})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

		h.CreateUser(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		err      error
		wantCode int
	}{
		{name: "deleted", param: "3", wantCode: http.StatusOK},
		{name: "missing", param: "3", err: apperrors.NewNotFoundError("user not found"), wantCode: http.StatusNotFound},
		{name: "bad id", param: "x", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{
				deleteFn: func(_ policy.Principal, id uint) error {
					assert.Equal(t, uint(3), id)
					return tt.err
				},
			}
			h := NewUserHandler(svc, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodDelete, "/api/users/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

			h.DeleteUser(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestUserHandler_ListUsers_Forbidden(t *testing.T) {
	svc := &mockUserService{
		listFn: func(policy.Principal) ([]*dto.UserDTO, error) {
			return nil, apperrors.NewForbiddenError("admin only")
		},
	}
	h := NewUserHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleStaff)

	h.ListUsers(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_HealthCheck(t *testing.T) {
	h := NewUserHandler(&mockUserService{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

	h.HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAttachmentHandler_Download(t *testing.T) {
	blobs := &mockBlobs{files: map[string]string{"uploads/tickets/ticket_ab.png": "PNGDATA"}}
	h := NewAttachmentHandler(blobs, testutil.NewMockLogger())

	tests := []struct {
		name     string
		file     string
		wantCode int
		wantType string
	}{
		{name: "existing", file: "ticket_ab.png", wantCode: http.StatusOK, wantType: "image/png"},
		{name: "missing", file: "ticket_cd.png", wantCode: http.StatusNotFound},
		{name: "traversal", file: "..", wantCode: http.StatusNotFound},
		{name: "disallowed extension", file: "ticket_ab.exe", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/uploads/tickets/"+tt.file, nil)
			testutil.SetURLParam(c, "name", tt.file)

			h.Download(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
				assert.Equal(t, "PNGDATA", w.Body.String())
			}
		})
	}
}
