package employee

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk-inc/opsdesk/internal/application/employee/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/testutil"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type mockListUC struct {
	got usecases.ListEmployeesQuery
	err error
}

func (m *mockListUC) Execute(_ context.Context, q usecases.ListEmployeesQuery) ([]employee.Employee, error) {
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	return []employee.Employee{{EmployeeID: "E001", Name: "Ana", Department: "IT"}}, nil
}

func TestEmployeeHandler_ListEmployees(t *testing.T) {
	uc := &mockListUC{}
	h := NewEmployeeHandler(uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/employees", nil)
	testutil.SetQueryParams(c, map[string]string{"search": "ana", "department": "IT"})
	testutil.SetAuthContext(c, 3, authorization.RoleHR)

	h.ListEmployees(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", uc.got.Search)
	assert.Equal(t, "IT", uc.got.Department)
	assert.Equal(t, authorization.RoleHR, uc.got.Principal.Role)
	assert.Contains(t, w.Body.String(), `"employee_id":"E001"`)
}

func TestEmployeeHandler_ListEmployees_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "directory down", err: errors.NewServiceUnavailableError("HR system is unreachable"), wantCode: http.StatusServiceUnavailable},
		{name: "denied", err: errors.NewForbiddenError("Permission denied"), wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEmployeeHandler(&mockListUC{err: tt.err}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/api/employees", nil)
			testutil.SetAuthContext(c, 3, authorization.RoleStaff)

			h.ListEmployees(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
