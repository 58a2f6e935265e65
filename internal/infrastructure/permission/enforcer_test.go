package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	appLogger "github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func principal(role authorization.UserRole) policy.Principal {
	return policy.Principal{UserID: 1, Role: role}
}

func TestDefaultRules(t *testing.T) {
	rules, err := DefaultRules()
	require.NoError(t, err)
	assert.Contains(t, rules, []string{"Admin", "user", "manage"})
	assert.Contains(t, rules, []string{"HR", "employee", "read"})
	assert.Equal(t, "Admin", rules[0][0])
}

func TestEnforcer_DefaultMatrix(t *testing.T) {
	e, err := NewMemoryEnforcer(appLogger.NewNopLogger())
	require.NoError(t, err)

	tests := []struct {
		role     authorization.UserRole
		action   policy.Action
		resource policy.Resource
		want     bool
	}{
		{authorization.RoleAdmin, policy.ActionManage, policy.ResourceUser, true},
		{authorization.RoleManager, policy.ActionManage, policy.ResourceUser, false},
		{authorization.RoleManager, policy.ActionManage, policy.ResourceTicket, true},
		{authorization.RoleManager, policy.ActionExport, policy.ResourceTicket, true},
		{authorization.RoleIT, policy.ActionManage, policy.ResourceTicket, false},
		{authorization.RoleIT, policy.ActionWrite, policy.ResourceAsset, true},
		{authorization.RoleIT, policy.ActionWrite, policy.ResourceCategory, true},
		{authorization.RoleHR, policy.ActionRead, policy.ResourceAsset, true},
		{authorization.RoleHR, policy.ActionWrite, policy.ResourceAsset, false},
		{authorization.RoleStaff, policy.ActionRead, policy.ResourceAsset, false},
		{authorization.RoleStaff, policy.ActionStats, policy.ResourceTicket, false},
		{authorization.RoleHR, policy.ActionWrite, policy.ResourcePrint, true},
		{authorization.RoleManager, policy.ActionStats, policy.ResourcePrint, true},
		{authorization.RoleManager, policy.ActionWrite, policy.ResourcePrint, false},
		{authorization.RoleIT, policy.ActionWrite, policy.ResourcePrint, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.resource)+":"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, e.Can(principal(tt.role), tt.action, tt.resource))
		})
	}
}

func TestEnforcer_PersistsRulesInDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, appLogger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, e.AddPolicy("HR", "ticket", "stats"))

	reopened, err := NewEnforcer(db, appLogger.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, reopened.Can(principal(authorization.RoleHR), policy.ActionStats, policy.ResourceTicket))
	assert.True(t, reopened.Can(principal(authorization.RoleAdmin), policy.ActionDelete, policy.ResourceTicket))

	require.NoError(t, reopened.RemovePolicy("HR", "ticket", "stats"))
	require.NoError(t, e.LoadPolicy())
	assert.False(t, e.Can(principal(authorization.RoleHR), policy.ActionStats, policy.ResourceTicket))
}
