package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.GET("/probe/:id", append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})...)
	return engine
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 10)
	token, _, err := jwtSvc.Issue(5, "alice", authorization.RoleIT)
	require.NoError(t, err)

	engine := newEngine(NewAuthMiddleware(jwtSvc, logger.NewNopLogger()).RequireAuth())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":5,"role":"IT"}`, w.Body.String())
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	checker := policy.NewStaticChecker([]policy.Rule{
		{Role: authorization.RoleAdmin, Resource: policy.ResourceUser, Action: policy.ActionManage},
	})
	perm := NewPermissionMiddleware(checker, logger.NewNopLogger())

	withRole := func(role authorization.UserRole) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, uint(1))
			c.Set(constants.ContextKeyUserRole, role.String())
		}
	}

	admin := newEngine(withRole(authorization.RoleAdmin), perm.RequirePermission(policy.ResourceUser, policy.ActionManage))
	staff := newEngine(withRole(authorization.RoleStaff), perm.RequirePermission(policy.ResourceUser, policy.ActionManage))
	anonymous := newEngine(perm.RequirePermission(policy.ResourceUser, policy.ActionManage))

	for name, tc := range map[string]struct {
		engine *gin.Engine
		status int
	}{
		"admin allowed":    {admin, http.StatusOK},
		"staff forbidden":  {staff, http.StatusForbidden},
		"no principal 401": {anonymous, http.StatusUnauthorized},
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe/1", nil))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	engine := newEngine(CORS([]string{"http://desk.local"}))

	preflight := httptest.NewRequest(http.MethodOptions, "/probe/1", nil)
	preflight.Header.Set("Origin", "http://desk.local")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://desk.local", w.Header().Get("Access-Control-Allow-Origin"))

	foreign := httptest.NewRequest(http.MethodGet, "/probe/1", nil)
	foreign.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, foreign)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeObserver struct {
	got []recordedRequest
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	engine := gin.New()
	engine.Use(Metrics(obs))
	engine.GET("/api/tickets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tickets/42", nil))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, obs.got, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/tickets/:id", http.StatusOK}, obs.got[0])
	assert.Equal(t, "", obs.got[1].route)
	assert.Equal(t, http.StatusNotFound, obs.got[1].status)
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(client, "login", 2, time.Minute, logger.NewNopLogger())
	engine := newEngine(limiter.Limit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe/1", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_DisabledWithoutRedis(t *testing.T) {
	engine := newEngine(NewRateLimiter(nil, "login", 1, time.Minute, logger.NewNopLogger()).Limit())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
