package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedRouter(roles ...entity.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		id := utils.CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID, "role": id.Role})
	})
	return r
}

func performRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testToken(t *testing.T, role entity.UserRole, ttl time.Duration, secret string) string {
	t.Helper()
	user := &entity.User{ID: 7, Role: role, BranchID: 3}
	token, err := utils.GenerateToken(user, 2, secret, ttl)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := protectedRouter()

	w := performRequest(r, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	r := protectedRouter()

	w := performRequest(r, http.MethodGet, "/protected", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	forged := testToken(t, entity.RoleAdmin, time.Hour, "some-other-secret")
	w = performRequest(r, http.MethodGet, "/protected", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired := testToken(t, entity.RoleAdmin, -time.Minute, testSecret)
	w = performRequest(r, http.MethodGet, "/protected", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesIdentityThrough(t *testing.T) {
	r := protectedRouter()

	token := testToken(t, entity.RoleCashier, time.Hour, testSecret)
	w := performRequest(r, http.MethodGet, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
	assert.Contains(t, w.Body.String(), `"role":"CASHIER"`)
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	r := protectedRouter(entity.RoleAdmin)

	admin := testToken(t, entity.RoleAdmin, time.Hour, testSecret)
	w := performRequest(r, http.MethodGet, "/protected", admin)
	assert.Equal(t, http.StatusOK, w.Code)

	cashier := testToken(t, entity.RoleCashier, time.Hour, testSecret)
	w = performRequest(r, http.MethodGet, "/protected", cashier)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
