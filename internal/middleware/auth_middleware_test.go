package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

const testSecret = "middleware-test-secret"

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	chain := append([]gin.HandlerFunc{AuthRequired(testSecret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  c.GetString(ContextUserUID),
			"role": c.MustGet(ContextRole),
		})
	})
	router.GET("/protected", chain...)
	return router
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	pair, err := utils.GenerateTokenPair("uid-1", "rider@example.com", string(role), "new_star", testSecret, time.Hour, time.Hour)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	router := protectedRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsNonBearerHeader(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-1")
}

func TestRoleRequiredAllowsListedRole(t *testing.T) {
	router := protectedRouter(RoleRequired(models.RoleAdmin, models.RoleSuperAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	router := protectedRouter(RoleRequired(models.RoleSuperAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUserAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredRejectsUnknownRoleString(t *testing.T) {
	// Tokens minted before a role was removed must not slip through.
	router := protectedRouter(RoleRequired(models.RoleAdmin))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.Role("moderator")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
