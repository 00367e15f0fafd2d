package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString(CtxUserIDKey),
			"user_name": c.GetString(CtxUserNameKey),
		})
	})
	r.POST("/login", RedirectIfAuthenticated(jwt), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func issueToken(t *testing.T, jwt *helpers.JWTManager) string {
	t.Helper()
	token, _, err := jwt.Generate(&entity.User{ID: "u-1", Email: "alice@example.com", Name: "alice"})
	require.NoError(t, err)
	return token
}

func TestRequireAuthNoToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestRequireAuthBearerToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"user_name":"alice"`)
}

func TestRequireAuthCookieToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: issueToken(t, jwt)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	token := issueToken(t, expired)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthTamperedToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt)+"x")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	// anonymous requests pass through
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// a live session gets bounced home
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: issueToken(t, jwt)})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticatedInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: "garbage"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
