package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/repositories/inmem"
	"github.com/psanashik/academy/internal/pkg/auth"
)

func newAuthTestRig(t *testing.T, accessExp time.Duration) (*gin.Engine, *auth.JWTService, *repositories.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := inmem.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key-not-for-production",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "academy-test",
	})

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService, repos.UserRepository).JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService, repos
}

func seedActiveUser(t *testing.T, repos *repositories.Repositories) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Admin User",
		Email:    "admin@psa-nashik.com",
		Phone:    "+919812345678",
		Password: "irrelevant-hash",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, repos.UserRepository.Create(context.Background(), user))
	return user
}

func TestJWTAuthExpiredToken(t *testing.T) {
	// Negative lifetime mints a token that is already expired.
	router, jwtService, repos := newAuthTestRig(t, -time.Minute)
	user := seedActiveUser(t, repos)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"AUTH_004"`)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestJWTAuthMalformedToken(t *testing.T) {
	router, _, _ := newAuthTestRig(t, 15*time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"AUTH_003"`)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService, repos := newAuthTestRig(t, 15*time.Minute)
	user := seedActiveUser(t, repos)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
