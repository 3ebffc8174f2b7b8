package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/controllers"
	"github.com/psanashik/academy/internal/app/repositories/inmem"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
	"github.com/psanashik/academy/internal/pkg/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := inmem.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key-not-for-production",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "academy-test",
	})
	svcs := services.NewServices(repos, jwtService, aggregate.AttendancePolicy{})

	router := gin.New()
	SetupRouter(router, controllers.NewControllers(svcs), middleware.NewAuthMiddleware(jwtService, repos.UserRepository))
	return router
}

// Deployment probes hit /health at the root; /api/health stays available for
// clients that prefix every call.
func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"AUTH_006"`)
}
