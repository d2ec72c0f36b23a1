package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-api/controllers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	return SetupRouter(
		&controllers.HotelController{},
		&controllers.RoomController{},
		&controllers.GuestController{},
		&controllers.ServiceController{},
		&controllers.AuthController{Secret: "test-secret"},
		zerolog.Nop(),
		"test-secret",
	)
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedServiceRoutesRejectAnonymousCalls(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/api/services/all", "/api/services/1/hotels"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
