package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dishu-studio/studio-backend/services"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthRouter(t *testing.T, dbUp, redisUp bool) *gin.Engine {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	if dbUp {
		mockDB.ExpectPing()
	} else {
		mockDB.ExpectPing().WillReturnError(assert.AnError)
	}

	redisClient, redisMock := redismock.NewClientMock()
	if redisUp {
		redisMock.ExpectPing().SetVal("PONG")
	} else {
		redisMock.ExpectPing().SetErr(assert.AnError)
	}

	handler := NewHealthHandler(services.NewHealthService(mockDB, redisClient, "test"))

	r := gin.New()
	r.GET("/health", handler.DetailedHealth)
	r.GET("/health/liveness", handler.LivenessCheck)
	r.GET("/health/readiness", handler.ReadinessCheck)
	return r
}

func TestLivenessCheck(t *testing.T) {
	r := setupHealthRouter(t, true, true)

	req, _ := http.NewRequest("GET", "/health/liveness", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessCheck(t *testing.T) {
	t.Run("ready when everything is up", func(t *testing.T) {
		r := setupHealthRouter(t, true, true)

		req, _ := http.NewRequest("GET", "/health/readiness", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("503 when the database is down", func(t *testing.T) {
		r := setupHealthRouter(t, false, true)

		req, _ := http.NewRequest("GET", "/health/readiness", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestDetailedHealth(t *testing.T) {
	r := setupHealthRouter(t, true, false)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var health types.HealthCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, types.HealthStatusDown, health.Status)
	assert.Equal(t, types.HealthStatusUp, health.Components["database"].Status)
	assert.Equal(t, types.HealthStatusDown, health.Components["redis"].Status)
	assert.Equal(t, "test", health.Version)
}
