package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/dishu-studio/studio-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", handler)
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("translates validation errors to 400 with details", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(apperrors.ValidationFailed("validation_failed", "name must not be blank"))
		})

		w := doGet(r)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(apperrors.ValidationError), resp["type"])
		assert.Equal(t, "name must not be blank", resp["details"])
	})

	t.Run("translates booking not found to 404", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(apperrors.BookingNotFound("b-404"))
		})

		w := doGet(r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("database errors are sanitized", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(apperrors.NewDatabaseError(errors.New("pq: relation bookings does not exist")))
		})

		w := doGet(r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation bookings")
	})

	t.Run("unknown errors become a 500 envelope", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(errors.New("something odd"))
		})

		w := doGet(r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(apperrors.ServerError), resp["type"])
	})

	t.Run("no errors leaves the response alone", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := doGet(r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when the client sends none", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/test", func(c *gin.Context) {
			id, exists := c.Get(RequestIDKey)
			assert.True(t, exists)
			assert.NotEmpty(t, id)
			c.Status(http.StatusOK)
		})

		w := doGet(r)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an id set by a proxy", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-id", w.Header().Get("X-Request-ID"))
	})
}
