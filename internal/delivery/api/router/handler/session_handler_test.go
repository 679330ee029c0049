package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSessionHandler_Me(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	h := NewSessionHandler()

	e := newTestEcho()
	e.GET("/me", h.Me, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetCaller(c, userID, "admin@example.com", entity.Roles{entity.RoleAdmin})

			return next(c)
		}
	})
	e.GET("/anonymous", h.Me)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		UserID uuid.UUID `json:"user_id"`
		Email  string    `json:"email"`
		Roles  []string  `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, []string{"admin"}, got.Roles)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
