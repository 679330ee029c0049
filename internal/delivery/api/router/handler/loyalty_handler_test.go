package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLoyaltyHandler(t *testing.T) (*LoyaltyHandler, *mockUsecase.MockLoyaltyUsecase) {
	loyaltyUC := mockUsecase.NewMockLoyaltyUsecase(t)

	return NewLoyaltyHandler(LoyaltyHandlerParams{LoyaltyUC: loyaltyUC, Logger: discardLogger()}), loyaltyUC
}

// asCaller injects an authenticated caller ahead of the handler.
func asCaller(userID uuid.UUID, email string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID != uuid.Nil {
				middleware.SetCaller(c, userID, email, entity.Roles{entity.RoleCustomer})
			}

			return next(c)
		}
	}
}

func serveJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestLoyaltyHandler_OpenAccount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		caller     uuid.UUID
		body       string
		setup      func(loyaltyUC *mockUsecase.MockLoyaltyUsecase)
		wantStatus int
	}{
		{
			name:   "email defaults to the token email",
			caller: userID,
			body:   `{"name":"Lucia"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().
					OpenAccount(mock.Anything, userID, &usecase.AccountInfo{Email: "lucia@example.com", Name: "Lucia"}).
					Return(&usecase.Progress{UserID: userID, Email: "lucia@example.com", PointsToNextLevel: 100}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "explicit email wins",
			caller: userID,
			body:   `{"email":"shop@example.com"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().
					OpenAccount(mock.Anything, userID, &usecase.AccountInfo{Email: "shop@example.com"}).
					Return(&usecase.Progress{UserID: userID, Email: "shop@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid email",
			caller:     userID,
			body:       `{"email":"not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "account exists",
			caller: userID,
			body:   `{}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().OpenAccount(mock.Anything, userID, mock.Anything).
					Return(nil, domainerrors.ErrAccountAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "no caller",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, loyaltyUC := newTestLoyaltyHandler(t)
			if tt.setup != nil {
				tt.setup(loyaltyUC)
			}

			e := newTestEcho()
			e.POST("/loyalty/account", h.OpenAccount, asCaller(tt.caller, "lucia@example.com"))

			rec := serveJSON(e, http.MethodPost, "/loyalty/account", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoyaltyHandler_GetProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	h, loyaltyUC := newTestLoyaltyHandler(t)
	loyaltyUC.EXPECT().GetProgress(mock.Anything, userID).Return(&usecase.Progress{
		UserID:            userID,
		Points:            137,
		Level:             1,
		PointsToNextLevel: 63,
		ProgressPercent:   37,
	}, nil)

	e := newTestEcho()
	e.GET("/loyalty/account", h.GetProgress, asCaller(userID, ""))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/loyalty/account", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.Progress
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, 137, got.Points)
	assert.Equal(t, 63, got.PointsToNextLevel)
}

func TestLoyaltyHandler_RecordReviewEvent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(loyaltyUC *mockUsecase.MockLoyaltyUsecase)
		wantStatus int
		wantResult *usecase.PointsResult
	}{
		{
			name: "created review crosses a level",
			body: `{"event":"review_created"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().RecordReviewCreated(mock.Anything, userID).
					Return(&usecase.PointsResult{UserID: userID, Points: 100, Level: 1, LeveledUp: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantResult: &usecase.PointsResult{UserID: userID, Points: 100, Level: 1, LeveledUp: true},
		},
		{
			name: "deleted review keeps the level",
			body: `{"event":"review_deleted"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().RecordReviewDeleted(mock.Anything, userID).
					Return(&usecase.PointsResult{UserID: userID, Points: 95, Level: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantResult: &usecase.PointsResult{UserID: userID, Points: 95, Level: 1},
		},
		{
			name:       "unknown event",
			body:       `{"event":"review_liked"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no account",
			body: `{"event":"review_created"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().RecordReviewCreated(mock.Anything, userID).Return(nil, domainerrors.ErrAccountNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "lost the version race",
			body: `{"event":"review_created"}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().RecordReviewCreated(mock.Anything, userID).Return(nil, domainerrors.ErrConcurrentUpdate)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, loyaltyUC := newTestLoyaltyHandler(t)
			if tt.setup != nil {
				tt.setup(loyaltyUC)
			}

			e := newTestEcho()
			e.POST("/loyalty/account/events", h.RecordReviewEvent, asCaller(userID, ""))

			rec := serveJSON(e, http.MethodPost, "/loyalty/account/events", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantResult == nil {
				return
			}

			var got usecase.PointsResult
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
			assert.Equal(t, *tt.wantResult, got)
		})
	}
}

func TestLoyaltyHandler_AdjustPoints(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(loyaltyUC *mockUsecase.MockLoyaltyUsecase)
		wantStatus int
	}{
		{
			name:   "applies the delta",
			target: userID.String(),
			body:   `{"delta":-5}`,
			setup: func(loyaltyUC *mockUsecase.MockLoyaltyUsecase) {
				loyaltyUC.EXPECT().ApplyPointsDelta(mock.Anything, userID, -5).
					Return(&usecase.PointsResult{UserID: userID, Points: 0}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero delta",
			target:     userID.String(),
			body:       `{"delta":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid user id",
			target:     "not-a-uuid",
			body:       `{"delta":5}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, loyaltyUC := newTestLoyaltyHandler(t)
			if tt.setup != nil {
				tt.setup(loyaltyUC)
			}

			e := newTestEcho()
			e.POST("/loyalty/accounts/:userId/adjustments", h.AdjustPoints)

			rec := serveJSON(e, http.MethodPost, "/loyalty/accounts/"+tt.target+"/adjustments", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
