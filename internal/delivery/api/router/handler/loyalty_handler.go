package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// LoyaltyHandler holds dependencies for loyalty handlers
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// OpenAccountRequest represents the request body for opening an account
type OpenAccountRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name" validate:"max=120"`
}

// ReviewEventRequest represents a review lifecycle event reported by the shop
type ReviewEventRequest struct {
	Event usecase.ReviewEvent `json:"event" validate:"required,oneof=review_created review_deleted"`
}

// AdjustmentRequest represents a manual points adjustment
type AdjustmentRequest struct {
	UserID string `param:"userId" validate:"required,uuid"`
	Delta  int    `json:"delta" validate:"required"`
}

// OpenAccount creates the caller's loyalty account
func (h *LoyaltyHandler) OpenAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req OpenAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	info := &usecase.AccountInfo{Email: req.Email, Name: req.Name}
	if info.Email == "" {
		info.Email = middleware.GetEmail(c)
	}

	progress, err := h.loyaltyUC.OpenAccount(c.Request().Context(), userID, info)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, progress)
}

// GetProgress returns the caller's points and level
func (h *LoyaltyHandler) GetProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	progress, err := h.loyaltyUC.GetProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// RecordReviewEvent moves the caller's points for a created or deleted review
func (h *LoyaltyHandler) RecordReviewEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req ReviewEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review event")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()

	var (
		result *usecase.PointsResult
		err    error
	)
	switch req.Event {
	case usecase.ReviewCreated:
		result, err = h.loyaltyUC.RecordReviewCreated(ctx, userID)
	case usecase.ReviewDeleted:
		result, err = h.loyaltyUC.RecordReviewDeleted(ctx, userID)
	default:
		return response.BadRequest(c, "VALIDATION_ERROR", "Unknown review event")
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// AdjustPoints applies an operator adjustment to any account
func (h *LoyaltyHandler) AdjustPoints(c echo.Context) error {
	var req AdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID format")
	}

	result, err := h.loyaltyUC.ApplyPointsDelta(c.Request().Context(), userID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
