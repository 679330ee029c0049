package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReviewEvent is a review lifecycle event that moves a user's points
type ReviewEvent string

const (
	ReviewCreated ReviewEvent = "review_created"
	ReviewDeleted ReviewEvent = "review_deleted"
)

// PointsResult is the account state after a points delta was applied
type PointsResult struct {
	UserID    uuid.UUID `json:"user_id"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	LeveledUp bool      `json:"leveled_up"`
}

// Progress is the loyalty view shown on the profile page
type Progress struct {
	UserID            uuid.UUID `json:"user_id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Points            int       `json:"points"`
	Level             int       `json:"level"`
	PointsToNextLevel int       `json:"points_to_next_level"`
	ProgressPercent   int       `json:"progress_percent"`
}

// AccountInfo is the profile data used to open a loyalty account
type AccountInfo struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=120"`
}

// LoyaltyUsecase defines the loyalty points and level use cases
type LoyaltyUsecase interface {
	// ApplyPointsDelta adds delta to the user's points and raises the level when a boundary is crossed
	ApplyPointsDelta(ctx context.Context, userID uuid.UUID, delta int) (*PointsResult, error)

	// RecordReviewCreated awards the per-review points
	RecordReviewCreated(ctx context.Context, userID uuid.UUID) (*PointsResult, error)

	// RecordReviewDeleted takes back the per-review points
	RecordReviewDeleted(ctx context.Context, userID uuid.UUID) (*PointsResult, error)

	// GetProgress returns points, level and distance to the next level
	GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error)

	// OpenAccount creates an empty account for the user
	OpenAccount(ctx context.Context, userID uuid.UUID, info *AccountInfo) (*Progress, error)
}
