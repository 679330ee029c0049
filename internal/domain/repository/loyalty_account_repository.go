package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for loyalty account persistence.
var (
	// ErrAccountNotFound is returned when no account exists for a user.
	ErrAccountNotFound = errors.New("loyalty account not found")
	// ErrDuplicateAccount is returned when creating an account that already exists.
	ErrDuplicateAccount = errors.New("loyalty account already exists")
	// ErrVersionConflict is returned when a conditional update finds a newer version.
	ErrVersionConflict = errors.New("loyalty account version conflict")
)

// LoyaltyAccountRepository defines the data store operations on loyalty accounts.
type LoyaltyAccountRepository interface {
	// FindByUserID retrieves the account of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)

	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error

	// SaveProgress writes points and level when the stored version still equals expectedVersion,
	// and advances account.Version. It returns ErrVersionConflict otherwise.
	SaveProgress(ctx context.Context, account *entity.LoyaltyAccount, expectedVersion int64) error
}
