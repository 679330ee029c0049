package errors

import (
	"fmt"
	"strings"
)

// OrphanCleanupError reports a failed removal of unreferenced objects.
// A slot replacement only logs it; an explicit sweep returns it.
type OrphanCleanupError struct {
	Bucket string
	Names  []string
	Err    error
}

// Error implements the error interface
func (e *OrphanCleanupError) Error() string {
	return fmt.Sprintf("orphan cleanup in bucket %q failed for [%s]: %v", e.Bucket, strings.Join(e.Names, ", "), e.Err)
}

// Unwrap returns the underlying object store error
func (e *OrphanCleanupError) Unwrap() error {
	return e.Err
}

// NotifyDeliveryError reports a points notification that could not be handed off or delivered.
// It is logged and never rolls back persisted points or level.
type NotifyDeliveryError struct {
	EventType string
	UserID    string
	Err       error
}

// Error implements the error interface
func (e *NotifyDeliveryError) Error() string {
	return fmt.Sprintf("notify %s for user %s failed: %v", e.EventType, e.UserID, e.Err)
}

// Unwrap returns the underlying delivery error
func (e *NotifyDeliveryError) Unwrap() error {
	return e.Err
}
