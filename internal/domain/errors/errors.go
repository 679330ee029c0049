package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Media pipeline errors
	ErrUnsupportedFormat = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FORMAT",
		"The file is not a supported image",
	)

	ErrSourceTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"SOURCE_TOO_LARGE",
		"The image has too many pixels",
	)

	ErrCompressionFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"COMPRESSION_FAILED",
		"The image could not be compressed",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"The image could not be uploaded",
	)

	ErrUnknownAssetCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ASSET_CATEGORY",
		"Unknown asset category",
	)

	ErrSlotNotFound = NewBaseError(
		http.StatusNotFound,
		"SLOT_NOT_FOUND",
		"Image slot not found",
	)

	ErrInvalidSlotKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SLOT_KEY",
		"Invalid image slot key",
	)

	ErrSlotPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"SLOT_PERSIST_FAILED",
		"The image slot could not be updated",
	)

	ErrGalleryNotFound = NewBaseError(
		http.StatusNotFound,
		"GALLERY_NOT_FOUND",
		"Image gallery not found",
	)

	ErrInvalidGalleryKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GALLERY_KEY",
		"Invalid image gallery key",
	)

	ErrTooManyImages = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_IMAGES",
		"The gallery holds too many images",
	)

	ErrGalleryPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"GALLERY_PERSIST_FAILED",
		"The image gallery could not be updated",
	)

	// Loyalty errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Loyalty account not found",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"Loyalty account already exists",
	)

	ErrConcurrentUpdate = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_UPDATE",
		"The account changed while updating, please retry",
	)

	ErrInvalidBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_BALANCE",
		"Points and level must not be negative",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
	)
)

// DatabaseExecuteError is a Data Store failure surfaced as a 500 without exposing the driver error
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError wraps a Data Store error raised while performing operation
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "%s: database execution failed", e.operation).Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
