// Package errors provides custom error types for invtrack.
// All service-layer errors use AppError so callers see a stable error
// code and a short message, never a raw storage engine error string.
package errors

// AppError represents a structured application error with an error code,
// human-readable message, and optional internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message but wraps an
// internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}
	ErrPermissionDenied   = &AppError{Code: "PERMISSION_DENIED", Message: "Permission denied"}
	ErrNoSession          = &AppError{Code: "NO_SESSION", Message: "No active session"}
)

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Resource not found"}
	ErrStorage      = &AppError{Code: "STORAGE_ERROR", Message: "Storage operation failed"}
)

// Item errors.
var (
	ErrItemNotFound = &AppError{Code: "ITEM_NOT_FOUND", Message: "Item not found"}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found"}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists"}
	ErrSelfDelete        = &AppError{Code: "SELF_DELETE", Message: "Cannot delete the account of the active session"}
	ErrInvalidRole       = &AppError{Code: "INVALID_ROLE", Message: "Role must be admin, manager or viewer"}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
)

// Interchange errors.
var (
	ErrExportFailed = &AppError{Code: "EXPORT_FAILED", Message: "CSV export failed"}
	ErrImportFailed = &AppError{Code: "IMPORT_FAILED", Message: "CSV import failed"}
)
