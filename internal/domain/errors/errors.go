package errors

import (
	"net/http"

	"beacon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserSuspended = NewBaseError(
		http.StatusForbidden,
		"USER_SUSPENDED",
		"此帳號已被停權",
		"",
	)

	// Friendship-related errors
	ErrFriendRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIEND_REQUEST_NOT_FOUND",
		"找不到該好友邀請",
		"",
	)

	ErrFriendshipNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIENDSHIP_NOT_FOUND",
		"找不到該好友關係",
		"",
	)

	ErrFriendRequestConflict = NewBaseError(
		http.StatusConflict,
		"FRIEND_REQUEST_CONFLICT",
		"好友邀請已存在",
		"",
	)

	ErrFriendRequestPending = NewBaseError(
		http.StatusConflict,
		"FRIEND_REQUEST_PENDING",
		"對方已向您發出好友邀請，請直接接受該邀請",
		"",
	)

	ErrFriendRequestBlocked = NewBaseError(
		http.StatusConflict,
		"FRIEND_REQUEST_BLOCKED",
		"無法向此使用者發出好友邀請",
		"",
	)

	ErrSelfFriendRequest = NewBaseError(
		http.StatusBadRequest,
		"SELF_FRIEND_REQUEST",
		"無法加自己為好友",
		"",
	)

	ErrNotRequestRecipient = NewBaseError(
		http.StatusForbidden,
		"NOT_REQUEST_RECIPIENT",
		"只有被邀請方可以回應好友邀請",
		"",
	)

	ErrNotFriends = NewBaseError(
		http.StatusForbidden,
		"NOT_FRIENDS",
		"你們目前不是好友",
		"",
	)

	// Location-related errors
	ErrLocationNotVisible = NewBaseError(
		http.StatusForbidden,
		"LOCATION_NOT_VISIBLE",
		"無法查看此好友的位置",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"無效的座標",
		"",
	)

	ErrInvalidTrackDuration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRACK_DURATION",
		"無效的追蹤時間",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
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
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
