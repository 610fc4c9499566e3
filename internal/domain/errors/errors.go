package errors

import (
	"net/http"

	"authd/internal/errors"
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

// Is matches errors sharing the same business error code, so a detailed copy
// produced by WithDetails still compares equal to its predefined original.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrUsernameFormat = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_FORMAT",
		"使用者名稱長度必須介於 5 到 16 字元，僅能包含英數字與底線，且至少包含一個英數字",
		"",
	)

	ErrPasswordFormat = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORMAT",
		"密碼長度必須介於 8 到 32 字元，僅能包含英數字與底線，且至少包含一個英數字",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"使用者名稱或密碼錯誤",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"無效或已過期的權杖",
		"",
	)

	ErrSessionInactive = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INACTIVE",
		"工作階段不存在或已結束",
		"",
	)

	ErrTwoFactorCodeInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TWO_FACTOR_CODE_INVALID",
		"驗證碼錯誤",
		"",
	)

	ErrTwoFactorNotPending = NewBaseError(
		http.StatusUnauthorized,
		"TWO_FACTOR_NOT_PENDING",
		"找不到待確認的登入請求（可能已逾時）",
		"",
	)

	// Conflict-related errors
	ErrTwoFactorAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"TWO_FACTOR_ALREADY_LINKED",
		"您的帳號已綁定雙重驗證",
		"",
	)

	ErrRecoveryAlreadyPending = NewBaseError(
		http.StatusConflict,
		"RECOVERY_ALREADY_PENDING",
		"您已有一個進行中的密碼重設請求",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此使用者名稱或電子郵件已被註冊",
		"",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrNotOnConfirmationList = NewBaseError(
		http.StatusNotFound,
		"NOT_ON_CONFIRMATION_LIST",
		"您不在註冊確認名單上",
		"",
	)

	ErrRecoveryRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECOVERY_RECORD_NOT_FOUND",
		"找不到密碼重設紀錄",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	// Upstream collaborator errors
	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"確認信寄送失敗，請稍後再試",
		"",
	)

	ErrDirectoryUnavailable = NewBaseError(
		http.StatusBadGateway,
		"DIRECTORY_UNAVAILABLE",
		"使用者目錄服務暫時無法使用",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
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
