package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError represents authentication-specific errors
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a wrong password
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the embedded AppError
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not reveal whether the username or the password was wrong
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		},
	}
}

// NewAccountInactiveError creates an error for disabled accounts
func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountInactive,
			Message: "Account is not active",
			Code:    http.StatusForbidden,
			Details: "Contact an administrator to re-enable this account",
		},
	}
}

// NewTokenInvalidError creates an error for tokens that fail verification
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid or expired token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from the error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether the authentication error deserves a log line
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
