package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPhone is returned when the phone number does not match a
	// registered country pattern.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrPhoneTaken is returned when registering with a phone number already in use.
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token is supplied on a guarded route.
	ErrMissingToken = errors.New("missing authorization token")

	// ErrUserInactive is returned when an inactive user attempts to log in.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrRateLimited is returned when login attempts exceed the allowed rate.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeInvalidPhone       AuthErrorCode = "AUTH-010001"
	ErrCodePhoneTaken         AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010004"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010005"
	ErrCodeUserInactive       AuthErrorCode = "AUTH-010006"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010007"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010008"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
