package error

import "errors"

// Estimate and line item domain errors.
var (
	// ErrEstimateNotFound is returned when an estimate is not found.
	ErrEstimateNotFound = errors.New("estimate not found")

	// ErrEstimateItemNotFound is returned when a line item is not found.
	ErrEstimateItemNotFound = errors.New("estimate item not found")

	// ErrInvalidEstimateStatus is returned when the status value is unknown.
	ErrInvalidEstimateStatus = errors.New("invalid estimate status")

	// ErrInvalidIncomeType is returned when the income type is unknown.
	ErrInvalidIncomeType = errors.New("invalid income type")

	// ErrNegativeQuantity is returned when a line item quantity is below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrInvalidAudience is returned when an export audience is unknown.
	ErrInvalidAudience = errors.New("invalid export audience")
)

// EstimateErrorCode defines error codes for estimate errors.
type EstimateErrorCode string

const (
	ErrCodeEstimateNotFound      EstimateErrorCode = "EST-010001"
	ErrCodeEstimateItemNotFound  EstimateErrorCode = "EST-010002"
	ErrCodeInvalidEstimateStatus EstimateErrorCode = "EST-010003"
	ErrCodeInvalidIncomeType     EstimateErrorCode = "EST-010004"
	ErrCodeNegativeQuantity      EstimateErrorCode = "EST-010005"
	ErrCodeInvalidAudience       EstimateErrorCode = "EST-010006"
)

// EstimateError represents an estimate error with code and message.
type EstimateError struct {
	Code    EstimateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EstimateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EstimateError) Unwrap() error {
	return e.Err
}

// NewEstimateError creates a new EstimateError with the given code and message.
func NewEstimateError(code EstimateErrorCode, message string, err error) *EstimateError {
	return &EstimateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
