// Package error defines domain-specific errors for the construction ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not a positive magnitude.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category is absent.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrAttachmentTargetNotFound is returned when the attached hierarchy node is absent.
	ErrAttachmentTargetNotFound = errors.New("attachment target not found")

	// ErrEmptyGenerationDirectives is returned when bulk generation is requested with no directives.
	ErrEmptyGenerationDirectives = errors.New("no generation directives provided")

	// ErrGenerationFailed is returned when bulk generation could not commit; no
	// transactions are created in that case.
	ErrGenerationFailed = errors.New("transaction generation failed, nothing was created")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeAttachmentTargetNotFound TransactionErrorCode = "TXN-010005"
	ErrCodeEmptyDirectives          TransactionErrorCode = "TXN-020001"
	ErrCodeGenerationFailed         TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
