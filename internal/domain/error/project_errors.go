package error

import "errors"

// Project hierarchy domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrSiteNotFound is returned when a site is not found.
	ErrSiteNotFound = errors.New("site not found")

	// ErrStageNotFound is returned when a stage is not found.
	ErrStageNotFound = errors.New("stage not found")

	// ErrStageOrderTaken is returned when a stage order collides within its site.
	ErrStageOrderTaken = errors.New("stage order already used within this site")

	// ErrContractorNotFound is returned when the project's contractor user is absent.
	ErrContractorNotFound = errors.New("contractor not found")
)

// ProjectErrorCode defines error codes for hierarchy errors.
type ProjectErrorCode string

const (
	ErrCodeProjectNotFound    ProjectErrorCode = "PRJ-010001"
	ErrCodeSiteNotFound       ProjectErrorCode = "PRJ-010002"
	ErrCodeStageNotFound      ProjectErrorCode = "PRJ-010003"
	ErrCodeStageOrderTaken    ProjectErrorCode = "PRJ-010004"
	ErrCodeContractorNotFound ProjectErrorCode = "PRJ-010005"
)

// ProjectError represents a hierarchy error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
