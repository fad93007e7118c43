package error

import "errors"

// Catalog domain errors.
var (
	// ErrPriceItemNotFound is returned when a price item is not found.
	ErrPriceItemNotFound = errors.New("price item not found")

	// ErrInvalidPriceItemKind is returned when the kind is neither material nor work.
	ErrInvalidPriceItemKind = errors.New("price item must reference either a material type or a work type")

	// ErrPriceItemTypeNotFound is returned when the referenced material or work type is absent.
	ErrPriceItemTypeNotFound = errors.New("referenced catalog type not found")

	// ErrMaterialTypeNotFound is returned when a material type is not found.
	ErrMaterialTypeNotFound = errors.New("material type not found")

	// ErrWorkTypeNotFound is returned when a work type is not found.
	ErrWorkTypeNotFound = errors.New("work type not found")

	// ErrCatalogNameTaken is returned on unique name violations for catalog entries.
	ErrCatalogNameTaken = errors.New("name already in use")

	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when deleting a category referenced by transactions.
	ErrCategoryInUse = errors.New("category is referenced by transactions")
)

// CatalogErrorCode defines error codes for catalog errors.
type CatalogErrorCode string

const (
	ErrCodePriceItemNotFound     CatalogErrorCode = "CAT-010001"
	ErrCodeInvalidPriceItemKind  CatalogErrorCode = "CAT-010002"
	ErrCodePriceItemTypeNotFound CatalogErrorCode = "CAT-010003"
	ErrCodeCatalogNameTaken      CatalogErrorCode = "CAT-010004"
	ErrCodeCategoryNotFound      CatalogErrorCode = "CAT-010005"
	ErrCodeCategoryInUse         CatalogErrorCode = "CAT-010006"
)

// CatalogError represents a catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
