package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidCatalog     = "CAT001"
	ErrCodeRestaurantNotFound = "CAT002"
)

// Errors
var (
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// CatalogError custom error type
type CatalogError struct {
	Code    string
	Message string
	Err     error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewInvalidCatalogError(cause error) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeInvalidCatalog,
		Message: "Catalog source is malformed or not an array",
		Err:     errors.Join(ErrInvalidCatalog, cause),
	}
}

func NewRestaurantNotFoundError(id string) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeRestaurantNotFound,
		Message: fmt.Sprintf("Restaurant %q not found", id),
		Err:     ErrRestaurantNotFound,
	}
}
