package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors (presentation layer; the store accepts anything)
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrEmptyName       = fmt.Errorf("name must not be empty")
	ErrInvalidPrice    = fmt.Errorf("invalid price")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Lookup errors (CLI-facing; store mutations on unknown ids are no-ops)
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
)
