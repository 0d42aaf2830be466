package catalog

import "errors"

var (
	// ErrVariantNotFound indicates the variant id is not in the catalog.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrInvalidCatalog indicates the catalog definition is malformed.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
