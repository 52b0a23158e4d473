package catalog

import "errors"

// Domain errors
var (
	// ErrMissingHeader - the workbook has no usable header row
	ErrMissingHeader = errors.New("catalog: missing header row")

	// ErrMissingCodeColumn - the workbook has no SKU/code column
	ErrMissingCodeColumn = errors.New("catalog: missing code column")
)
