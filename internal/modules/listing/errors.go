package listing

import "errors"

var (
	ErrNotFound       = errors.New("listing not found")
	ErrSitterNotFound = errors.New("sitter not found")
	ErrNotASitter     = errors.New("user does not have sitter role permissions")
	ErrInvalidService = errors.New("invalid service type")
	ErrInvalidSize    = errors.New("invalid dog size")
	ErrInvalidPrice   = errors.New("prices must be positive")
)
