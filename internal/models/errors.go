package models

import "errors"

// Errors returned by every store implementation.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)
