package repository

import "errors"

// ErrNotFound is returned by any backend when no record matches.
var ErrNotFound = errors.New("record not found")
