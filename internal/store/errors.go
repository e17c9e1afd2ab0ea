package store

import "errors"

// ErrNotFound is returned when a record does not exist locally. The merge
// path relies on it to distinguish insert from overwrite.
var ErrNotFound = errors.New("record not found")
