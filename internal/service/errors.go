package service

import "errors"

// ErrNoProvider is returned by sync operations invoked before a provider was
// initialized or after logout.
var ErrNoProvider = errors.New("no sync provider configured")
