package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when an operation requires a session
	// token and none is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthenticationFailed covers rejected credentials and registration
	// conflicts. The wrapping error carries the backend detail.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrUnsupportedOperation is returned on a capability mismatch, e.g. a
	// per-item operation against a bulk provider. Callers fall back to the
	// full bulk sync.
	ErrUnsupportedOperation = errors.New("operation not supported by this provider, use full sync")

	// ErrNoRefreshToken is returned by RefreshAccessToken when the
	// authorization server never issued a refresh token.
	ErrNoRefreshToken = errors.New("no refresh token available")
)

// RemoteError is a non-2xx transport response surfaced with its body so the
// UI can show the backend's own message verbatim.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote rejected request: http %d", e.Status)
	}
	return fmt.Sprintf("remote rejected request: http %d: %s", e.Status, e.Body)
}

// SchemaError reports that the relational backend has no tables and no way
// to self-heal. DDL holds the complete statements a human operator must run;
// Error renders step-by-step instructions around them.
type SchemaError struct {
	DDL string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"database tables not found and no direct connection is configured.\n\n"+
			"Create them manually:\n"+
			"1. Open your database's SQL console\n"+
			"2. Paste the SQL below\n"+
			"3. Run it, then retry the schema check\n\n"+
			"SQL to run:\n%s",
		e.DDL,
	)
}
