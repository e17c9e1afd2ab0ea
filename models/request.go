package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HTTP methods accepted by the request editor and the runner.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
)

// Request body kinds for RequestBody.Kind.
const (
	BodyRaw        = "raw"
	BodyJSON       = "json"
	BodyFormData   = "form_data"
	BodyURLEncoded = "url_encoded"
)

// Headers is a header or variable map stored as a JSON column locally.
type Headers map[string]string

// Value implements driver.Valuer.
func (h Headers) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal(Headers{})
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner.
func (h *Headers) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = Headers{}
		return nil
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported headers column type %T", src)
	}
}

// RequestBody is the outbound payload of a saved request. Kind selects which
// of the remaining fields is meaningful.
type RequestBody struct {
	Kind        string          `json:"kind"`
	Content     string          `json:"content,omitempty"`
	ContentType string          `json:"content_type,omitempty"`
	JSON        json.RawMessage `json:"json,omitempty"`
	Form        Headers         `json:"form,omitempty"`
}

// Value implements driver.Valuer so bodies can be stored as JSON columns.
func (b RequestBody) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSON-encoded body columns.
func (b *RequestBody) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("unsupported request body column type %T", src)
	}
}

// HTTPRequest is a saved request definition, optionally belonging to a
// collection.
type HTTPRequest struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Method       string       `json:"method"`
	URL          string       `json:"url"`
	Headers      Headers      `json:"headers"`
	Body         *RequestBody `json:"body,omitempty"`
	CollectionID *uuid.UUID   `json:"collection_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	SyncMeta
}

// NewHTTPRequest creates an unsynced local request with a fresh id.
func NewHTTPRequest(name, method, url string) HTTPRequest {
	now := time.Now().UTC()
	return HTTPRequest{
		ID:        NewID(),
		Name:      name,
		Method:    method,
		URL:       url,
		Headers:   Headers{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HTTPResponse captures the outcome of executing a request.
type HTTPResponse struct {
	Status       int     `json:"status"`
	StatusText   string  `json:"status_text"`
	Headers      Headers `json:"headers"`
	Body         string  `json:"body"`
	ResponseTime int64   `json:"response_time"` // milliseconds
	Size         int     `json:"size"`          // bytes
}
