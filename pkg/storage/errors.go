package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the backend answers 404 or a JSON null for an entity.
	ErrNotFound = errors.New("[storage] entity not found")
	// ErrInvalidCurrency is returned for currency segments outside the configured set.
	ErrInvalidCurrency = errors.New("[storage] invalid currency")
	// ErrInvalidDirection is returned for egonet directions other than in, out or all.
	ErrInvalidDirection = errors.New("[storage] invalid direction (can be in, out or all)")
	// ErrResponseTooLarge is returned when a backend answer exceeds the read limit.
	ErrResponseTooLarge = errors.New("[storage] response too large")
)

const maxErrorBody = 512

// RemoteError describes a failed call to the storage backend: transport failures,
// non-2xx answers and bodies that are not valid JSON.
type RemoteError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *RemoteError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}

	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("[storage] GET %s returned %d: %v", e.URL, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("[storage] GET %s returned %d: %s", e.URL, e.Status, body)
	default:
		return fmt.Sprintf("[storage] GET %s: %v", e.URL, e.Err)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call failed because the deadline elapsed.
func (e *RemoteError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) {
		return t.Timeout()
	}
	return false
}
