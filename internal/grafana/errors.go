package grafana

import "fmt"

// AuthError indicates the server rejected the bearer token (HTTP 401/403).
type AuthError struct {
	Status string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s (check the bearer token)", e.Status)
}

// ConnectionError indicates the server could not be reached at all.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ConflictError indicates an object with the same identifier already exists
// on the server. Grafana answers 409 for datasources and 412 for dashboards.
type ConflictError struct {
	Status string
	Body   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("object already exists: %s: %s", e.Status, e.Body)
}

// APIError covers any other non-success response from the server.
type APIError struct {
	Status string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s: %s", e.Status, e.Body)
}
