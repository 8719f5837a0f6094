package opendota

import "fmt"

// ErrNotFound is returned when the API responds 404, e.g. for an unknown or
// private match ID.
var ErrNotFound = fmt.Errorf("not found")

// APIError is a non-2xx response other than 404.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("opendota api status %d: %s", e.Status, e.Body)
}
