package templates

import "fmt"

// RemoteError is returned when the catalog endpoint answers
// with a non-success status.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to fetch templates: status %d", e.StatusCode)
}

// ParseError is returned when the catalog response is not a
// JSON array of {name, type} objects.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed template listing: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a template body cannot be
// downloaded.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template '%s' not found", e.Name)
}
