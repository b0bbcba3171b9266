package service

// Sanitizer strips unsafe HTML from user-supplied text before storage.
type Sanitizer interface {
	// Sanitize returns the input with all HTML markup removed.
	Sanitize(input string) string
}
