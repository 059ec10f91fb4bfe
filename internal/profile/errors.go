package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when appending a profile whose name
	// already has a section in the target file
	ErrDuplicateName = errors.New("profile already exists")

	// ErrProfileNotFound is returned when a requested profile name has no
	// section in the config file
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCredentialsNotFound is returned when a standard profile has no
	// section in the credentials file
	ErrCredentialsNotFound = errors.New("credentials not found")
)

// ValidationError reports a rejected user input for a named field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
