package services

import (
	"fmt"

	"github.com/camden-git/paranuarabackend/repository"
)

// SubjectRole names which side of a common-friends query failed to resolve.
type SubjectRole string

const (
	SubjectA SubjectRole = "A"
	SubjectB SubjectRole = "B"
)

// SubjectNotFoundError reports a common-friends subject that does not exist.
type SubjectNotFoundError struct {
	Role  SubjectRole
	Index int
}

func (e *SubjectNotFoundError) Error() string {
	return fmt.Sprintf("subject %s: person %d does not exist", e.Role, e.Index)
}

// Unwrap lets callers treat a missing subject as an ordinary not-found.
func (e *SubjectNotFoundError) Unwrap() error {
	return repository.ErrNotFound
}

// InvalidFilterError reports a filter or flag value the calling layer could not interpret.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}
