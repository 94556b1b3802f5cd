package errors

import "fmt"

// ErrNotFound is returned when a record addressed by id does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when validation fails
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrPersistence is returned when the backing store fails during
// create/update/delete/list; it wraps the driver error
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error {
	return e.Err
}

// ErrConfirmationRequired is returned when a delete is issued without the
// caller confirming it first; nothing has been sent to the store
type ErrConfirmationRequired struct {
	Resource string
	ID       string
}

func (e *ErrConfirmationRequired) Error() string {
	return fmt.Sprintf("deleting %s %s requires confirmation", e.Resource, e.ID)
}

// ErrNothingToExport is returned when an export is requested on an empty list
type ErrNothingToExport struct{}

func (e *ErrNothingToExport) Error() string {
	return "nothing to export"
}
