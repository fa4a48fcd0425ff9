// Package services holds the error contract shared by the resource
// services under it.
package services

import "fmt"

// ValidationError rejects one request field with a human-readable
// message. It is recoverable: the handler maps it to a 400 with the
// field name so the form can show it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ServiceError wraps a repository or infrastructure failure with the
// operation that produced it.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service [%s]: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
