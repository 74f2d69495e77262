package models

import (
	"errors"
	"fmt"
)

// ErrorKind tags a DomainError so the HTTP boundary can map it to a status
// code with an exhaustive switch instead of type assertions.
type ErrorKind string

const (
	ErrKindEntityNotFound   ErrorKind = "ENTITY_NOT_FOUND"
	ErrKindDuplicateEntity  ErrorKind = "DUPLICATE_ENTITY"
	ErrKindMembershipExists ErrorKind = "MEMBERSHIP_ALREADY_EXISTS"
	ErrKindCapacityExceeded ErrorKind = "GYM_CAPACITY_EXCEEDED"
	ErrKindRequiredField    ErrorKind = "REQUIRED_FIELD"
	ErrKindUnauthorized     ErrorKind = "UNAUTHORIZED"
	ErrKindTokenExpired     ErrorKind = "TOKEN_EXPIRED"
)

// DomainError is a typed domain failure raised at the point of detection and
// propagated unmodified to the HTTP boundary.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewEntityNotFound reports a missing User, Gym or Membership.
func NewEntityNotFound(entity, id string) *DomainError {
	return &DomainError{
		Kind:    ErrKindEntityNotFound,
		Message: fmt.Sprintf("%s with id %s not found", entity, id),
	}
}

// NewDuplicateEntity reports a uniqueness violation on a field.
func NewDuplicateEntity(entity, field, value string) *DomainError {
	return &DomainError{
		Kind:    ErrKindDuplicateEntity,
		Message: fmt.Sprintf("%s with %s '%s' already exists", entity, field, value),
	}
}

// NewMembershipAlreadyExists reports a duplicate (user, gym) admission.
func NewMembershipAlreadyExists(userID, gymID string) *DomainError {
	return &DomainError{
		Kind:    ErrKindMembershipExists,
		Message: fmt.Sprintf("User %s is already a member of gym %s", userID, gymID),
	}
}

// NewGymCapacityExceeded reports an admission against a full gym.
func NewGymCapacityExceeded(gymName string, capacity int) *DomainError {
	return &DomainError{
		Kind:    ErrKindCapacityExceeded,
		Message: fmt.Sprintf("Gym '%s' has reached its maximum capacity of %d members", gymName, capacity),
	}
}

// NewRequiredField reports a missing required field before any use case runs.
func NewRequiredField(field, operation string) *DomainError {
	return &DomainError{
		Kind:    ErrKindRequiredField,
		Message: fmt.Sprintf("%s is required for %s", field, operation),
	}
}

// NewUnauthorized reports a failed or missing credential.
func NewUnauthorized(message string) *DomainError {
	return &DomainError{Kind: ErrKindUnauthorized, Message: message}
}

// NewTokenExpired reports an expired access token.
func NewTokenExpired() *DomainError {
	return &DomainError{
		Kind:    ErrKindTokenExpired,
		Message: "Authentication token has expired. Please log in again.",
	}
}

// KindOf extracts the error kind, or empty string for unclassified errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
