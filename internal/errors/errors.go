package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation conflicts with existing state
type ConflictError struct {
	Entity  string
	Context string // Additional context like "with a pending invitation"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// SystemError wraps a failure from an underlying collaborator (store, mailer,
// external API). The original error is kept for server-side logging and is never
// surfaced verbatim to the end user.
type SystemError struct {
	Op  string
	Err error
}

func (e *SystemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrProfileNotFound      = &NotFoundError{Entity: "user profile"}
	ErrLessonPlanNotFound   = &NotFoundError{Entity: "lesson plan"}
	ErrOpenHouseNotFound    = &NotFoundError{Entity: "open house session"}
	ErrMarketStatsNotFound  = &NotFoundError{Entity: "market stats"}
	ErrNoOrganization       = &NotFoundError{Entity: "organization for user"}
)

// Conflict Errors
var (
	ErrPendingInvitationExists = &ConflictError{Entity: "invitation", Context: "email already has a pending invitation"}
	ErrInvitationAlreadyUsed   = &ConflictError{Entity: "invitation", Context: "invitation has already been accepted"}
	ErrAlreadyInOrganization   = &ConflictError{Entity: "organization", Context: "user already belongs to an organization"}
	ErrItemExists              = &ConflictError{Entity: "item", Context: "an item with this key already exists"}
	ErrMemberExists            = &ConflictError{Entity: "team member", Context: "user is already a member of this organization"}
	ErrOpenHouseEnded          = &ConflictError{Entity: "open house session", Context: "session has already ended"}
)

// Business Logic Errors
var (
	ErrInvitationExpired = errors.New("invitation has expired")
	ErrOwnerImmutable    = errors.New("owner role cannot be changed or removed")
	ErrSelfRemoval       = errors.New("cannot remove yourself from the organization")
)

// Authentication / Authorization Errors
var (
	ErrNotAuthenticated = &AuthenticationError{Message: "Not authenticated."}
	ErrNotAuthorized    = &AuthorizationError{Message: "Unauthorized."}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsSystem checks if an error is a SystemError
func IsSystem(err error) bool {
	var sysErr *SystemError
	return errors.As(err, &sysErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSystemError wraps an underlying collaborator failure
func NewSystemError(op string, err error) error {
	return &SystemError{Op: op, Err: err}
}
