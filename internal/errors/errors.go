// internal/errors/errors.go
package appErrors

import "fmt"

// ErrInvalidInput marks a missing or blank required field.
type ErrInvalidInput struct {
	Field string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s is required", e.Field)
}

func NewInvalidInput(field string) error {
	return &ErrInvalidInput{Field: field}
}

// ErrAlreadyExists is returned when registering an email that is
// already taken (compared case-insensitively).
type ErrAlreadyExists struct {
	Email string
}

func (e *ErrAlreadyExists) Error() string {
	return fmt.Sprintf("account already exists with email %s", e.Email)
}

func NewAlreadyExists(email string) error {
	return &ErrAlreadyExists{Email: email}
}

// ErrInvalidCredentials is deliberately uniform: it never says whether
// the email, the password, or the security answer was the wrong part.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid credentials"
}

func NewInvalidCredentials() error {
	return &ErrInvalidCredentials{}
}

// ErrInvalidDateRange is returned when a campaign ends before it starts.
type ErrInvalidDateRange struct {
	Start string
	End   string
}

func (e *ErrInvalidDateRange) Error() string {
	return fmt.Sprintf("end date %s is before start date %s", e.End, e.Start)
}

func NewInvalidDateRange(start, end string) error {
	return &ErrInvalidDateRange{Start: start, End: end}
}

// ErrNotFound is a sentinel error for a missing account or campaign.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFound(resource, id string) error {
	return &ErrNotFound{Resource: resource, ID: id}
}
