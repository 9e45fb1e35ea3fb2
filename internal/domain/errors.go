package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("password reset link has expired or is invalid")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Lead errors
var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidLeadType = errors.New("type must be one of SELLER, BUYER or CONTACT")
)

// DuplicateLeadError reports a booking conflict and carries the existing
// record's id so the client can offer "cancel and rebook".
type DuplicateLeadError struct {
	ExistingID uuid.UUID
}

func (e *DuplicateLeadError) Error() string {
	return fmt.Sprintf("a booking already exists for this email (id %s)", e.ExistingID)
}

// AsDuplicateLead unwraps err into a DuplicateLeadError if it is one.
func AsDuplicateLead(err error) (*DuplicateLeadError, bool) {
	var dup *DuplicateLeadError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}
