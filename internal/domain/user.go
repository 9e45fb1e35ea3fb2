package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account (admin dashboard logins and signups). Emails
// are stored lowercase; uniqueness is enforced by the database.
type User struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName          string    `json:"first_name" gorm:"not null"`
	LastName           string    `json:"last_name" gorm:"not null"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash       string    `json:"-" gorm:"not null"`
	PasswordResetToken *string   `json:"-" gorm:"uniqueIndex"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
