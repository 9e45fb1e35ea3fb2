package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadType discriminates the three lead collections in API requests and in
// the admin dashboard's unified view.
type LeadType string

const (
	LeadTypeSeller  LeadType = "SELLER"
	LeadTypeBuyer   LeadType = "BUYER"
	LeadTypeContact LeadType = "CONTACT"
)

func (t LeadType) Valid() bool {
	switch t {
	case LeadTypeSeller, LeadTypeBuyer, LeadTypeContact:
		return true
	}
	return false
}

// Seller is a booking submitted through the seller form. Immutable after
// creation; one booking per email.
type Seller struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName   string    `json:"first_name" gorm:"not null"`
	LastName    string    `json:"last_name" gorm:"not null"`
	BrandName   string    `json:"brand_name" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Product     string    `json:"product" gorm:"not null"`
	SocialMedia string    `json:"social_media" gorm:"not null"`
	Country     string    `json:"country" gorm:"not null"`
	Interest    string    `json:"interest" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Buyer is a booking submitted through the buyer form.
type Buyer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Product   string    `json:"product" gorm:"not null"`
	Interest  string    `json:"interest" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contact is an inbound contact-form submission with its message rows.
type Contact struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string           `json:"name" gorm:"not null"`
	Email     string           `json:"email" gorm:"not null"`
	Messages  []ContactMessage `json:"message" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ContactMessage is the free-text body owned by a Contact.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ContactID uuid.UUID `json:"contactId" gorm:"type:uuid;not null;index"`
	Body      string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
