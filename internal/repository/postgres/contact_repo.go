package postgres

import (
	"context"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

// Create persists the contact together with its owned message rows.
func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).Preload("Messages").First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) GetAll(ctx context.Context) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.WithContext(ctx).Preload("Messages").Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) GetAllMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage
	err := r.db.WithContext(ctx).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Select("Messages").Delete(contact).Error
	if err != nil {
		return nil, err
	}
	return contact, nil
}
