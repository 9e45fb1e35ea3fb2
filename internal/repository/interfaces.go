package repository

import (
	"context"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	GetRecent(ctx context.Context, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	GetByEmail(ctx context.Context, email string) (*domain.Seller, error)
	GetAll(ctx context.Context) ([]*domain.Seller, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
}

type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Buyer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Buyer, error)
	GetAll(ctx context.Context) ([]*domain.Buyer, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Buyer, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetAll(ctx context.Context) ([]*domain.Contact, error)
	GetAllMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
}

type Repositories struct {
	User    UserRepository
	Seller  SellerRepository
	Buyer   BuyerRepository
	Contact ContactRepository
}
