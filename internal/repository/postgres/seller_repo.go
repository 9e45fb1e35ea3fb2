package postgres

import (
	"context"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) *sellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.db.WithContext(ctx).First(&seller, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) GetAll(ctx context.Context) ([]*domain.Seller, error) {
	var sellers []*domain.Seller
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	seller, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(seller).Error; err != nil {
		return nil, err
	}
	return seller, nil
}
