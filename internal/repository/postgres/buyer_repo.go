package postgres

import (
	"context"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type buyerRepository struct {
	db *gorm.DB
}

func NewBuyerRepository(db *gorm.DB) *buyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *domain.Buyer) error {
	return r.db.WithContext(ctx).Create(buyer).Error
}

func (r *buyerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Buyer, error) {
	var buyer domain.Buyer
	err := r.db.WithContext(ctx).First(&buyer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *buyerRepository) GetByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	var buyer domain.Buyer
	err := r.db.WithContext(ctx).First(&buyer, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *buyerRepository) GetAll(ctx context.Context) ([]*domain.Buyer, error) {
	var buyers []*domain.Buyer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&buyers).Error
	if err != nil {
		return nil, err
	}
	return buyers, nil
}

func (r *buyerRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Buyer, error) {
	buyer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(buyer).Error; err != nil {
		return nil, err
	}
	return buyer, nil
}
