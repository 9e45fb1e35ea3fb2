package postgres

import (
	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database and runs auto-migration.
// TranslateError lets repositories detect unique-constraint violations as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Seller{},
		&domain.Buyer{},
		&domain.Contact{},
		&domain.ContactMessage{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Seller:  NewSellerRepository(db),
		Buyer:   NewBuyerRepository(db),
		Contact: NewContactRepository(db),
	}
}
