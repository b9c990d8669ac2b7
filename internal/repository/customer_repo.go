package repository

import (
	"context"

	"github.com/hostwell/room-booking-service/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error {
	return tx.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
