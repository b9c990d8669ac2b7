package repository

import (
	"context"

	"github.com/hostwell/room-booking-service/internal/models"
	"gorm.io/gorm"
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}
