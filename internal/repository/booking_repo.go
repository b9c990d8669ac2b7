package repository

import (
	"context"

	"github.com/hostwell/room-booking-service/internal/daterange"
	"github.com/hostwell/room-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindActiveOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, rng daterange.Range) ([]models.Booking, error)
	FindActiveByProperty(ctx context.Context, propertyID uint) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindActiveOverlapping returns active (hold or confirmed) bookings for the
// room whose half-open interval intersects rng. The SQL predicate mirrors
// daterange.Overlaps: touching intervals do not conflict.
func (r *bookingRepository) FindActiveOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, rng daterange.Range) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("room_id = ? AND status <> ? AND start_date < ? AND end_date > ?",
			roomID, models.StatusCancelled, rng.To, rng.From).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveByProperty(ctx context.Context, propertyID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.property_id = ? AND bookings.status <> ?", propertyID, models.StatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
