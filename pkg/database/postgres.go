package database

import (
	"log"

	"github.com/hostwell/room-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Property{}, &models.Room{}, &models.Customer{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Room numbers are unique within a property
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_room_number_per_property
		ON rooms (property_id, room_number)
	`)

	// Partial index: conflict checks only ever scan active bookings
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_active_range
		ON bookings (room_id, start_date, end_date)
		WHERE status <> 'cancelled'
	`)

	return db
}
