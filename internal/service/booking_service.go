package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/hostwell/room-booking-service/internal/daterange"
	"github.com/hostwell/room-booking-service/internal/lock"
	"github.com/hostwell/room-booking-service/internal/models"
	"github.com/hostwell/room-booking-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMissingField     = errors.New("customer id or customer name and email are required")
	ErrRoomUnavailable  = errors.New("room is not available for the requested dates")
	ErrNotOnHold        = errors.New("booking is not on hold")
)

// EventPublisher pushes booking lifecycle events to the broker.
// A nil publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// AdmissionInput carries one booking attempt. Either CustomerID or inline
// customer name and email must be set. Price and currency pass through
// opaquely.
type AdmissionInput struct {
	PropertyID    uint
	RoomID        uint
	CustomerID    uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartDate     string
	EndDate       string
	Hold          bool
	Price         float64
	Currency      string
}

type BookingService interface {
	ListRooms(ctx context.Context, propertyID uint) ([]models.Room, error)
	QueryAvailability(ctx context.Context, propertyID uint, from, to string) ([]models.Room, error)
	AdmitBooking(ctx context.Context, in AdmissionInput) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomRepository
	propertyRepo repository.PropertyRepository
	customerRepo repository.CustomerRepository
	locker       *lock.RoomLocker
	publisher    EventPublisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	propertyRepo repository.PropertyRepository,
	customerRepo repository.CustomerRepository,
	locker *lock.RoomLocker,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		customerRepo: customerRepo,
		locker:       locker,
		publisher:    publisher,
	}
}

func (s *bookingService) ListRooms(ctx context.Context, propertyID uint) ([]models.Room, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return s.roomRepo.ListByProperty(ctx, propertyID)
}

// QueryAvailability returns the rooms of a property with no active booking
// overlapping [from, to). Read-only and advisory: it reflects a snapshot and
// never takes the room lock — AdmitBooking is the authoritative check.
func (s *bookingService) QueryAvailability(ctx context.Context, propertyID uint, from, to string) ([]models.Room, error) {
	rng, err := daterange.New(from, to)
	if err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	rooms, err := s.roomRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	active, err := s.bookingRepo.FindActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	conflicted := make(map[uint]bool)
	for _, b := range active {
		if rng.Overlaps(daterange.Range{From: b.StartDate, To: b.EndDate}) {
			conflicted[b.RoomID] = true
		}
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if !conflicted[room.ID] {
			available = append(available, room)
		}
	}
	return available, nil
}

// AdmitBooking is the admission transaction: validate, serialize per room,
// re-check conflicts, then create the customer (if needed) and the booking
// atomically. Every failure path leaves zero residual state.
func (s *bookingService) AdmitBooking(ctx context.Context, in AdmissionInput) (*models.Booking, error) {
	// Validation happens before any lock is taken or write attempted.
	rng, err := daterange.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if in.CustomerID == 0 && (in.CustomerName == "" || in.CustomerEmail == "") {
		return nil, ErrMissingField
	}

	// Per-room exclusivity: no other admission for this room proceeds past
	// this point until we commit or roll back. Different rooms run in
	// parallel. The FOR UPDATE row lock below extends the guarantee across
	// processes sharing the database.
	mu := s.locker.Get(in.RoomID)
	mu.Lock()
	defer mu.Unlock()

	var result *models.Booking
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.PropertyID != in.PropertyID {
			return ErrRoomNotFound
		}

		// Re-check under the lock: nothing can be inserted for this room
		// between this read and the write below.
		conflicts, err := s.bookingRepo.FindActiveOverlapping(ctx, tx, room.ID, rng)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrRoomUnavailable
		}

		customerID := in.CustomerID
		if customerID == 0 {
			customer := &models.Customer{
				Name:  in.CustomerName,
				Email: in.CustomerEmail,
				Phone: in.CustomerPhone,
			}
			if err := s.customerRepo.Create(ctx, tx, customer); err != nil {
				return err
			}
			customerID = customer.ID
		} else if _, err := s.customerRepo.FindByID(ctx, tx, customerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		status := models.StatusConfirmed
		if in.Hold {
			status = models.StatusHold
		}
		booking := &models.Booking{
			Reference:  uuid.NewString(),
			RoomID:     room.ID,
			CustomerID: customerID,
			StartDate:  rng.From,
			EndDate:    rng.To,
			Status:     status,
			Price:      in.Price,
			Currency:   in.Currency,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", result)
	return result, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.StatusHold {
			return ErrNotOnHold
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, bookingID, models.StatusConfirmed); err != nil {
			return err
		}

		booking.Status = models.StatusConfirmed
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.confirmed", result)
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// publish is best effort: a broker failure never rolls back a committed
// admission.
func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		log.Printf("[BookingService] failed to publish %s for booking %d: %v", routingKey, booking.ID, err)
	}
}
