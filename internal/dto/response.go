package dto

import (
	"time"

	"github.com/hostwell/room-booking-service/internal/models"
)

type BookingResponse struct {
	ID         uint                 `json:"booking_id"`
	Reference  string               `json:"reference"`
	RoomID     uint                 `json:"room_id"`
	CustomerID uint                 `json:"customer_id"`
	StartDate  string               `json:"start_date"`
	EndDate    string               `json:"end_date"`
	Status     models.BookingStatus `json:"status"`
	Price      float64              `json:"price,omitempty"`
	Currency   string               `json:"currency,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type RoomResponse struct {
	ID         uint   `json:"id"`
	PropertyID uint   `json:"property_id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
}

type AvailabilityResponse struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Available []RoomResponse `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Reference:  b.Reference,
		RoomID:     b.RoomID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     b.Status,
		Price:      b.Price,
		Currency:   b.Currency,
		CreatedAt:  b.CreatedAt,
	}
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
	}
}

func ToRoomResponses(rooms []models.Room) []RoomResponse {
	resp := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = ToRoomResponse(&r)
	}
	return resp
}
