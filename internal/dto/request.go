package dto

type AdmitBookingRequest struct {
	CustomerID    uint    `json:"customer_id,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	StartDate     string  `json:"start_date" validate:"required"`
	EndDate       string  `json:"end_date" validate:"required"`
	Hold          bool    `json:"hold"`
	Price         float64 `json:"price,omitempty"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}
