package handlers

import (
	"bytes"
	"encoding/json"
	"time"

	"rjcouriers-service-booking/internal/domain"
)

type partyDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type bookingDTO struct {
	ID            string                `json:"id"`
	Sender        partyDTO              `json:"sender"`
	Receiver      partyDTO              `json:"receiver"`
	PackageType   string                `json:"package_type"`
	Weight        float64               `json:"weight"`
	DeliveryType  domain.DeliveryType   `json:"delivery_type"`
	Description   string                `json:"description"`
	Status        domain.ShipmentStatus `json:"status"`
	PaymentStatus domain.PaymentStatus  `json:"payment_status"`
	Cost          float64               `json:"cost"`
	BookingDate   string                `json:"booking_date"`
}

type paymentSummaryDTO struct {
	BookingID    string  `json:"booking_id"`
	Amount       float64 `json:"amount"`
	Formatted    string  `json:"formatted_amount"`
	SenderName   string  `json:"sender_name"`
	ReceiverName string  `json:"receiver_name"`
}

type bookingDetailsResponse struct {
	Booking bookingDTO        `json:"booking"`
	Payment paymentSummaryDTO `json:"payment"`
}

type bookingMessageResponse struct {
	Message string     `json:"message"`
	Booking bookingDTO `json:"booking"`
}

type trackingStepDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Current     bool       `json:"current"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

type trackingResponse struct {
	Booking bookingDTO        `json:"booking"`
	Steps   []trackingStepDTO `json:"steps"`
}

type estimateResponse struct {
	Cost      float64 `json:"cost"`
	Formatted string  `json:"formatted"`
}

type statsDTO struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
	Paid      int `json:"paid"`
}

type createBookingRequest struct {
	Sender       partyDTO            `json:"sender"`
	Receiver     partyDTO            `json:"receiver"`
	PackageType  string              `json:"package_type"`
	Weight       flexWeight          `json:"weight"`
	DeliveryType domain.DeliveryType `json:"delivery_type"`
	Description  string              `json:"description"`
}

type payRequest struct {
	BookingID string               `json:"booking_id"`
	Method    domain.PaymentMethod `json:"method"`
}

type setStatusRequest struct {
	Status domain.ShipmentStatus `json:"status"`
}

// flexWeight accepts a JSON number or a string; anything unparseable becomes 0.
type flexWeight float64

func (f *flexWeight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexWeight(domain.ParseWeight(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexWeight(v)
	return nil
}
