package handlers

import "rjcouriers-service-booking/internal/domain"

func (r createBookingRequest) toModel() domain.NewBooking {
	return domain.NewBooking{
		Sender:       r.Sender.toModel(),
		Receiver:     r.Receiver.toModel(),
		PackageType:  r.PackageType,
		Weight:       float64(r.Weight),
		DeliveryType: r.DeliveryType,
		Description:  r.Description,
	}
}

func (p partyDTO) toModel() domain.Party {
	return domain.Party{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

func partyToResponse(p domain.Party) partyDTO {
	return partyDTO{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

func bookingToResponse(b domain.Booking) bookingDTO {
	return bookingDTO{
		ID:            b.ID,
		Sender:        partyToResponse(b.Sender),
		Receiver:      partyToResponse(b.Receiver),
		PackageType:   b.PackageType,
		Weight:        b.Weight,
		DeliveryType:  b.DeliveryType,
		Description:   b.Description,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Cost:          b.Cost,
		BookingDate:   b.BookingDate.Format(domain.DateLayout),
	}
}

func bookingsToResponse(list []domain.Booking) []bookingDTO {
	out := make([]bookingDTO, 0, len(list))
	for _, b := range list {
		out = append(out, bookingToResponse(b))
	}
	return out
}

func summaryToResponse(s domain.PaymentSummary) paymentSummaryDTO {
	return paymentSummaryDTO{
		BookingID:    s.BookingID,
		Amount:       s.Amount,
		Formatted:    domain.FormatMoney(s.Amount),
		SenderName:   s.SenderName,
		ReceiverName: s.ReceiverName,
	}
}

func summariesToResponse(list []domain.Booking) []paymentSummaryDTO {
	out := make([]paymentSummaryDTO, 0, len(list))
	for _, b := range list {
		out = append(out, summaryToResponse(b.Summary()))
	}
	return out
}

func stepsToResponse(steps []domain.TrackingStep) []trackingStepDTO {
	out := make([]trackingStepDTO, 0, len(steps))
	for _, s := range steps {
		out = append(out, trackingStepDTO{
			Title:       s.Title,
			Description: s.Description,
			Completed:   s.Completed,
			Current:     s.Current,
			Timestamp:   s.Timestamp,
		})
	}
	return out
}

func statsToResponse(s domain.Stats) statsDTO {
	return statsDTO{
		Total:     s.Total,
		Pending:   s.Pending,
		InTransit: s.InTransit,
		Delivered: s.Delivered,
		Paid:      s.Paid,
	}
}
