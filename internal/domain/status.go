package domain

type (
	// ShipmentStatus represents the physical progress of a shipment.
	ShipmentStatus string
	// PaymentStatus represents whether a booking has been paid for.
	PaymentStatus string
	// DeliveryType represents the service tier of a booking.
	DeliveryType string
	// PaymentMethod represents the way a customer pays for a booking.
	PaymentMethod string
)

// List of possible shipment statuses
const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in-transit"
	StatusDelivered ShipmentStatus = "delivered"
)

// List of possible payment statuses
const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// List of possible delivery types
const (
	DeliveryStandard  DeliveryType = "standard"
	DeliveryExpress   DeliveryType = "express"
	DeliveryOvernight DeliveryType = "overnight"
)

// List of accepted payment methods
const (
	MethodCredit PaymentMethod = "credit"
	MethodPayPal PaymentMethod = "paypal"
	MethodCash   PaymentMethod = "cash"
	MethodBank   PaymentMethod = "bank"
)

var allowedStatuses = [...]ShipmentStatus{
	StatusPending, StatusInTransit, StatusDelivered,
}

var allowedDeliveryTypes = [...]DeliveryType{
	DeliveryStandard, DeliveryExpress, DeliveryOvernight,
}

var allowedMethods = [...]PaymentMethod{
	MethodCredit, MethodPayPal, MethodCash, MethodBank,
}

// Valid checks if the ShipmentStatus is valid
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryType is valid
func (t DeliveryType) Valid() bool {
	for _, v := range allowedDeliveryTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the PaymentMethod is valid
func (m PaymentMethod) Valid() bool {
	for _, v := range allowedMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Label returns the method for known methods and "other" for anything else.
// Any non-empty method is accepted for payment; Label keeps metric labels bounded.
func (m PaymentMethod) Label() string {
	if m.Valid() {
		return string(m)
	}
	return "other"
}

// Statuses returns all shipment statuses in progression order.
func Statuses() []ShipmentStatus {
	return allowedStatuses[:]
}
