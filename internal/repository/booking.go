package repository

import (
	"context"
	"sync"

	"rjcouriers-service-booking/internal/domain"
)

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	Status        domain.ShipmentStatus
	PaymentStatus domain.PaymentStatus
}

func (f ListFilter) match(b *domain.Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
		return false
	}
	return true
}

// BookingRepo keeps bookings in process memory.
// A single lock serializes writers so ids are assigned without gaps or races.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	index    map[string]int
	next     int
}

// NewBookingRepo creates a repository holding seed and assigning ids from next on.
func NewBookingRepo(seed []domain.Booking, next int) *BookingRepo {
	if next <= 0 {
		next = 1
	}
	r := &BookingRepo{
		bookings: make([]domain.Booking, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
		next:     next,
	}
	for _, b := range seed {
		r.index[b.ID] = len(r.bookings)
		r.bookings = append(r.bookings, b)
	}
	return r
}

// Create assigns the next tracking number to b, stores a copy and returns the id.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var id string
	// seeds may already hold the id when next was chosen too low
	for {
		id = domain.FormatID(r.next)
		r.next++
		if _, taken := r.index[id]; !taken {
			break
		}
	}

	b.ID = id
	r.index[id] = len(r.bookings)
	r.bookings = append(r.bookings, *b)
	return id, nil
}

// Get returns a copy of the booking or nil when the id is unknown.
func (r *BookingRepo) Get(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	b := r.bookings[i]
	return &b, nil
}

// List returns bookings in creation order.
func (r *BookingRepo) List(ctx context.Context, f ListFilter) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.bookings))
	for i := range r.bookings {
		if f.match(&r.bookings[i]) {
			out = append(out, r.bookings[i])
		}
	}
	return out, nil
}

// Update applies fn to the stored booking under the write lock.
// If fn fails nothing is changed. It returns nil when the id is unknown.
func (r *BookingRepo) Update(ctx context.Context, id string, fn func(b *domain.Booking) error) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	draft := r.bookings[i]
	if err := fn(&draft); err != nil {
		return nil, err
	}
	// id is immutable
	draft.ID = id
	r.bookings[i] = draft
	return &draft, nil
}

// Len returns the number of stored bookings.
func (r *BookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
