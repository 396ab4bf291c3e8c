package booking

import "time"

// SetNow replaces the service clock.
func (s *Service) SetNow(fn func() time.Time) { s.now = fn }

// SetEventID replaces the event id generator.
func (s *Service) SetEventID(fn func() string) { s.newEventID = fn }
