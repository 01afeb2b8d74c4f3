package usecase

import (
	"context"
	"errors"
	"time"

	"ai-medical-assistant/internal/domain/entity"
)

var (
	ErrSlotNotOffered = errors.New("slot is not among the currently suggested slots")
	ErrAlreadyBooked  = errors.New("a slot has already been booked for this query")
)

const msgBookingFailed = "Failed to book appointment"

// Book carries one suggested slot through to the booked state. Only a slot
// from the current suggestion cycle can be booked, and at most once per
// cycle; the next successful RequestSlots resets the cycle. A failed
// confirmation leaves the slot offerable for a retry.
func (s *SchedulingSession) Book(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	if s.bookingPending {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if s.booking.Confirmed {
		s.mu.Unlock()
		return ErrAlreadyBooked
	}

	var chosen *entity.SuggestedSlot
	for i := range s.slots {
		if s.slots[i].Datetime.Equal(at) {
			chosen = &s.slots[i]
			break
		}
	}
	if chosen == nil {
		s.mu.Unlock()
		return ErrSlotNotOffered
	}
	slot := *chosen
	s.bookingPending = true
	s.mu.Unlock()

	err := s.booker.Book(ctx, slot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookingPending = false
	if err != nil {
		s.log.Warnf("Booking failed for slot %s: %+v", slot.Datetime.Format(time.RFC3339), err)
		s.userErr = msgBookingFailed
		return err
	}

	s.booking = entity.BookingState{
		SelectedSlot: &slot,
		Confirmed:    true,
	}
	return nil
}
