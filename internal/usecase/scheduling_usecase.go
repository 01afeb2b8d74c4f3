package usecase

import (
	"context"
	"errors"
	"sync"

	"ai-medical-assistant/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrMissingSelection = errors.New("doctor and patient must both be selected")
	ErrUnknownDoctor    = errors.New("doctor is not in the loaded directory")
	ErrUnknownPatient   = errors.New("patient is not in the loaded directory")
)

const (
	msgSelectDoctorPatient = "Please select both doctor and patient"
	msgUnknownSelection    = "Selected doctor or patient is unknown"
	msgNoSlotsFound        = "No available slots found for the selected doctor and patient"
	msgSlotsFailed         = "Failed to get suggestions"
)

type SchedulingState string

const (
	SchedulingIdle       SchedulingState = "idle"
	SchedulingSuggesting SchedulingState = "suggesting"
	SchedulingSlotsReady SchedulingState = "slots_ready"
)

// SchedulingSession owns the appointment workflow: the doctor/patient/
// problem/date query, the ranked candidate slots it produced, and the
// booking sub-flow carrying one of those slots to a booked state.
type SchedulingSession struct {
	mu        sync.Mutex
	slotGW    SlotGateway
	booker    Booker
	directory *DirectoryLoader
	log       *logrus.Logger

	state     SchedulingState
	query     entity.SchedulingQuery
	slots     []entity.SuggestedSlot
	reasoning string
	advisory  string
	userErr   string

	booking        entity.BookingState
	bookingPending bool
}

func NewSchedulingSession(slotGW SlotGateway, booker Booker, directory *DirectoryLoader, log *logrus.Logger) *SchedulingSession {
	return &SchedulingSession{
		slotGW:    slotGW,
		booker:    booker,
		directory: directory,
		log:       log,
		state:     SchedulingIdle,
	}
}

// RequestSlots validates the query against the loaded directory and asks
// the scheduler for candidate slots. Issuing a fresh query invalidates the
// previous cycle up front: slots, reasoning, advisory and any booking
// confirmation are cleared before the request resolves, so stale slots
// never coexist with new criteria.
//
// Zero returned slots is a soft outcome, not an error: the session reaches
// SlotsReady with an advisory message instead.
func (s *SchedulingSession) RequestSlots(ctx context.Context, q entity.SchedulingQuery) ([]entity.SuggestedSlot, error) {
	s.mu.Lock()
	if s.state == SchedulingSuggesting || s.bookingPending {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	if q.DoctorID == "" || q.PatientID == "" {
		s.userErr = msgSelectDoctorPatient
		s.mu.Unlock()
		return nil, ErrMissingSelection
	}
	if !s.directory.HasDoctor(q.DoctorID) {
		s.userErr = msgUnknownSelection
		s.mu.Unlock()
		return nil, ErrUnknownDoctor
	}
	if !s.directory.HasPatient(q.PatientID) {
		s.userErr = msgUnknownSelection
		s.mu.Unlock()
		return nil, ErrUnknownPatient
	}

	s.query = q
	s.slots = nil
	s.reasoning = ""
	s.advisory = ""
	s.userErr = ""
	s.booking = entity.BookingState{}
	s.state = SchedulingSuggesting
	s.mu.Unlock()

	res, err := s.slotGW.SuggestSlots(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Warnf("Slot suggestion failed for doctor=%s patient=%s: %+v", q.DoctorID, q.PatientID, err)
		s.slots = nil
		s.reasoning = ""
		s.userErr = failureMessage(err, msgSlotsFailed)
		s.state = SchedulingIdle
		return nil, err
	}

	s.slots = res.Slots
	s.reasoning = res.Reasoning
	s.state = SchedulingSlotsReady
	if len(res.Slots) == 0 {
		s.advisory = msgNoSlotsFound
	}

	out := make([]entity.SuggestedSlot, len(res.Slots))
	copy(out, res.Slots)
	return out, nil
}

// SchedulingSnapshot is a point-in-time copy of the session for rendering.
type SchedulingSnapshot struct {
	State     SchedulingState
	Query     entity.SchedulingQuery
	Slots     []entity.SuggestedSlot
	Reasoning string
	Advisory  string
	Error     string
	Booking   entity.BookingState
}

func (s *SchedulingSession) Snapshot() SchedulingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]entity.SuggestedSlot, len(s.slots))
	copy(slots, s.slots)

	booking := s.booking
	if s.booking.SelectedSlot != nil {
		selected := *s.booking.SelectedSlot
		booking.SelectedSlot = &selected
	}

	return SchedulingSnapshot{
		State:     s.state,
		Query:     s.query,
		Slots:     slots,
		Reasoning: s.reasoning,
		Advisory:  s.advisory,
		Error:     s.userErr,
		Booking:   booking,
	}
}

// failureMessage prefers the failure's own detail, falling back to generic
// copy when there is none.
func failureMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
