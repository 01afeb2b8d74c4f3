package entity

// BookingState tracks the booking sub-flow of one scheduling cycle.
// Transitions: unset → selected+confirmed. Once Confirmed is set the cycle
// is terminal until the next successful slot request resets it.
type BookingState struct {
	SelectedSlot *SuggestedSlot `json:"selected_slot,omitempty"`
	Confirmed    bool           `json:"confirmed"`
}
