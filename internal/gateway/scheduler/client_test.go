package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-medical-assistant/config"
	"ai-medical-assistant/internal/domain/entity"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.SchedulerConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestListDoctors(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "d1", "name": "Dr. Smith", "specialty": "Cardiology"},
			{"id": "d2", "name": "Dr. Jones", "specialty": "Neurology"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	doctors, err := c.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/doctors" {
		t.Fatalf("expected GET /api/doctors, got %s", gotPath)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	if doctors[0].ID != "d1" || doctors[0].Specialty != "Cardiology" {
		t.Fatalf("unexpected first doctor: %+v", doctors[0])
	}
}

func TestListPatients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/patients" {
			t.Errorf("expected GET /api/patients, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "p1", "name": "Alice", "priority": "urgent"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	patients, err := c.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(patients))
	}
	if patients[0].Priority == nil || *patients[0].Priority != entity.PriorityUrgent {
		t.Fatalf("expected urgent priority, got %+v", patients[0].Priority)
	}
}

func TestListDoctorsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "directory unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.ListDoctors(context.Background()); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}

func TestSuggestSlots(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"slots":     []string{"2025-01-10T09:00:00Z", "2025-01-10T10:00:00Z"},
			"reasoning": "earliest openings matching the patient's history",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	suggestion, err := c.SuggestSlots(context.Background(), entity.SchedulingQuery{
		DoctorID:  "d1",
		PatientID: "p1",
		Problem:   "follow-up",
		Date:      "2025-01-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/suggest" {
		t.Fatalf("expected POST /api/suggest, got %s", gotPath)
	}
	if gotBody["doctor_id"] != "d1" || gotBody["patient_id"] != "p1" {
		t.Fatalf("unexpected identifiers on the wire: %v", gotBody)
	}
	if gotBody["problem"] != "follow-up" || gotBody["date"] != "2025-01-10" {
		t.Fatalf("unexpected optional fields on the wire: %v", gotBody)
	}

	if len(suggestion.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(suggestion.Slots))
	}
	want := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	if !suggestion.Slots[0].Datetime.Equal(want) {
		t.Fatalf("expected first slot %v, got %v", want, suggestion.Slots[0].Datetime)
	}
	if suggestion.Reasoning == "" {
		t.Fatal("expected reasoning to be carried through")
	}
}

func TestSuggestSlotsOmitsEmptyOptionalFields(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{"slots": []string{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.SuggestSlots(context.Background(), entity.SchedulingQuery{DoctorID: "d1", PatientID: "p1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := gotBody["problem"]; ok {
		t.Fatal("expected empty problem to be omitted from the request body")
	}
	if _, ok := gotBody["date"]; ok {
		t.Fatal("expected empty date to be omitted from the request body")
	}
}

func TestSuggestSlotsMalformedSlot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"slots": []string{"next tuesday morning"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.SuggestSlots(context.Background(), entity.SchedulingQuery{DoctorID: "d1", PatientID: "p1"}); err == nil {
		t.Fatal("expected an error for a non-RFC3339 slot")
	}
}

func TestSimulatedBooker(t *testing.T) {
	b := &SimulatedBooker{Delay: 10 * time.Millisecond}

	err := b.Book(context.Background(), entity.SuggestedSlot{Datetime: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSimulatedBookerCancelled(t *testing.T) {
	b := &SimulatedBooker{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Book(ctx, entity.SuggestedSlot{Datetime: time.Now()})
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}
