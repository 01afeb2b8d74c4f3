package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-medical-assistant/config"
	"ai-medical-assistant/internal/domain/entity"
)

// Client speaks the scheduler service's JSON contract: the doctor/patient
// directory and slot suggestions. Directory data lives entirely on the
// service side; nothing is persisted here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.SchedulerConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ListDoctors fetches the doctor directory.
func (c *Client) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := c.get(ctx, "/api/doctors", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// ListPatients fetches the patient directory.
func (c *Client) ListPatients(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := c.get(ctx, "/api/patients", &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

type suggestSlotsRequest struct {
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Problem   string `json:"problem,omitempty"`
	// Date is omitted entirely rather than sent empty.
	Date string `json:"date,omitempty"`
}

type suggestSlotsResponse struct {
	Slots     []string `json:"slots"`
	Reasoning string   `json:"reasoning"`
}

// SuggestSlots requests ranked candidate slots for a doctor/patient pair.
// The returned order is the service's preference order and is preserved.
func (c *Client) SuggestSlots(ctx context.Context, q entity.SchedulingQuery) (entity.SlotSuggestion, error) {
	reqBody := suggestSlotsRequest{
		DoctorID:  q.DoctorID,
		PatientID: q.PatientID,
		Problem:   q.Problem,
		Date:      q.Date,
	}

	var respBody suggestSlotsResponse
	if err := c.post(ctx, "/api/suggest", reqBody, &respBody); err != nil {
		return entity.SlotSuggestion{}, err
	}

	slots := make([]entity.SuggestedSlot, 0, len(respBody.Slots))
	for _, raw := range respBody.Slots {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entity.SlotSuggestion{}, fmt.Errorf("scheduler returned malformed slot %q: %w", raw, err)
		}
		slots = append(slots, entity.SuggestedSlot{Datetime: at})
	}

	return entity.SlotSuggestion{
		Slots:     slots,
		Reasoning: respBody.Reasoning,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduler service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scheduler service returned status: %s, body: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode scheduler response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduler service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scheduler service returned status: %s, body: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode scheduler response: %w", err)
	}
	return nil
}
