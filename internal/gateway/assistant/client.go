package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ai-medical-assistant/config"
	"ai-medical-assistant/internal/domain/entity"
)

// Client speaks the consultation assistant service's JSON contract. The
// service's medical reasoning is opaque to this side; the client only
// carries requests and responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.AssistantConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type suggestRequest struct {
	Severity entity.Severity `json:"severity"`
	Problem  string          `json:"problem"`
	Symptoms string          `json:"symptoms"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// Suggest requests a treatment suggestion for the given complaint and
// returns the suggestion text verbatim.
func (c *Client) Suggest(ctx context.Context, cc entity.ConsultationContext) (string, error) {
	reqBody := suggestRequest{
		Severity: cc.Severity,
		Problem:  cc.Problem,
		Symptoms: cc.Symptoms,
	}

	var respBody suggestResponse
	if err := c.post(ctx, "/suggest", reqBody, &respBody); err != nil {
		return "", err
	}
	return respBody.Suggestion, nil
}

type chatRequest struct {
	Message string             `json:"message"`
	Context entity.ChatContext `json:"context"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat sends a follow-up question scoped to the consultation context that
// produced the current suggestion.
func (c *Client) Chat(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
	reqBody := chatRequest{
		Message: message,
		Context: chatCtx,
	}

	var respBody chatResponse
	if err := c.post(ctx, "/chat", reqBody, &respBody); err != nil {
		return "", err
	}
	return respBody.Reply, nil
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
		return fmt.Errorf("assistant service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assistant service returned status: %s, body: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return nil
}
