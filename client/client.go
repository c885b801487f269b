// File: /client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cleanworld-api/models"
)

// ErrUnauthorized covers both 401 and 403 replies. Callers treat either as
// an expired or missing session and send the user back to sign-in.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is any non-2xx reply that is not an auth failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Client talks to the CleanWorld REST API. Authenticated calls take the
// bearer token explicitly so the session store stays the single owner of
// credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewWithHTTPClient is used by tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: hc}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			if payload.Error != "" {
				apiErr.Message = payload.Error
			} else {
				apiErr.Message = payload.Message
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Zones fetches every user-reported zone.
func (c *Client) Zones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	if err := c.do(ctx, http.MethodGet, "/zones", "", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// Events fetches every cleanup event, attendees included.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/events", "", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateZoneRequest is the report-submission payload.
type CreateZoneRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	ImgURL      *string         `json:"img_url,omitempty"`
	Severity    models.Severity `json:"severity"`
}

// CreateZone submits a new pollution report.
func (c *Client) CreateZone(ctx context.Context, token string, req CreateZoneRequest) (*Zone, error) {
	var zone Zone
	if err := c.do(ctx, http.MethodPost, "/zones", token, req, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// DeleteZone removes a reported zone and every event attached to it.
func (c *Client) DeleteZone(ctx context.Context, token string, id ID) error {
	return c.do(ctx, http.MethodDelete, "/zones/"+string(id), token, nil, nil)
}

// CreateEventRequest schedules a cleanup on an existing zone.
type CreateEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Datetime     string `json:"datetime"`
	Status       string `json:"status,omitempty"`
	RewardPoints int    `json:"reward_points,omitempty"`
	ZoneID       ID     `json:"zone_id"`
}

// CreateEvent schedules a cleanup event.
func (c *Client) CreateEvent(ctx context.Context, token string, req CreateEventRequest) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPost, "/events", token, req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Attend registers the user on the event and returns the refreshed event.
func (c *Client) Attend(ctx context.Context, token string, eventID, userID ID) (*Event, error) {
	body := map[string]ID{"userId": userID}
	var event Event
	if err := c.do(ctx, http.MethodPost, "/events/"+string(eventID)+"/attend", token, body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Unattend removes the user from the event and returns the refreshed event.
func (c *Client) Unattend(ctx context.Context, token string, eventID, userID ID) (*Event, error) {
	body := map[string]ID{"userId": userID}
	var event Event
	if err := c.do(ctx, http.MethodPost, "/events/"+string(eventID)+"/unattend", token, body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Login authenticates and returns the signed-in user with their token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/users/login", "", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
