// Package studioapi is the HTTP client for the studio backend. It is what the
// admin console and the public form flows talk through.
package studioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/types"
)

// ClientInterface defines the operations exposed by the studio API client.
type ClientInterface interface {
	CreateBooking(ctx context.Context, req *types.BookingCreate) (*types.Booking, error)
	ListBookings(ctx context.Context) ([]*types.Booking, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CreateContact(ctx context.Context, req *types.ContactCreate) (*types.Contact, error)
	ListContacts(ctx context.Context) ([]*types.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ValidationError reports a submission rejected before any request was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ClientInterface = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) CreateBooking(ctx context.Context, req *types.BookingCreate) (*types.Booking, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	var booking types.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]*types.Booking, error) {
	var bookings []*types.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	var booking types.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+id, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error) {
	if update.IsEmpty() {
		return nil, &ValidationError{Field: "update", Reason: "no fields to update"}
	}

	var booking types.Booking
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+id, update, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+id, nil, nil)
}

func (c *Client) CreateContact(ctx context.Context, req *types.ContactCreate) (*types.Contact, error) {
	if err := validateContact(req); err != nil {
		return nil, err
	}

	var contact types.Contact
	if err := c.do(ctx, http.MethodPost, "/api/contact", req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) ListContacts(ctx context.Context) ([]*types.Contact, error) {
	var contacts []*types.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}

// validateBooking mirrors the server's presence checks so an incomplete
// submission never leaves the client.
func validateBooking(req *types.BookingCreate) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if strings.TrimSpace(req.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "is required"}
	}
	if !req.ServiceType.IsValid() {
		return &ValidationError{Field: "service_type", Reason: "must be wedding or baby"}
	}
	return nil
}

func validateContact(req *types.ContactCreate) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if strings.TrimSpace(req.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "is required"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{Field: "message", Reason: "is required"}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	log := logger.GetLogger()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Studio API request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Errorw("Failed to decode studio API response", "method", method, "path", path, "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError extracts the server's error message when it sent one.
func (c *Client) apiError(resp *http.Response, method, path string) error {
	var errResp types.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
		logger.GetLogger().Warnw("Studio API returned error",
			"method", method, "path", path,
			"statusCode", resp.StatusCode, "message", errResp.Message)
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, errResp.Message)
	}
	return fmt.Errorf("api returned status %d", resp.StatusCode)
}
