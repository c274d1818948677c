// Package client is the HTTP gateway the terminal tracker uses to talk
// to the FirstHome API: auth plus per-user journey sync.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/firsthome/firsthome/internal/journey"
)

var ErrUnauthorized = errors.New("invalid credentials")

// User mirrors the API's account shape.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client talks to the FirstHome API. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	token string
	user  User
}

func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// LoggedIn reports whether the client holds a session token.
func (c *Client) LoggedIn() bool { return c.token != "" }

// CurrentUser returns the account from the last successful login or signup.
func (c *Client) CurrentUser() User { return c.user }

func (c *Client) do(ctx context.Context, method, path string, body, dest any) (int, error) {
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if dest != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) error {
	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, path, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		c.token = resp.Token
		c.user = resp.User
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("auth failed with status %d", status)
	}
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, "/api/auth/signup", email, password)
}

// Logout invalidates the session server-side and clears local state.
// Best effort: local state is cleared even if the request fails.
func (c *Client) Logout(ctx context.Context) {
	if c.token != "" {
		c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	}
	c.token = ""
	c.user = User{}
}

// FetchJourney returns the remote saved journey, or nil when there is
// none or the request fails. Any failure reads as a fresh start.
func (c *Client) FetchJourney(ctx context.Context) *journey.PersistedJourney {
	var p journey.PersistedJourney
	status, err := c.do(ctx, http.MethodGet, "/api/journey", nil, &p)
	if err != nil || status != http.StatusOK {
		if err != nil {
			c.logger.Debug("journey fetch failed", "error", err)
		}
		return nil
	}
	if p.Stages == nil {
		return nil
	}
	return &p
}

// UpsertJourney overwrites the remote saved journey and reports whether
// the write landed. Callers log the result and move on.
func (c *Client) UpsertJourney(ctx context.Context, p journey.PersistedJourney) bool {
	status, err := c.do(ctx, http.MethodPut, "/api/journey", p, nil)
	if err != nil {
		c.logger.Debug("journey sync failed", "error", err)
		return false
	}
	return status == http.StatusNoContent
}

// CostRange is an indicative min/max in pounds for a one-off cost.
type CostRange struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// CostEstimate mirrors the API's upfront cost calculation.
type CostEstimate struct {
	StampDuty      float64     `json:"stampDuty"`
	StampDutyLabel string      `json:"stampDutyLabel"`
	MortgageAmount float64     `json:"mortgageAmount"`
	LoanToValue    float64     `json:"loanToValue"`
	HighLTV        bool        `json:"highLtv"`
	OtherCosts     []CostRange `json:"otherCosts"`
}

// Costs fetches the indicative upfront cost estimate for a purchase.
func (c *Client) Costs(ctx context.Context, price, deposit float64, firstTimeBuyer bool) (*CostEstimate, error) {
	path := fmt.Sprintf("/api/calculator/costs?price=%.0f&deposit=%.0f&firstTimeBuyer=%t",
		price, deposit, firstTimeBuyer)

	var est CostEstimate
	status, err := c.do(ctx, http.MethodGet, path, nil, &est)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("cost estimate failed with status %d", status)
	}
	return &est, nil
}

// DeleteAccount removes the account and everything saved under it.
func (c *Client) DeleteAccount(ctx context.Context) error {
	status, err := c.do(ctx, http.MethodDelete, "/api/auth/account", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("account delete failed with status %d", status)
	}
	c.token = ""
	c.user = User{}
	return nil
}
