package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firsthome/firsthome/internal/journey"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %s, want /api/auth/login", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user":  map[string]string{"id": "u1", "email": "maria@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if err := c.Login(context.Background(), "maria@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !c.LoggedIn() {
		t.Error("expected LoggedIn after login")
	}
	if c.CurrentUser().Email != "maria@example.com" {
		t.Errorf("user email = %q", c.CurrentUser().Email)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	err := c.Login(context.Background(), "maria@example.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if c.LoggedIn() {
		t.Error("expected not logged in after failure")
	}
}

func TestFetchJourneySendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok123", "user": map[string]string{}})
		case "/api/journey":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(journey.PersistedJourney{
				Stages: []journey.PersistedStage{{ID: 0, Status: journey.StatusCompleted}},
			})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if err := c.Login(context.Background(), "a@b.co", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	p := c.FetchJourney(context.Background())
	if p == nil {
		t.Fatal("expected journey")
	}
	if len(p.Stages) != 1 {
		t.Fatalf("stages = %d, want 1", len(p.Stages))
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestFetchJourneyAbsenceOnError(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"empty document", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{}"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := New(srv.URL, testLogger())
			if p := c.FetchJourney(context.Background()); p != nil {
				t.Errorf("expected nil journey, got %+v", p)
			}
		})
	}
}

func TestFetchJourneyUnreachableServer(t *testing.T) {
	c := New("http://localhost:1", testLogger())
	if p := c.FetchJourney(context.Background()); p != nil {
		t.Errorf("expected nil journey, got %+v", p)
	}
}

func TestUpsertJourney(t *testing.T) {
	var gotBody journey.PersistedJourney
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	ok := c.UpsertJourney(context.Background(), journey.PersistedJourney{
		Stages: []journey.PersistedStage{{ID: 2, Status: journey.StatusInProgress}},
	})
	if !ok {
		t.Fatal("expected successful upsert")
	}
	if len(gotBody.Stages) != 1 || gotBody.Stages[0].ID != 2 {
		t.Errorf("server received %+v", gotBody)
	}
}

func TestUpsertJourneyFailureReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if ok := c.UpsertJourney(context.Background(), journey.PersistedJourney{Stages: []journey.PersistedStage{}}); ok {
		t.Error("expected false on server error")
	}

	c = New("http://localhost:1", testLogger())
	if ok := c.UpsertJourney(context.Background(), journey.PersistedJourney{Stages: []journey.PersistedStage{}}); ok {
		t.Error("expected false when unreachable")
	}
}

func TestCosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("price"); got != "250000" {
			t.Errorf("price = %q, want 250000", got)
		}
		json.NewEncoder(w).Encode(CostEstimate{
			StampDuty:      0,
			MortgageAmount: 225000,
			LoanToValue:    90,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	est, err := c.Costs(context.Background(), 250000, 25000, true)
	if err != nil {
		t.Fatalf("costs: %v", err)
	}
	if est.MortgageAmount != 225000 {
		t.Errorf("mortgageAmount = %v, want 225000", est.MortgageAmount)
	}
}

func TestLogoutClearsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok123", "user": map[string]string{"id": "u1"}})
		case "/api/auth/logout":
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if err := c.Login(context.Background(), "a@b.co", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	c.Logout(context.Background())
	if c.LoggedIn() {
		t.Error("expected logged out")
	}
	if c.CurrentUser().ID != "" {
		t.Error("expected cleared user")
	}
}
