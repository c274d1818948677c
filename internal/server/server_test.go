package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/firsthome/firsthome/internal/database"
	"github.com/firsthome/firsthome/internal/migrations"
)

// memSessions is an in-memory Sessions implementation for tests.
type memSessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemSessions() *memSessions {
	return &memSessions{tokens: make(map[string]string)}
}

func (s *memSessions) Create(_ context.Context, userID string) (string, error) {
	buf := make([]byte, 16)
	rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *memSessions) User(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", errNoSession
	}
	return userID, nil
}

func (s *memSessions) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewSQLiteStore(db)
}

func testRouter(t *testing.T) (*chi.Mux, *memSessions) {
	t.Helper()
	store := setupStore(t)
	sessions := newMemSessions()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	broker := NewBroker()

	r := chi.NewRouter()
	r.Post("/api/auth/signup", handleSignup(store, sessions))
	r.Post("/api/auth/login", handleLogin(store, sessions))
	r.Post("/api/auth/logout", handleLogout(sessions))
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(sessions))
		r.Get("/api/auth/me", handleMe(store))
		r.Put("/api/auth/password", handlePasswordUpdate(store))
		r.Delete("/api/auth/account", handleAccountDelete(store, sessions))
		r.Get("/api/journey", handleJourneyGet(store))
		r.Put("/api/journey", handleJourneyPut(store, broker))
		r.Get("/api/journey/state", handleJourneyState(store))
	})
	r.Get("/api/journey/template", handleJourneyTemplate())
	r.Get("/api/content/guides", handleGuides())
	r.Get("/api/content/guides/{slug}", handleGuideBySlug())
	r.Get("/api/content/faqs", handleFAQs())
	r.Get("/api/content/glossary", handleGlossary())
	r.Get("/api/content/tasks/{id}", handleTask())
	r.Get("/api/calculator/costs", handleCalculatorCosts())
	r.Get("/api/chat", handleChatInfo())
	r.Post("/api/chat", handleChat())
	r.Get("/ws/chat", handleWSChat(logger))

	return r, sessions
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signup registers a fresh account and returns its bearer token.
func signup(t *testing.T, r http.Handler, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", SignupRequest{
		Email:    email,
		Password: "hunter2hunter2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Token == "" {
		t.Fatal("signup: empty token")
	}
	return resp.Token
}
