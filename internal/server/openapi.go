package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/firsthome/firsthome/internal/content"
	"github.com/firsthome/firsthome/internal/journey"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "FirstHome API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the FirstHome first-time buyer journey tracker.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/auth/signup
	postSignup, _ := r.NewOperationContext(http.MethodPost, "/api/auth/signup")
	postSignup.SetSummary("Create account")
	postSignup.SetDescription("Registers a new account with email and password (8 characters minimum). Returns a bearer token.")
	postSignup.AddReqStructure(SignupRequest{})
	postSignup.AddRespStructure(AuthResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSignup.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSignup.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSignup)

	// POST /api/auth/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/auth/login")
	postLogin.SetSummary("Log in")
	postLogin.SetDescription("Authenticate with email and password. Returns a bearer token.")
	postLogin.AddReqStructure(SignupRequest{})
	postLogin.AddRespStructure(AuthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/auth/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/auth/logout")
	postLogout.SetSummary("Log out")
	postLogout.SetDescription("Invalidates the bearer token.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(postLogout)

	// GET /api/auth/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/auth/me")
	getMe.SetSummary("Current user")
	getMe.SetDescription("Returns the currently authenticated user. Requires Bearer token.")
	getMe.AddRespStructure(User{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// PUT /api/auth/password
	putPassword, _ := r.NewOperationContext(http.MethodPut, "/api/auth/password")
	putPassword.SetSummary("Change password")
	putPassword.SetDescription("Replaces the account password. Requires Bearer token.")
	putPassword.AddReqStructure(PasswordRequest{})
	putPassword.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	putPassword.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putPassword.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putPassword)

	// DELETE /api/auth/account
	deleteAccount, _ := r.NewOperationContext(http.MethodDelete, "/api/auth/account")
	deleteAccount.SetSummary("Delete account")
	deleteAccount.SetDescription("Deletes the account and its saved journey. Requires Bearer token.")
	deleteAccount.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteAccount.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteAccount)

	// GET /api/journey
	getJourney, _ := r.NewOperationContext(http.MethodGet, "/api/journey")
	getJourney.SetSummary("Fetch saved journey")
	getJourney.SetDescription("Returns the raw saved journey, or 404 if none has been synced. Requires Bearer token.")
	getJourney.AddRespStructure(journey.PersistedJourney{}, openapi.WithHTTPStatus(http.StatusOK))
	getJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getJourney)

	// PUT /api/journey
	putJourney, _ := r.NewOperationContext(http.MethodPut, "/api/journey")
	putJourney.SetSummary("Save journey")
	putJourney.SetDescription("Overwrites the saved journey. Last write wins. Requires Bearer token.")
	putJourney.AddReqStructure(journey.PersistedJourney{})
	putJourney.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	putJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putJourney.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putJourney)

	// GET /api/journey/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/journey/state")
	getState.SetSummary("Merged journey state")
	getState.SetDescription("Returns the saved journey merged onto the current stage template. Requires Bearer token.")
	getState.AddRespStructure(JourneyStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// GET /api/journey/template
	getTemplate, _ := r.NewOperationContext(http.MethodGet, "/api/journey/template")
	getTemplate.SetSummary("Journey template")
	getTemplate.SetDescription("Returns the default seven-stage journey template.")
	getTemplate.AddRespStructure(JourneyStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getTemplate)

	// GET /api/journey/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/journey/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of journey-updated events. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/content/guides
	listGuides, _ := r.NewOperationContext(http.MethodGet, "/api/content/guides")
	listGuides.SetSummary("List guides")
	listGuides.AddRespStructure([]content.Guide{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listGuides)

	// GET /api/content/guides/{slug}
	getGuide, _ := r.NewOperationContext(http.MethodGet, "/api/content/guides/{slug}")
	getGuide.SetSummary("Get guide")
	getGuide.AddRespStructure(content.Guide{}, openapi.WithHTTPStatus(http.StatusOK))
	getGuide.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGuide)

	// GET /api/content/faqs
	getFAQs, _ := r.NewOperationContext(http.MethodGet, "/api/content/faqs")
	getFAQs.SetSummary("List FAQs")
	getFAQs.AddRespStructure([]content.FAQCategory{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getFAQs)

	// GET /api/content/glossary
	getGlossary, _ := r.NewOperationContext(http.MethodGet, "/api/content/glossary")
	getGlossary.SetSummary("Glossary")
	getGlossary.AddRespStructure([]content.GlossaryEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGlossary)

	// GET /api/content/tasks/{id}
	getTask, _ := r.NewOperationContext(http.MethodGet, "/api/content/tasks/{id}")
	getTask.SetSummary("Checklist task detail")
	getTask.SetDescription("Returns the explainer content for a checklist item.")
	getTask.AddRespStructure(content.Task{}, openapi.WithHTTPStatus(http.StatusOK))
	getTask.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTask)

	// GET /api/calculator/costs
	getCosts, _ := r.NewOperationContext(http.MethodGet, "/api/calculator/costs")
	getCosts.SetSummary("Upfront cost estimate")
	getCosts.SetDescription("Indicative stamp duty, mortgage amount, LTV and typical one-off costs. Query: price, deposit, firstTimeBuyer.")
	getCosts.AddRespStructure(CostsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getCosts.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getCosts)

	// GET /api/chat
	getChat, _ := r.NewOperationContext(http.MethodGet, "/api/chat")
	getChat.SetSummary("Chat greeting and prompts")
	getChat.AddRespStructure(ChatInfoResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getChat)

	// POST /api/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/chat")
	postChat.SetSummary("Ask the guide assistant")
	postChat.SetDescription("Returns a canned answer matched by keyword.")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(ChatResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postChat)

	// GET /ws/chat
	getWSChat, _ := r.NewOperationContext(http.MethodGet, "/ws/chat")
	getWSChat.SetSummary("WebSocket chat")
	getWSChat.SetDescription("Upgrades to a WebSocket conversation with the guide assistant.")
	getWSChat.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSChat)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
