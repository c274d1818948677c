package server

import (
	"errors"
	"net/http"

	"github.com/firsthome/firsthome/internal/content"
	"github.com/firsthome/firsthome/internal/journey"
)

// JourneyStateResponse is the saved journey merged onto the current
// stage template, ready for display.
type JourneyStateResponse struct {
	Stages []journey.Stage `json:"stages"`
}

// handleJourneyGet returns the raw saved journey, or 404 if the user
// has never synced one.
func handleJourneyGet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.FetchJourney(r.Context(), userIDFrom(r))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "no saved journey")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// handleJourneyPut overwrites the saved journey. The newest write wins;
// there is no merging between devices on the server side.
func handleJourneyPut(store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p journey.PersistedJourney
		if err := readJSON(w, r, &p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Stages == nil {
			writeError(w, http.StatusBadRequest, "stages is required")
			return
		}

		userID := userIDFrom(r)
		if err := store.UpsertJourney(r.Context(), userID, p); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(userID, SSEEvent{Type: "journey-updated"})
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleJourneyState merges the saved journey onto the stage template
// server-side, so clients don't need the merge logic to render.
func handleJourneyState(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.FetchJourney(r.Context(), userIDFrom(r))
		if err != nil && !errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		stages := journey.Merge(content.DefaultStages(), p)
		writeJSON(w, http.StatusOK, JourneyStateResponse{Stages: stages})
	}
}

func handleJourneyTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, JourneyStateResponse{Stages: content.DefaultStages()})
	}
}
