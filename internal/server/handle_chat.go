package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nhooyr.io/websocket"

	"github.com/firsthome/firsthome/internal/content"
)

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is a single assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatInfoResponse is the response for GET /api/chat, used to seed the
// conversation UI.
type ChatInfoResponse struct {
	Greeting         string   `json:"greeting"`
	SuggestedPrompts []string `json:"suggestedPrompts"`
}

func handleChatInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ChatInfoResponse{
			Greeting:         content.ChatGreeting(),
			SuggestedPrompts: content.SuggestedPrompts(),
		})
	}
}

func handleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{Reply: content.Reply(req.Message)})
	}
}

// handleWSChat runs the guide assistant over a WebSocket: each text
// frame is a question, each reply frame the canned answer.
func handleWSChat(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
		defer cancel()

		greeting, _ := json.Marshal(ChatResponse{Reply: content.ChatGreeting()})
		if err := conn.Write(ctx, websocket.MessageText, greeting); err != nil {
			logger.Debug("websocket write failed", "error", err)
			return
		}

		for {
			_, msg, err := conn.Read(ctx)
			if err != nil {
				logger.Debug("websocket read ended", "error", err)
				return
			}

			var req ChatRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				// Plain text frames work too.
				req.Message = string(msg)
			}

			reply, _ := json.Marshal(ChatResponse{Reply: content.Reply(req.Message)})
			if err := conn.Write(ctx, websocket.MessageText, reply); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
