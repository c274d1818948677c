package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/firsthome/firsthome/internal/content"
)

func handleGuides() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Guides())
	}
}

func handleGuideBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guide, ok := content.GuideBySlug(chi.URLParam(r, "slug"))
		if !ok {
			writeError(w, http.StatusNotFound, "guide not found")
			return
		}
		writeJSON(w, http.StatusOK, guide)
	}
}

func handleFAQs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.FAQs())
	}
}

func handleGlossary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Glossary())
	}
}

func handleTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, ok := content.TaskFor(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}
