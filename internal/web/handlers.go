package web

import (
	"encoding/json"
	"net/http"

	"deskflow/internal/domain"
	"deskflow/internal/watcher"
)

type handlers struct {
	state *watcher.State
}

type scorePayload struct {
	Percent float64 `json:"percent"`
	Rating  string  `json:"rating"`
}

type statePayload struct {
	ActiveWindow   *domain.WindowObservation `json:"active_window,omitempty"`
	VisibleWindows domain.WindowSnapshot     `json:"visible_windows"`
	Categories     []domain.CategoryUsage    `json:"categories"`
	Score          scorePayload              `json:"score"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *handlers) fullState(w http.ResponseWriter, r *http.Request) {
	score := h.state.Score()

	payload := statePayload{
		VisibleWindows: h.state.Snapshot(),
		Categories:     h.state.Summary().Displayed(),
		Score:          scorePayload{Percent: score.Percent, Rating: string(score.Rating)},
	}
	if obs := h.state.Observation(); !obs.IsZero() {
		payload.ActiveWindow = &obs
	}
	if payload.VisibleWindows == nil {
		payload.VisibleWindows = domain.WindowSnapshot{}
	}
	if payload.Categories == nil {
		payload.Categories = []domain.CategoryUsage{}
	}

	writeJSON(w, payload)
}

func (h *handlers) score(w http.ResponseWriter, r *http.Request) {
	score := h.state.Score()
	writeJSON(w, scorePayload{Percent: score.Percent, Rating: string(score.Rating)})
}

func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	categories := h.state.Summary().Displayed()
	if categories == nil {
		categories = []domain.CategoryUsage{}
	}
	writeJSON(w, categories)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}
