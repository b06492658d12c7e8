// Package syncrun exposes the sync trigger endpoint. Sync runs are
// synchronous: the response carries the per-account reconciliation summary.
package syncrun

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerline/ledgerline/internal/sync"
)

type Handler struct {
	svc *sync.Service
}

func NewHandler(svc *sync.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.run)
}

type runRequest struct {
	DryRun bool `json:"dry_run,omitempty"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	var req runRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.svc.Sync(r.Context(), sync.Options{DryRun: req.DryRun})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
