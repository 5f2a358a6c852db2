package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/store"
	"github.com/vineetdaniels2108/facility-analysis/internal/utils"
)

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	simplID := chi.URLParam(r, "simplID")

	clientID, ok := utils.GetClientIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no client id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	log.Debug().Str("client_id", clientID).Str("simpl_id", simplID).Msg("summary requested")

	summaryDocument, err := h.services.SummaryService.GetSummary(ctx, simplID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoSummaryWasFound):
			log.Err(err).Msg("no summary was found for given patient")
			http.Error(w, "no summary was found for given patient", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during summary lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, summaryDocument, http.StatusOK)
}
