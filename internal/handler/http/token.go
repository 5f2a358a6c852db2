package http

import (
	"errors"
	"net/http"

	"github.com/vineetdaniels2108/facility-analysis/internal/logger"
	"github.com/vineetdaniels2108/facility-analysis/internal/service"
	"github.com/vineetdaniels2108/facility-analysis/internal/utils"
)

// token handles the client-credentials grant. The request body is expected to
// be form-encoded, as prescribed by RFC 6749 section 4.4.2.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body was passed")
		http.Error(w, "invalid form body was passed", http.StatusBadRequest)
		return
	}

	grantType := r.PostFormValue("grant_type")
	clientID := r.PostFormValue("client_id")
	clientSecret := r.PostFormValue("client_secret")

	tokenResponse, err := h.services.AuthService.IssueToken(ctx, grantType, clientID, clientSecret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrantType):
			log.Err(err).Msg("unsupported grant type")
			http.Error(w, "unsupported grant type", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidClientCredentials):
			log.Err(err).Msg("invalid client credentials")
			http.Error(w, "invalid client credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token issuance")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("client_id", clientID).Msg("access token issued")

	utils.WriteJSON(w, tokenResponse, http.StatusOK)
}
