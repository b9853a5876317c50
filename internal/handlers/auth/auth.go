package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account and its first session, with an empty referral list, zero score and zero balance
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/register/ [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequestDTO
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sessionID, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		SessionID: sessionID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Return the session id bound to the credentials, minting one if none exists
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body, unknown user or incorrect login"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/ [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequestDTO
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sessionID, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		SessionID: sessionID,
	})
}
