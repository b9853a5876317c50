package referral

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -source=referral.go -destination=mock_referral.go -package=referral

type Service interface {
	OpenLedger(ctx context.Context, sessionID string) error
	AddReferral(ctx context.Context, sessionID, code string) error
	RedeemReferral(ctx context.Context, sessionID, code string) error
	GetReferrals(ctx context.Context, sessionID string) (*domain.Referrals, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// AddReferral godoc
//
//	@Summary		Add a referral code
//	@Description	Append a referral code to the pending list of the session. Duplicates are kept.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			session_id	query		string					true	"Session id"
//	@Param			request		body		dto.ReferralRequestDTO	true	"Referral code"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body or session id"
//	@Router			/add-referral/ [post]
func (h *ReferralHandler) AddReferral(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	var req dto.ReferralRequestDTO
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.referralService.AddReferral(r.Context(), sessionID, req.ReferralCode); err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Referral code added.",
	})
}

// RedeemReferral godoc
//
//	@Summary		Redeem a referral code
//	@Description	Remove the code from the first pending list holding it and credit one point to the calling session.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			session_id	query		string					true	"Session id"
//	@Param			request		body		dto.ReferralRequestDTO	true	"Referral code"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body, session id or unknown code"
//	@Router			/redeem-referral/ [post]
func (h *ReferralHandler) RedeemReferral(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	var req dto.ReferralRequestDTO
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.referralService.RedeemReferral(r.Context(), sessionID, req.ReferralCode); err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Referral code redeemed.",
	})
}

// GetReferrals godoc
//
//	@Summary		Get referral state
//	@Description	Current referral score and pending codes of the session
//	@Tags			Referrals
//	@Produce		json
//	@Param			session_id	query		string	true	"Session id"
//	@Success		200			{object}	dto.ReferralsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid session id"
//	@Router			/referrals/ [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	referrals, err := h.referralService.GetReferrals(r.Context(), sessionID)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralsResponseDTO{
		Score:   referrals.Score,
		Pending: referrals.Pending,
	})
}
