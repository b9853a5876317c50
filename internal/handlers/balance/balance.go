package balance

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	CreateBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	Withdraw(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error)
	ConvertReferralToMoney(ctx context.Context, sessionID string) (*domain.Balance, error)
	GetWithdrawals(ctx context.Context, sessionID string) ([]domain.Withdrawal, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current balance
//	@Description	Current balance and the total withdrawn by the session
//	@Tags			Balance
//	@Produce		json
//	@Param			session_id	query		string	true	"Session id"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid session id"
//	@Router			/balance/ [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	balance, err := h.balanceService.GetBalance(r.Context(), sessionID)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.Current,
		Withdrawn: balance.Withdrawn,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw money
//	@Description	Debit the balance of the session. Fails without side effects when the amount exceeds the balance.
//	@Tags			Balance
//	@Accept			json
//	@Produce		json
//	@Param			session_id	query		string					true	"Session id"
//	@Param			request		body		dto.WithdrawRequestDTO	true	"Withdrawal amount"
//	@Success		200			{object}	dto.NewBalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body, session id, amount or insufficient balance"
//	@Router			/withdraw/ [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	var req dto.WithdrawRequestDTO
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.Amount == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, err := h.balanceService.Withdraw(r.Context(), sessionID, *req.Amount)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		NewBalance: balance.Current,
	})
}

// ConvertReferralToMoney godoc
//
//	@Summary		Convert referral score to money
//	@Description	Credit score x 100 to the balance and reset the score to zero
//	@Tags			Balance
//	@Produce		json
//	@Param			session_id	query		string	true	"Session id"
//	@Success		200			{object}	dto.NewBalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid session id"
//	@Router			/convert-referral-to-money/ [post]
func (h *BalanceHandler) ConvertReferralToMoney(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	balance, err := h.balanceService.ConvertReferralToMoney(r.Context(), sessionID)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponseDTO{
		NewBalance: balance.Current,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of the session, newest first
//	@Tags			Balance
//	@Produce		json
//	@Param			session_id	query		string	true	"Session id"
//	@Success		200			{array}		dto.GetWithdrawalsResponseDTO
//	@Success		204			{object}	utils.Response	"Withdrawals not found"
//	@Failure		400			{object}	utils.Response	"Invalid session id"
//	@Router			/withdrawals/ [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionFromContext(r.Context())

	withdrawals, err := h.balanceService.GetWithdrawals(r.Context(), sessionID)
	if err != nil {
		utils.RespondWithLedgerError(w, err)
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.GetWithdrawalsResponseDTO{
			Amount:      wd.Amount,
			ProcessedAt: wd.ProcessedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
