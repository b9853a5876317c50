package utils

import (
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/refledger/internal/domain"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message" example:"Invalid session ID."`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if code == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithLedgerError answers ledger errors with 400 and their message;
// anything else is reported as an internal error.
func RespondWithLedgerError(w http.ResponseWriter, err error) {
	if e, ok := domain.AsError(err); ok {
		RespondWithError(w, http.StatusBadRequest, e.Message)
		return
	}
	zap.L().Error("unexpected service error", zap.Error(err))
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
