package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

type ContextKey string

const SessionIDKey ContextKey = "sessionID"

const SessionIDParam = "session_id"

// SessionMiddleware resolves the bearer session id from the session_id query
// parameter or the Authorization header. Whether the session exists is left
// to the ledger stores.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get(SessionIDParam)
		if sessionID == "" {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				sessionID = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			}
		}
		if sessionID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, domain.ErrInvalidSession.Message)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionIDKey).(string)
	return sessionID
}
