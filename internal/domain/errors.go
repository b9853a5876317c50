package domain

import "errors"

type Kind string

const (
	KindDuplicateUsername    Kind = "duplicate_username"
	KindUnknownUser          Kind = "unknown_user"
	KindInvalidCredentials   Kind = "invalid_credentials"
	KindInvalidSession       Kind = "invalid_session"
	KindReferralCodeNotFound Kind = "referral_code_not_found"
	KindInsufficientBalance  Kind = "insufficient_balance"
	KindInvalidAmount        Kind = "invalid_amount"
)

// Error is a client-input failure of a ledger operation. The message is
// safe to return to the caller as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrDuplicateUsername    = &Error{Kind: KindDuplicateUsername, Message: "Username already exists."}
	ErrUnknownUser          = &Error{Kind: KindUnknownUser, Message: "User not found. Please register first."}
	ErrInvalidCredentials   = &Error{Kind: KindInvalidCredentials, Message: "Incorrect login."}
	ErrInvalidSession       = &Error{Kind: KindInvalidSession, Message: "Invalid session ID."}
	ErrReferralCodeNotFound = &Error{Kind: KindReferralCodeNotFound, Message: "Referral code not found."}
	ErrInsufficientBalance  = &Error{Kind: KindInsufficientBalance, Message: "Insufficient balance."}
	ErrInvalidAmount        = &Error{Kind: KindInvalidAmount, Message: "Invalid withdrawal amount."}
)

// AsError unwraps err to a ledger Error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
