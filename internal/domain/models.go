package domain

import "time"

// ReferralUnitRate is the amount credited per redeemed referral on conversion.
const ReferralUnitRate = 100

type Account struct {
	Username    string
	Fingerprint string
	CreatedAt   time.Time
}

// SessionKey identifies the credential pair a session was minted for.
type SessionKey struct {
	Username    string
	Fingerprint string
}

type Balance struct {
	SessionID string
	Current   float64
	Withdrawn float64
}

type Referrals struct {
	SessionID string
	Score     int
	Pending   []string
}

type Withdrawal struct {
	ID          int
	SessionID   string
	Amount      float64
	ProcessedAt time.Time
}
