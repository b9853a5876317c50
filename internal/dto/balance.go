package dto

import "time"

type BalanceResponseDTO struct {
	Current   float64 `json:"current" example:"60"`
	Withdrawn float64 `json:"withdrawn" example:"40"`
}

type WithdrawRequestDTO struct {
	Amount *float64 `json:"amount" example:"40"`
}

type NewBalanceResponseDTO struct {
	NewBalance float64 `json:"new_balance" example:"60"`
}

type GetWithdrawalsResponseDTO struct {
	Amount      float64   `json:"amount" example:"40"`
	ProcessedAt time.Time `json:"processed_at" example:"2020-12-09T16:09:57+03:00"`
}
