package dto

type ReferralRequestDTO struct {
	ReferralCode string `json:"referral_code" example:"FRIEND-2024"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Referral code added."`
}

type ReferralsResponseDTO struct {
	Score   int      `json:"score" example:"2"`
	Pending []string `json:"pending"`
}
