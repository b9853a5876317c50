package dto

type CredentialsRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

type SessionResponseDTO struct {
	SessionID string `json:"session_id" example:"3f0c2a51-8d1e-4b7a-9a43-2b6f6a1c0d9e"`
}
