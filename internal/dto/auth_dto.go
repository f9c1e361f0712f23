package dto

type RegisterRequest struct {
	ZID             string `json:"zid"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type ConfirmRequest struct {
	ZID              string `json:"zid"`
	ConfirmationCode string `json:"confirmation_code"`
}

type LoginRequest struct {
	ZID      string `json:"zid"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ZID          string `json:"zid"`
	Suspended    bool   `json:"suspended"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
