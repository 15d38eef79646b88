package dto

// SignupRequest entrada para registro (password en texto, se hashea en el use case).
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // customer | supplier | transporter
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
}

// SigninRequest entrada para login.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// TokenResponse salida de signup/signin.
type TokenResponse struct {
	Token string `json:"token"`
}
