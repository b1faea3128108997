package dto

// ── Autenticação ──

// LoginRequest credenciais de acesso
type LoginRequest struct {
	Username   string `json:"username"    binding:"required,min=3,max=64"`
	Password   string `json:"password"    binding:"required,min=6,max=72"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshRequest renovação de sessão
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse par de tokens emitido no login e na renovação
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // validade do access token em segundos
	User         UserResponse `json:"user"`
}
