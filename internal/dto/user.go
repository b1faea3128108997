package dto

// ── Usuários do painel ──

// CreateUserRequest criação de usuário
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role"     binding:"required,oneof=admin team_admin"`
	TeamID   FlexID `json:"team_id"` // obrigatório para team_admin
}

// UpdateUserRequest atualização de usuário; campos ausentes não mudam
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=64"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Role     *string `json:"role"     binding:"omitempty,oneof=admin team_admin"`
	TeamID   *FlexID `json:"team_id"`
}

// UserResponse usuário sem campos sensíveis
type UserResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Role     string     `json:"role"`
	TeamID   string     `json:"team_id,omitempty"`
	Team     *TeamBrief `json:"team,omitempty"`
}
