package dto

// ── Pessoas ──

// CreatePersonRequest criação de profissional
type CreatePersonRequest struct {
	Name      string `json:"name"      binding:"required,min=2,max=160"`
	Phone     string `json:"phone"     binding:"omitempty,max=32"`
	Matricula string `json:"matricula" binding:"omitempty,max=32"`
	Cargo     string `json:"cargo"     binding:"omitempty,max=120"`
	TeamID    FlexID `json:"team_id"   binding:"required"`
}

// UpdatePersonRequest atualização de profissional
type UpdatePersonRequest struct {
	Name      *string `json:"name"      binding:"omitempty,min=2,max=160"`
	Phone     *string `json:"phone"     binding:"omitempty,max=32"`
	Matricula *string `json:"matricula" binding:"omitempty,max=32"`
	Cargo     *string `json:"cargo"     binding:"omitempty,max=120"`
	TeamID    *FlexID `json:"team_id"`
}

// PersonListRequest filtros de listagem
type PersonListRequest struct {
	TeamID string `form:"team_id" binding:"omitempty,uuid"`
	Search string `form:"search"  binding:"omitempty,max=160"`
	PaginationRequest
}

// PersonResponse profissional
type PersonResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Matricula string     `json:"matricula"`
	Cargo     string     `json:"cargo"`
	TeamID    string     `json:"team_id"`
	Team      *TeamBrief `json:"team,omitempty"`
}

// PersonBrief resumo de profissional para listas aninhadas
type PersonBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Matricula string `json:"matricula,omitempty"`
	Cargo     string `json:"cargo,omitempty"`
}
