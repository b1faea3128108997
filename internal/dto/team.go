package dto

// ── Equipes ──

// CreateTeamRequest criação de equipe
type CreateTeamRequest struct {
	Name        string   `json:"name"        binding:"required,min=2,max=120"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	SectorIDs   []FlexID `json:"sector_ids"`
}

// UpdateTeamRequest atualização de equipe
type UpdateTeamRequest struct {
	Name        *string   `json:"name"        binding:"omitempty,min=2,max=120"`
	Description *string   `json:"description" binding:"omitempty,max=255"`
	SectorIDs   *[]FlexID `json:"sector_ids"` // nil mantém, lista vazia limpa
}

// TeamResponse equipe com setores associados
type TeamResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Sectors     []SectorBrief   `json:"sectors"`
	People      []PersonBrief   `json:"people,omitempty"`
}

// TeamBrief resumo de equipe
type TeamBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
