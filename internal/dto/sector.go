package dto

// ── Setores (serviços) ──

// CreateSectorRequest criação de setor. O hospital é opcional; ausente
// ou nulo cria um setor sem vínculo.
type CreateSectorRequest struct {
	Name       string `json:"name"        binding:"required,min=2,max=120"`
	HospitalID FlexID `json:"hospital_id" binding:"omitempty"`
}

// UpdateSectorRequest atualização de setor. HospitalID nulo mantém o
// vínculo atual; string vazia remove o vínculo.
type UpdateSectorRequest struct {
	Name       *string `json:"name"        binding:"omitempty,min=2,max=120"`
	HospitalID *FlexID `json:"hospital_id"`
}

// SectorResponse setor com o hospital de origem
type SectorResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	HospitalID string         `json:"hospital_id,omitempty"`
	Hospital   *HospitalBrief `json:"hospital,omitempty"`
}

// SectorBrief resumo de setor
type SectorBrief struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HospitalID string `json:"hospital_id,omitempty"`
}
