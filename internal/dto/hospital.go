package dto

// ── Hospitais ──

// CreateHospitalRequest criação de hospital
type CreateHospitalRequest struct {
	HUF string `json:"huf" binding:"required,min=2,max=120"`
	UO  string `json:"uo"  binding:"required,min=1,max=120"`
}

// UpdateHospitalRequest atualização de hospital
type UpdateHospitalRequest struct {
	HUF *string `json:"huf" binding:"omitempty,min=2,max=120"`
	UO  *string `json:"uo"  binding:"omitempty,min=1,max=120"`
}

// HospitalResponse hospital
type HospitalResponse struct {
	ID  string `json:"id"`
	HUF string `json:"huf"`
	UO  string `json:"uo"`
}

// HospitalBrief resumo de hospital
type HospitalBrief struct {
	ID  string `json:"id"`
	HUF string `json:"huf"`
	UO  string `json:"uo"`
}
