package dto

// ── Faixas horárias ──

// CreateTimeSlotRequest criação de faixa horária
type CreateTimeSlotRequest struct {
	Label     string `json:"label"      binding:"required,min=1,max=120"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time"   binding:"required,len=5"`
}

// UpdateTimeSlotRequest atualização de faixa horária
type UpdateTimeSlotRequest struct {
	Label     *string `json:"label"      binding:"omitempty,min=1,max=120"`
	StartTime *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime   *string `json:"end_time"   binding:"omitempty,len=5"`
}

// TimeSlotResponse faixa horária com os campos derivados que os
// consumidores precisam exibir
type TimeSlotResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Code      string  `json:"code"`     // derivado do rótulo
	Duration  float64 `json:"duration"` // horas, com virada de meia-noite
}
