package dto

// ── Importação de feriados (ICS) ──

// HolidayPreviewRequest pedido de extração de feriados de um calendário
// ICS para um mês específico. Aceita o conteúdo ICS direto ou a URL de
// onde baixá-lo; ao menos um dos dois é obrigatório.
type HolidayPreviewRequest struct {
	Month string `json:"month" binding:"required,len=7"`
	ICS   string `json:"ics"   binding:"omitempty"`
	URL   string `json:"url"   binding:"omitempty,url"`
}

// HolidayItem feriado encontrado no calendário
type HolidayItem struct {
	Day  int    `json:"day"`
	Name string `json:"name"`
}

// HolidayPreviewResponse dias de feriado do mês, prontos para alimentar
// a escadinha
type HolidayPreviewResponse struct {
	Month    string        `json:"month"`
	Days     []int         `json:"days"`
	Holidays []HolidayItem `json:"holidays"`
}
