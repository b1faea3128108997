package dto

// ── Projeção pública de plantões ──

// OnDutyPerson pessoa de plantão agora
type OnDutyPerson struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	TimeSlot string `json:"time_slot"`
}

// OnDutyGroup plantões de uma equipe, com o setor e hospital derivados
// do primeiro setor da equipe
type OnDutyGroup struct {
	Team     string         `json:"team"`
	Sector   string         `json:"sector,omitempty"`
	Hospital string         `json:"hospital,omitempty"`
	OnDuty   []OnDutyPerson `json:"on_duty"`
}

// OnDutyResponse resposta do agregado público de hoje
type OnDutyResponse struct {
	Now  string        `json:"now"` // RFC 3339 no fuso da aplicação
	Data []OnDutyGroup `json:"data"`
}
