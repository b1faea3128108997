package model

// Schedule escala mensal de uma equipe — tabela schedules
// Month segue o formato AAAA-MM. O par (TeamID, Month) é único entre
// escalas ativas.
type Schedule struct {
	ScheduleID  string   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	TeamID      string   `gorm:"type:uuid;not null"                                       json:"team_id"`
	Month       string   `gorm:"type:char(7);not null"                                    json:"month"`
	SEIProcess  string   `gorm:"column:sei_process;type:varchar(64);not null;default:''"  json:"sei_process"`
	HolidayDays IntArray `gorm:"type:integer[];not null;default:'{}'"                     json:"holiday_days"`
	VersionedModel

	// Associações
	Team    *Team            `gorm:"foreignKey:TeamID;references:TeamID"                    json:"team,omitempty"`
	People  []SchedulePerson `gorm:"foreignKey:ScheduleID;references:ScheduleID"            json:"people,omitempty"`
	Entries []ScheduleEntry  `gorm:"foreignKey:ScheduleID;references:ScheduleID"            json:"entries,omitempty"`
}

// TableName define o nome da tabela
func (Schedule) TableName() string { return "schedules" }

// SchedulePerson linha visível da escala — tabela schedule_people
// Position determina a ordem de exibição e a rotação da escadinha.
type SchedulePerson struct {
	ScheduleID string `gorm:"type:uuid;primaryKey" json:"schedule_id"`
	PersonID   string `gorm:"type:uuid;primaryKey" json:"person_id"`
	Position   int    `gorm:"not null"             json:"position"`

	// Associações
	Person *Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

// TableName define o nome da tabela
func (SchedulePerson) TableName() string { return "schedule_people" }

// ScheduleEntry atribuição de uma pessoa a um (dia, faixa) — tabela schedule_entries
// Day é o dia do mês (1..31). No máximo uma pessoa por (dia, faixa).
type ScheduleEntry struct {
	EntryID    string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	ScheduleID string `gorm:"type:uuid;not null"                                       json:"schedule_id"`
	Day        int    `gorm:"not null"                                                 json:"day"`
	SlotID     string `gorm:"type:uuid;not null"                                       json:"slot_id"`
	PersonID   string `gorm:"type:uuid;not null"                                       json:"person_id"`
	BaseModel
}

// TableName define o nome da tabela
func (ScheduleEntry) TableName() string { return "schedule_entries" }
