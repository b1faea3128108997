package model

// TimeSlot faixa horária do catálogo — tabela time_slots
// Os horários são texto HH:MM; faixas que cruzam a meia-noite têm
// EndTime menor ou igual ao StartTime.
type TimeSlot struct {
	TimeSlotID string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"time_slot_id"`
	Label      string `gorm:"type:varchar(120);not null"                               json:"label"`
	StartTime  string `gorm:"type:char(5);not null"                                    json:"start_time"`
	EndTime    string `gorm:"type:char(5);not null"                                    json:"end_time"`
	SoftDeleteModel
}

// TableName define o nome da tabela
func (TimeSlot) TableName() string { return "time_slots" }
