package model

// Sector setor assistencial, opcionalmente vinculado a um hospital —
// tabela sectors
type Sector struct {
	SectorID   string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"sector_id"`
	Name       string  `gorm:"type:varchar(120);not null"                               json:"name"`
	HospitalID *string `gorm:"type:uuid"                                                json:"hospital_id,omitempty"`
	SoftDeleteModel

	// Associações
	Hospital *Hospital `gorm:"foreignKey:HospitalID;references:HospitalID" json:"hospital,omitempty"`
}

// TableName define o nome da tabela
func (Sector) TableName() string { return "sectors" }
