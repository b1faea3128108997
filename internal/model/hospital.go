package model

// Hospital unidade hospitalar — tabela hospitals
type Hospital struct {
	HospitalID string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"hospital_id"`
	HUF        string `gorm:"column:huf;type:varchar(120);not null"                    json:"huf"` // sigla do hospital universitário
	UO         string `gorm:"column:uo;type:varchar(120);not null"                     json:"uo"`  // unidade organizacional
	SoftDeleteModel

	// Associações
	Sectors []Sector `gorm:"foreignKey:HospitalID;references:HospitalID" json:"sectors,omitempty"`
}

// TableName define o nome da tabela
func (Hospital) TableName() string { return "hospitals" }
