package model

// Team equipe de sobreaviso — tabela teams
type Team struct {
	TeamID      string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name        string `gorm:"type:varchar(120);not null"                               json:"name"`
	Description string `gorm:"type:varchar(255);not null;default:''"                    json:"description"`
	SoftDeleteModel

	// Associações
	Sectors []Sector `gorm:"many2many:team_sectors;foreignKey:TeamID;joinForeignKey:team_id;references:SectorID;joinReferences:sector_id" json:"sectors,omitempty"`
	People  []Person `gorm:"foreignKey:TeamID;references:TeamID"                                                                          json:"people,omitempty"`
}

// TableName define o nome da tabela
func (Team) TableName() string { return "teams" }
