package model

// Person profissional escalável — tabela people
type Person struct {
	PersonID  string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"person_id"`
	Name      string `gorm:"type:varchar(160);not null"                               json:"name"`
	Phone     string `gorm:"type:varchar(32);not null;default:''"                     json:"phone"`
	Matricula string `gorm:"type:varchar(32);not null;default:''"                     json:"matricula"`
	Cargo     string `gorm:"type:varchar(120);not null;default:''"                    json:"cargo"`
	TeamID    string `gorm:"type:uuid;not null"                                       json:"team_id"`
	SoftDeleteModel

	// Associações
	Team *Team `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
}

// TableName define o nome da tabela
func (Person) TableName() string { return "people" }
