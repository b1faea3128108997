package model

// Papéis de usuário
const (
	RoleAdmin     = "admin"      // administra todo o sistema
	RoleTeamAdmin = "team_admin" // administra apenas a própria equipe
)

// User usuário do painel administrativo — tabela users
type User struct {
	UserID       string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string  `gorm:"type:varchar(64);not null"                                json:"username"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                               json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'team_admin'"           json:"role"`
	TeamID       *string `gorm:"type:uuid"                                                json:"team_id,omitempty"` // NULL para admin global
	SoftDeleteModel

	// Associações
	Team *Team `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
}

// TableName define o nome da tabela
func (User) TableName() string { return "users" }

// IsAdmin indica se o usuário tem papel de administrador global
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
