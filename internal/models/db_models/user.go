package db_models

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User backs the admin panel accounts. Accounts are provisioned outside
// this service; the table is migrated so the schema stays complete.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Login    string `gorm:"type:varchar(128);uniqueIndex;not null" json:"login"`
	Role     Role   `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
}
