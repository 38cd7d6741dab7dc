package models

// Role values for UserModel.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserModel represents a registered site user or administrator.
type UserModel struct {
	Base
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Name         string `json:"name"`
	Email        string `json:"email"        gorm:"uniqueIndex;not null"`
	PhoneNumber  string `json:"phoneNumber"`
	PasswordHash string `json:"-"            gorm:"not null"`
	Role         string `json:"role"         gorm:"default:user"`
}

func (UserModel) TableName() string { return "users" }
