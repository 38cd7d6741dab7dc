package models

// Contact message triage statuses.
const (
	ContactNew      = "new"
	ContactRead     = "read"
	ContactArchived = "archived"
)

// ContactMessageModel is a message submitted through the public contact form.
type ContactMessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:longtext;not null"`
	Status  string `json:"status"  gorm:"default:new"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }
