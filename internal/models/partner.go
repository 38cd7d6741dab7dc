package models

// PartnerModel is a partner organization shown in the partners strip.
type PartnerModel struct {
	Base
	Name      string `json:"name"      gorm:"not null"`
	Link      string `json:"link"      gorm:"not null"`
	LogoURL   string `json:"logoUrl"   gorm:"not null"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`
	IsActive  bool   `json:"isActive"  gorm:"default:true"`
}

func (PartnerModel) TableName() string { return "partners" }
