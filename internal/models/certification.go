package models

// CertificationServiceModel is a certification offering (e.g. ACLS, BLS).
type CertificationServiceModel struct {
	Base
	Title            string `json:"title"            gorm:"not null"`
	Slug             string `json:"slug"             gorm:"uniqueIndex;not null"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"      gorm:"type:longtext"`
	HeroSubtitle     string `json:"heroSubtitle"`
	CardImageURL     string `json:"cardImageUrl"`
	HeroImageURL     string `json:"heroImageUrl"`
	InnerImageURL    string `json:"innerImageUrl"`
	SortOrder        int    `json:"sortOrder"        gorm:"default:0"`
	IsActive         bool   `json:"isActive"         gorm:"default:true"`
}

func (CertificationServiceModel) TableName() string { return "certification_services" }
