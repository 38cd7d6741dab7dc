package models

// ServiceModel is a service presented on the marketing site.
type ServiceModel struct {
	Base
	Title         string `json:"title"         gorm:"not null"`
	Description   string `json:"description"   gorm:"type:longtext;not null"`
	ImageURL      string `json:"imageUrl"      gorm:"not null"`
	InnerImageURL string `json:"innerImageUrl" gorm:"not null"`
	Slug          string `json:"slug"          gorm:"uniqueIndex;not null"`
	SortOrder     int    `json:"sortOrder"     gorm:"default:0"`
	IsActive      bool   `json:"isActive"      gorm:"default:true"`
}

func (ServiceModel) TableName() string { return "services" }
