package models

// CourseModel is a training course offered by the institute.
type CourseModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Slug        string `json:"slug"        gorm:"uniqueIndex;not null"`
	CardBody    string `json:"cardBody"`
	Description string `json:"description" gorm:"type:longtext"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   int    `json:"sortOrder"   gorm:"default:0"`
	IsActive    bool   `json:"isActive"    gorm:"default:true"`
	IsAvailable bool   `json:"isAvailable" gorm:"default:true"`
}

func (CourseModel) TableName() string { return "courses" }
