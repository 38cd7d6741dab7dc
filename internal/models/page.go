package models

// PageContentModel is a keyed static page (e.g. about, privacy-policy).
type PageContentModel struct {
	Base
	Key      string `json:"key"      gorm:"uniqueIndex;not null"`
	Title    string `json:"title"`
	Content  string `json:"content"  gorm:"type:longtext"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

func (PageContentModel) TableName() string { return "page_contents" }
