package models

// Hero slide media types.
const (
	HeroSlideImage = "image"
	HeroSlideVideo = "video"
)

// HeroSlideModel is a slide on the landing-page hero carousel.
type HeroSlideModel struct {
	Base
	Type       string `json:"type"       gorm:"not null"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	MediaURL   string `json:"mediaUrl"   gorm:"not null"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
	Order      int    `json:"order"      gorm:"column:order_num;default:0"`
	IsActive   bool   `json:"isActive"   gorm:"default:true"`
}

func (HeroSlideModel) TableName() string { return "hero_slides" }
