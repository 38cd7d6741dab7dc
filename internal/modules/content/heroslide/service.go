package heroslide

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
)

var ErrInvalidType = errors.New("type must be image or video")

type CreateInput struct {
	Type       string
	Title      string
	Subtitle   string
	MediaURL   string
	ButtonText string
	ButtonLink string
	Order      int
	IsActive   bool
}

type UpdateInput struct {
	Type       *string
	Title      *string
	Subtitle   *string
	MediaURL   *string
	ButtonText *string
	ButtonLink *string
	Order      *int
	IsActive   *bool
}

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

// ListPublic returns active slides in carousel order.
func (s *Service) ListPublic() ([]models.HeroSlideModel, error) {
	var slides []models.HeroSlideModel
	err := s.db.Where("is_active = ?", true).
		Order("order_num ASC, created_at DESC").
		Find(&slides).Error
	return slides, err
}

func (s *Service) ListAdmin() ([]models.HeroSlideModel, error) {
	var slides []models.HeroSlideModel
	return slides, s.db.Order("order_num ASC, created_at DESC").Find(&slides).Error
}

func (s *Service) GetByID(id string) (*models.HeroSlideModel, error) {
	var slide models.HeroSlideModel
	if err := s.db.First(&slide, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slide, nil
}

func validType(t string) bool {
	return t == models.HeroSlideImage || t == models.HeroSlideVideo
}

func (s *Service) Create(in *CreateInput) (*models.HeroSlideModel, error) {
	if in.Type == "" {
		in.Type = models.HeroSlideImage
	}
	if !validType(in.Type) {
		return nil, ErrInvalidType
	}

	slide := models.HeroSlideModel{
		Type:       in.Type,
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		MediaURL:   in.MediaURL,
		ButtonText: in.ButtonText,
		ButtonLink: in.ButtonLink,
		Order:      in.Order,
		IsActive:   in.IsActive,
	}
	return &slide, s.db.Create(&slide).Error
}

func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*models.HeroSlideModel, error) {
	slide, err := s.GetByID(id)
	if err != nil || slide == nil {
		return slide, err
	}

	updates := map[string]interface{}{}
	if in.Type != nil {
		if !validType(*in.Type) {
			return nil, ErrInvalidType
		}
		updates["type"] = *in.Type
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Subtitle != nil {
		updates["subtitle"] = *in.Subtitle
	}
	if in.MediaURL != nil {
		s.store.Delete(ctx, slide.MediaURL)
		updates["media_url"] = *in.MediaURL
	}
	if in.ButtonText != nil {
		updates["button_text"] = *in.ButtonText
	}
	if in.ButtonLink != nil {
		updates["button_link"] = *in.ButtonLink
	}
	if in.Order != nil {
		updates["order_num"] = *in.Order
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	return slide, s.db.Model(slide).Updates(updates).Error
}

func (s *Service) Delete(ctx context.Context, id string) (*models.HeroSlideModel, error) {
	slide, err := s.GetByID(id)
	if err != nil || slide == nil {
		return slide, err
	}

	s.store.Delete(ctx, slide.MediaURL)
	if err := s.db.Unscoped().Delete(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}
