package certification

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/database"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/slug"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
)

var (
	ErrSlugFromTitle = errors.New("Unable to generate slug from title")
	ErrSlugTaken     = errors.New("A certification service with this slug already exists")
)

type CreateInput struct {
	Title            string
	Slug             string
	ShortDescription string
	Description      string
	HeroSubtitle     string
	SortOrder        int
	IsActive         bool
	CardImageURL     string
	HeroImageURL     string
	InnerImageURL    string
}

type UpdateInput struct {
	Title            *string
	Slug             *string
	ShortDescription *string
	Description      *string
	HeroSubtitle     *string
	SortOrder        *int
	IsActive         *bool
	CardImageURL     *string
	HeroImageURL     *string
	InnerImageURL    *string
}

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) ListPublic() ([]models.CertificationServiceModel, error) {
	var items []models.CertificationServiceModel
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *Service) GetPublicBySlug(rawSlug string) (*models.CertificationServiceModel, error) {
	var item models.CertificationServiceModel
	err := s.db.Where("slug = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(rawSlug)), true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) ListAdmin() ([]models.CertificationServiceModel, error) {
	var items []models.CertificationServiceModel
	return items, s.db.Order("sort_order ASC, created_at DESC").Find(&items).Error
}

func (s *Service) GetByID(id string) (*models.CertificationServiceModel, error) {
	var item models.CertificationServiceModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) slugExists(candidate, excludeID string) (bool, error) {
	q := s.db.Model(&models.CertificationServiceModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) resolveSlug(explicit, title, excludeID string) (string, error) {
	if explicit = strings.ToLower(strings.TrimSpace(explicit)); explicit != "" {
		taken, err := s.slugExists(explicit, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlugTaken
		}
		return explicit, nil
	}

	base := slug.Slugify(title)
	if base == "" {
		return "", ErrSlugFromTitle
	}
	return slug.AllocateUnique(base, s.slugExists, excludeID)
}

func (s *Service) Create(in *CreateInput) (*models.CertificationServiceModel, error) {
	finalSlug, err := s.resolveSlug(in.Slug, in.Title, "")
	if err != nil {
		return nil, err
	}

	item := models.CertificationServiceModel{
		Title:            strings.TrimSpace(in.Title),
		Slug:             finalSlug,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		HeroSubtitle:     in.HeroSubtitle,
		CardImageURL:     in.CardImageURL,
		HeroImageURL:     in.HeroImageURL,
		InnerImageURL:    in.InnerImageURL,
		SortOrder:        in.SortOrder,
		IsActive:         in.IsActive,
	}
	if err := s.db.Create(&item).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*models.CertificationServiceModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = strings.TrimSpace(*in.Title)
	}
	switch {
	case in.Slug != nil:
		newSlug, err := s.resolveSlug(*in.Slug, "", id)
		if err != nil {
			return nil, err
		}
		updates["slug"] = newSlug
	case in.Title != nil && strings.TrimSpace(*in.Title) != item.Title:
		newSlug, err := s.resolveSlug("", *in.Title, id)
		if err != nil && err != ErrSlugFromTitle {
			return nil, err
		}
		if err == nil {
			updates["slug"] = newSlug
		}
	}
	if in.ShortDescription != nil {
		updates["short_description"] = *in.ShortDescription
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.HeroSubtitle != nil {
		updates["hero_subtitle"] = *in.HeroSubtitle
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.CardImageURL != nil {
		s.store.Delete(ctx, item.CardImageURL)
		updates["card_image_url"] = *in.CardImageURL
	}
	if in.HeroImageURL != nil {
		s.store.Delete(ctx, item.HeroImageURL)
		updates["hero_image_url"] = *in.HeroImageURL
	}
	if in.InnerImageURL != nil {
		s.store.Delete(ctx, item.InnerImageURL)
		updates["inner_image_url"] = *in.InnerImageURL
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) ToggleActive(id string, target *bool) (*models.CertificationServiceModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	next := !item.IsActive
	if target != nil {
		next = *target
	}
	if err := s.db.Model(item).Update("is_active", next).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*models.CertificationServiceModel, error) {
	item, err := s.GetByID(id)
	if err != nil || item == nil {
		return item, err
	}

	s.store.Delete(ctx, item.CardImageURL)
	s.store.Delete(ctx, item.HeroImageURL)
	s.store.Delete(ctx, item.InnerImageURL)
	if err := s.db.Unscoped().Delete(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}
