package course

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
	ErrSlugTaken     = errors.New("A course with this slug already exists")
)

// CreateInput carries already-parsed form values. Boolean flags arrive
// as real booleans; the handler owns the stringly-typed form boundary.
type CreateInput struct {
	Title       string
	Slug        string
	CardBody    string
	Description string
	SortOrder   int
	IsActive    bool
	IsAvailable bool
	ImageURL    string
}

// UpdateInput uses nil to mean "field absent from the request".
type UpdateInput struct {
	Title       *string
	Slug        *string
	CardBody    *string
	Description *string
	SortOrder   *int
	IsActive    *bool
	IsAvailable *bool
	ImageURL    *string
}

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

// ListPublic returns active courses sorted for the catalogue.
func (s *Service) ListPublic() ([]models.CourseModel, error) {
	var courses []models.CourseModel
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&courses).Error
	return courses, err
}

// GetPublicBySlug returns an active course, or nil when none matches.
func (s *Service) GetPublicBySlug(rawSlug string) (*models.CourseModel, error) {
	var course models.CourseModel
	err := s.db.Where("slug = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(rawSlug)), true).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// ListAdmin returns every course, optionally filtered by availability
// ("available" or "unavailable").
func (s *Service) ListAdmin(availability string) ([]models.CourseModel, error) {
	q := s.db.Order("sort_order ASC, created_at DESC")
	switch availability {
	case "available":
		q = q.Where("is_available = ?", true)
	case "unavailable":
		q = q.Where("is_available = ?", false)
	}

	var courses []models.CourseModel
	return courses, q.Find(&courses).Error
}

func (s *Service) GetByID(id string) (*models.CourseModel, error) {
	var course models.CourseModel
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *Service) slugExists(candidate, excludeID string) (bool, error) {
	q := s.db.Model(&models.CourseModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// resolveSlug applies the slug policy: an explicit slug is lowercased
// and must be free (no auto-suffixing); otherwise one is derived from
// the title with collision back-off.
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

func (s *Service) Create(in *CreateInput) (*models.CourseModel, error) {
	finalSlug, err := s.resolveSlug(in.Slug, in.Title, "")
	if err != nil {
		return nil, err
	}

	course := models.CourseModel{
		Title:       strings.TrimSpace(in.Title),
		Slug:        finalSlug,
		CardBody:    in.CardBody,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
		IsAvailable: in.IsAvailable,
	}
	if err := s.db.Create(&course).Error; err != nil {
		// a concurrent writer can win the slug between probe and insert
		if database.IsDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &course, nil
}

func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*models.CourseModel, error) {
	course, err := s.GetByID(id)
	if err != nil || course == nil {
		return course, err
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
	case in.Title != nil && strings.TrimSpace(*in.Title) != course.Title:
		// title changed without an explicit slug: regenerate
		newSlug, err := s.resolveSlug("", *in.Title, id)
		if err != nil && err != ErrSlugFromTitle {
			return nil, err
		}
		if err == nil {
			updates["slug"] = newSlug
		}
	}
	if in.CardBody != nil {
		updates["card_body"] = *in.CardBody
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.ImageURL != nil {
		s.store.Delete(ctx, course.ImageURL)
		updates["image_url"] = *in.ImageURL
	}

	if err := s.db.Model(course).Updates(updates).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return course, nil
}

// ToggleAvailability sets isAvailable, or flips it when target is nil.
func (s *Service) ToggleAvailability(id string, target *bool) (*models.CourseModel, error) {
	course, err := s.GetByID(id)
	if err != nil || course == nil {
		return course, err
	}

	next := !course.IsAvailable
	if target != nil {
		next = *target
	}
	if err := s.db.Model(course).Update("is_available", next).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course and its image file (best effort).
func (s *Service) Delete(ctx context.Context, id string) (*models.CourseModel, error) {
	course, err := s.GetByID(id)
	if err != nil || course == nil {
		return course, err
	}

	s.store.Delete(ctx, course.ImageURL)
	if err := s.db.Unscoped().Delete(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}
