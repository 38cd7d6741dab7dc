package page

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/database"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/slug"
)

var (
	ErrKeyRequired = errors.New("key is required")
	ErrKeyTaken    = errors.New("A page with this key already exists")
)

type CreateInput struct {
	Key      string
	Title    string
	Content  string
	IsActive bool
}

type UpdateInput struct {
	Title    *string
	Content  *string
	IsActive *bool
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// NormalizeKey slugifies a page key so lookups are case and
// whitespace insensitive.
func NormalizeKey(raw string) string {
	return slug.Slugify(strings.TrimSpace(raw))
}

func (s *Service) ListPublic() ([]models.PageContentModel, error) {
	var pages []models.PageContentModel
	err := s.db.Where("is_active = ?", true).
		Order("`key` ASC").
		Find(&pages).Error
	return pages, err
}

func (s *Service) GetPublicByKey(key string) (*models.PageContentModel, error) {
	var page models.PageContentModel
	err := s.db.Where("`key` = ? AND is_active = ?", NormalizeKey(key), true).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (s *Service) ListAdmin() ([]models.PageContentModel, error) {
	var pages []models.PageContentModel
	return pages, s.db.Order("`key` ASC").Find(&pages).Error
}

func (s *Service) GetByKey(key string) (*models.PageContentModel, error) {
	var page models.PageContentModel
	err := s.db.Where("`key` = ?", NormalizeKey(key)).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (s *Service) Create(in *CreateInput) (*models.PageContentModel, error) {
	key := NormalizeKey(in.Key)
	if key == "" {
		return nil, ErrKeyRequired
	}

	page := models.PageContentModel{
		Key:      key,
		Title:    in.Title,
		Content:  in.Content,
		IsActive: in.IsActive,
	}
	if err := s.db.Create(&page).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrKeyTaken
		}
		return nil, err
	}
	return &page, nil
}

// Upsert updates the page stored under key, creating it when absent.
func (s *Service) Upsert(key string, in *UpdateInput) (*models.PageContentModel, bool, error) {
	page, err := s.GetByKey(key)
	if err != nil {
		return nil, false, err
	}

	if page == nil {
		normalized := NormalizeKey(key)
		if normalized == "" {
			return nil, false, ErrKeyRequired
		}
		page = &models.PageContentModel{Key: normalized, IsActive: true}
		if in.Title != nil {
			page.Title = *in.Title
		}
		if in.Content != nil {
			page.Content = *in.Content
		}
		if in.IsActive != nil {
			page.IsActive = *in.IsActive
		}
		if err := s.db.Create(page).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return nil, false, ErrKeyTaken
			}
			return nil, false, err
		}
		return page, true, nil
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return page, false, s.db.Model(page).Updates(updates).Error
}

func (s *Service) Delete(key string) (*models.PageContentModel, error) {
	page, err := s.GetByKey(key)
	if err != nil || page == nil {
		return page, err
	}
	if err := s.db.Unscoped().Delete(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}
