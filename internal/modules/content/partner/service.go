package partner

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
)

var ErrInvalidLink = errors.New("link must be a valid URL")

var schemeRe = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)

type CreateInput struct {
	Name      string
	Link      string
	LogoURL   string
	SortOrder int
	IsActive  bool
}

type UpdateInput struct {
	Name      *string
	Link      *string
	LogoURL   *string
	SortOrder *int
	IsActive  *bool
}

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

// NormalizeLink validates a partner website link. Links without a scheme
// get https:// prefixed before validation. Empty links are allowed.
func NormalizeLink(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", nil
	}
	if !schemeRe.MatchString(link) {
		link = "https://" + link
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "", ErrInvalidLink
	}
	return link, nil
}

func (s *Service) ListPublic() ([]models.PartnerModel, error) {
	var partners []models.PartnerModel
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&partners).Error
	return partners, err
}

func (s *Service) ListAdmin() ([]models.PartnerModel, error) {
	var partners []models.PartnerModel
	return partners, s.db.Order("sort_order ASC, created_at DESC").Find(&partners).Error
}

func (s *Service) GetByID(id string) (*models.PartnerModel, error) {
	var partner models.PartnerModel
	if err := s.db.First(&partner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (s *Service) Create(in *CreateInput) (*models.PartnerModel, error) {
	link, err := NormalizeLink(in.Link)
	if err != nil {
		return nil, err
	}

	partner := models.PartnerModel{
		Name:      in.Name,
		Link:      link,
		LogoURL:   in.LogoURL,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	}
	return &partner, s.db.Create(&partner).Error
}

func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*models.PartnerModel, error) {
	partner, err := s.GetByID(id)
	if err != nil || partner == nil {
		return partner, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Link != nil {
		link, err := NormalizeLink(*in.Link)
		if err != nil {
			return nil, err
		}
		updates["link"] = link
	}
	if in.LogoURL != nil {
		s.store.Delete(ctx, partner.LogoURL)
		updates["logo_url"] = *in.LogoURL
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	return partner, s.db.Model(partner).Updates(updates).Error
}

func (s *Service) Delete(ctx context.Context, id string) (*models.PartnerModel, error) {
	partner, err := s.GetByID(id)
	if err != nil || partner == nil {
		return partner, err
	}

	s.store.Delete(ctx, partner.LogoURL)
	if err := s.db.Unscoped().Delete(partner).Error; err != nil {
		return nil, err
	}
	return partner, nil
}
