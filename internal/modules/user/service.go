package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/pagination"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns users newest first, optionally filtered by role or a
// case-insensitive search over name and email.
func (s *Service) List(q pagination.Query, role, search string) ([]models.UserModel, response.Pagination, error) {
	tx := s.db.Model(&models.UserModel{}).Order("created_at DESC")
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if search != "" {
		pat := "%" + search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", pat, pat)
	}

	var users []models.UserModel
	page, err := pagination.Paginate(tx, q, &users)
	return users, page, err
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
