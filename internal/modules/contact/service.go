package contact

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/mail"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/pagination"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

var ErrInvalidStatus = errors.New("status must be one of: new, read, archived")

// statuses a message can be triaged into.
var statuses = []string{models.ContactNew, models.ContactRead, models.ContactArchived}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type Service struct {
	db         *gorm.DB
	mailer     *mail.Sender
	adminEmail string
	siteName   string
	log        *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, adminEmail, siteName string, log *zap.Logger) *Service {
	return &Service{db: db, mailer: mailer, adminEmail: adminEmail, siteName: siteName, log: log}
}

func ValidStatus(s string) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s *Service) Create(in *CreateInput) (*models.ContactMessageModel, error) {
	msg := models.ContactMessageModel{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.ContactNew,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	// Admin notification is best effort; the submission already succeeded.
	if s.mailer.Enabled() && s.adminEmail != "" {
		go func(m models.ContactMessageModel) {
			err := s.mailer.SendContactNotify(s.adminEmail, mail.ContactNotifyData{
				Name:     m.Name,
				Email:    m.Email,
				Phone:    m.Phone,
				Subject:  m.Subject,
				Message:  m.Message,
				SiteName: s.siteName,
			})
			if err != nil {
				s.log.Warn("contact notification failed", zap.String("id", m.ID), zap.Error(err))
			}
		}(msg)
	}
	return &msg, nil
}

func (s *Service) ListAdmin(q pagination.Query, status string) ([]models.ContactMessageModel, response.Pagination, error) {
	tx := s.db.Model(&models.ContactMessageModel{}).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var msgs []models.ContactMessageModel
	page, err := pagination.Paginate(tx, q, &msgs)
	return msgs, page, err
}

// GetByID returns a message and marks it read on first view.
func (s *Service) GetByID(id string) (*models.ContactMessageModel, error) {
	var msg models.ContactMessageModel
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if msg.Status == models.ContactNew {
		if err := s.db.Model(&msg).Update("status", models.ContactRead).Error; err != nil {
			return nil, err
		}
		msg.Status = models.ContactRead
	}
	return &msg, nil
}

func (s *Service) UpdateStatus(id, status string) (*models.ContactMessageModel, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var msg models.ContactMessageModel
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.db.Model(&msg).Update("status", status).Error; err != nil {
		return nil, err
	}
	msg.Status = status
	return &msg, nil
}

func (s *Service) Delete(id string) (*models.ContactMessageModel, error) {
	var msg models.ContactMessageModel
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
