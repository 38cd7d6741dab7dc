package registration

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/database"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/mail"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/pagination"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/view"
)

var (
	ErrCourseNotFound    = errors.New("Course not found")
	ErrCourseUnavailable = errors.New("Registration for this course is closed")
	ErrAlreadyRegistered = errors.New("You are already registered for this course")
	ErrInvalidStatus     = errors.New("status must be one of: pending, paid, rejected")
)

type Service struct {
	db       *gorm.DB
	mailer   *mail.Sender
	siteName string
	log      *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, siteName string, log *zap.Logger) *Service {
	return &Service{db: db, mailer: mailer, siteName: siteName, log: log}
}

func ValidStatus(s string) bool {
	for _, v := range models.RegistrationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Register signs userID up for courseID. Returns ErrAlreadyRegistered when
// the (course, user) pair already exists.
func (s *Service) Register(userID, courseID, notes string) (*models.CourseRegistrationModel, error) {
	var course models.CourseModel
	if err := s.db.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if !view.CanRegister(course.IsActive, course.IsAvailable) {
		return nil, ErrCourseUnavailable
	}

	reg := models.CourseRegistrationModel{
		CourseID: courseID,
		UserID:   userID,
		Status:   models.RegistrationPending,
		Notes:    notes,
	}
	if err := s.db.Create(&reg).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	reg.Course = &course
	return &reg, nil
}

func (s *Service) ListForUser(userID string) ([]models.CourseRegistrationModel, error) {
	var regs []models.CourseRegistrationModel
	err := s.db.Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error
	return regs, err
}

// GetForUserAndCourse returns a user's registration for one course, or
// nil when they never registered.
func (s *Service) GetForUserAndCourse(userID, courseID string) (*models.CourseRegistrationModel, error) {
	var reg models.CourseRegistrationModel
	err := s.db.Preload("Course").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (s *Service) ListAdmin(q pagination.Query, status, courseID string) ([]models.CourseRegistrationModel, response.Pagination, error) {
	tx := s.db.Model(&models.CourseRegistrationModel{}).
		Preload("User").Preload("Course").
		Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if courseID != "" {
		tx = tx.Where("course_id = ?", courseID)
	}

	var regs []models.CourseRegistrationModel
	page, err := pagination.Paginate(tx, q, &regs)
	return regs, page, err
}

func (s *Service) GetByID(id string) (*models.CourseRegistrationModel, error) {
	var reg models.CourseRegistrationModel
	err := s.db.Preload("User").Preload("Course").First(&reg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

// UpdateStatus moves a registration through the approval flow and emails
// the registrant about the change. The email is best effort.
func (s *Service) UpdateStatus(id, status string, notes *string) (*models.CourseRegistrationModel, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	reg, err := s.GetByID(id)
	if err != nil || reg == nil {
		return reg, err
	}

	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	if err := s.db.Model(reg).Updates(updates).Error; err != nil {
		return nil, err
	}
	reg.Status = status
	if notes != nil {
		reg.Notes = *notes
	}

	if s.mailer.Enabled() && reg.User != nil && reg.Course != nil {
		go func(r models.CourseRegistrationModel) {
			err := s.mailer.SendRegistrationStatus(r.User.Email, mail.RegistrationStatusData{
				Name:        r.User.Name,
				CourseTitle: r.Course.Title,
				StatusLabel: r.Status,
				Notes:       r.Notes,
				SiteName:    s.siteName,
			})
			if err != nil {
				s.log.Warn("registration status email failed", zap.String("id", r.ID), zap.Error(err))
			}
		}(*reg)
	}
	return reg, nil
}
