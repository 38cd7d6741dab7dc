package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/database"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/jwt"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/mail"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidRefresh     = errors.New("Invalid refresh token")
)

type SignupDTO struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserPayload is the sanitized user shape returned by auth endpoints.
type UserPayload struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// AuthResult bundles the user with a fresh token pair.
type AuthResult struct {
	User         UserPayload `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type Service struct {
	db     *gorm.DB
	mailer *mail.Sender
	// site identity used in the welcome email
	siteURL  string
	siteName string
}

func NewService(db *gorm.DB, mailer *mail.Sender, siteURL, siteName string) *Service {
	return &Service{db: db, mailer: mailer, siteURL: siteURL, siteName: siteName}
}

func userPayload(u *models.UserModel) UserPayload {
	name := u.Name
	if name == "" && u.FirstName != "" && u.LastName != "" {
		name = u.FirstName + " " + u.LastName
	}
	return UserPayload{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Name:        name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(dto *SignupDTO) (*AuthResult, error) {
	email := NormalizeEmail(dto.Email)

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(dto.FirstName)
	lastName := strings.TrimSpace(dto.LastName)
	user := models.UserModel{
		FirstName:    firstName,
		LastName:     lastName,
		Name:         firstName + " " + lastName,
		Email:        email,
		PhoneNumber:  strings.TrimSpace(dto.PhoneNumber),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// the unique index is the real guarantee against a signup race
		if database.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.tokenPair(&user)
}

func (s *Service) Login(dto *LoginDTO) (*AuthResult, error) {
	var user models.UserModel
	if err := s.db.Where("email = ?", NormalizeEmail(dto.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(&user)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := jwt.ParseRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	var user models.UserModel
	if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return "", ErrInvalidRefresh
	}

	return jwt.SignAccess(user.ID, user.Email, user.Role)
}

// Me loads the authenticated user's sanitized profile.
func (s *Service) Me(userID string) (*UserPayload, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p := userPayload(&user)
	return &p, nil
}

// SendWelcome dispatches the welcome email, waiting at most timeout for
// the SMTP round-trip. Returns whether the mail went out in time;
// signup never fails because of it.
func (s *Service) SendWelcome(user UserPayload, timeout time.Duration) bool {
	if s.mailer == nil || !s.mailer.Enabled() {
		return false
	}

	done := make(chan error, 1)
	go func() {
		done <- s.mailer.SendWelcome(user.Email, mail.WelcomeData{
			Name:     user.FirstName + " " + user.LastName,
			SiteURL:  s.siteURL,
			SiteName: s.siteName,
		})
	}()

	select {
	case err := <-done:
		return err == nil
	case <-time.After(timeout):
		return false
	}
}

func (s *Service) tokenPair(user *models.UserModel) (*AuthResult, error) {
	access, err := jwt.SignAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.SignRefresh(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: userPayload(user), AccessToken: access, RefreshToken: refresh}, nil
}
