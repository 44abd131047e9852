// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/utils"
)

// CredentialProviderID marks accounts that sign in with email and password.
const CredentialProviderID = "credential"

type AuthService struct {
	db       *gorm.DB
	sessions *SessionService
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ClientInfo is recorded on the session issued at sign-in.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

type AuthResult struct {
	Token   string          `json:"token"`
	Session *models.Session `json:"session"`
	User    *models.User    `json:"user"`
}

func NewAuthService(db *gorm.DB, sessions *SessionService) *AuthService {
	return &AuthService{
		db:       db,
		sessions: sessions,
	}
}

// SignUp creates a user with a credential account and signs it in.
func (s *AuthService) SignUp(ctx context.Context, req *SignUpRequest, client ClientInfo) (*AuthResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(err, "invalid sign-up request")
	}

	user := &models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: normalizeEmail(req.Email),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&existing).Error; err != nil {
			return apperrors.StoreError(err, "check existing user")
		}
		if existing > 0 {
			return apperrors.Conflict(i18n.KeyAuthEmailTaken, "email already registered")
		}

		if err := tx.Create(user).Error; err != nil {
			return apperrors.StoreError(err, "create user")
		}

		account := &models.Account{
			AccountID:  user.ID.String(),
			ProviderID: CredentialProviderID,
			UserID:     user.ID,
		}
		if err := account.SetPassword(req.Password); err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "hash password")
		}
		if err := tx.Create(account).Error; err != nil {
			return apperrors.StoreError(err, "create credential account")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("User signed up")
	return s.issue(ctx, user, client)
}

// SignIn checks the password of the user's credential account and issues a
// new session. Unknown emails and wrong passwords are indistinguishable.
func (s *AuthService) SignIn(ctx context.Context, req *SignInRequest, client ClientInfo) (*AuthResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(err, "invalid sign-in request")
	}

	invalid := apperrors.New(apperrors.CodeUnauthorized, i18n.KeyAuthInvalidCredentials, "invalid email or password")

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, apperrors.StoreError(err, "find user")
	}

	var account models.Account
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", user.ID, CredentialProviderID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, apperrors.StoreError(err, "find credential account")
	}

	if err := account.CheckPassword(req.Password); err != nil {
		return nil, invalid
	}

	return s.issue(ctx, &user, client)
}

func (s *AuthService) issue(ctx context.Context, user *models.User, client ClientInfo) (*AuthResult, error) {
	token, session, err := s.sessions.Issue(ctx, user.ID, client.IPAddress, client.UserAgent)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Session: session, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
