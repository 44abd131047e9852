// internal/services/session_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/utils"
)

// SessionIdentity is a resolved, unexpired session and the user it belongs to.
type SessionIdentity struct {
	Session *models.Session `json:"session"`
	User    *models.User    `json:"user"`
}

// SessionResolver turns a raw session credential into an identity. Services
// that need the caller's identity take the credential explicitly and resolve
// it through this interface.
type SessionResolver interface {
	Resolve(ctx context.Context, credential string) (*SessionIdentity, error)
}

type SessionService struct {
	db     *gorm.DB
	config config.SessionConfig
	now    func() time.Time
}

func NewSessionService(db *gorm.DB, cfg config.SessionConfig) *SessionService {
	return &SessionService{
		db:     db,
		config: cfg,
		now:    time.Now,
	}
}

// Issue creates a session row for the user and returns the signed credential
// the client presents on later requests.
func (s *SessionService) Issue(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) (string, *models.Session, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeInternal, err, "generate session token")
	}

	now := s.now()
	session := &models.Session{
		ExpiresAt: now.Add(s.config.TTL),
		Token:     token,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		UserID:    userID,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return "", nil, apperrors.StoreError(err, "create session")
	}

	credential, err := utils.GenerateSessionJWT([]byte(s.config.Secret), s.config.Issuer, token, userID, now, session.ExpiresAt)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeInternal, err, "sign session credential")
	}

	return credential, session, nil
}

// Resolve verifies the credential and loads its session and user. The session
// row decides validity: a revoked or expired row is rejected even when the
// credential itself still verifies.
func (s *SessionService) Resolve(ctx context.Context, credential string) (*SessionIdentity, error) {
	session, err := s.lookup(ctx, credential)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.now()) {
		return nil, apperrors.Unauthorized("session expired")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("session user not found")
		}
		return nil, apperrors.StoreError(err, "load session user")
	}

	return &SessionIdentity{Session: session, User: &user}, nil
}

// Revoke deletes the session behind the credential (sign-out).
func (s *SessionService) Revoke(ctx context.Context, credential string) error {
	session, err := s.lookup(ctx, credential)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", session.ID).Error; err != nil {
		return apperrors.StoreError(err, "delete session")
	}
	return nil
}

// PurgeExpired removes sessions whose expiry has passed and reports how many
// were deleted.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, apperrors.StoreError(result.Error, "purge expired sessions")
	}

	logrus.WithField("deleted", result.RowsAffected).Info("Purged expired sessions")
	return result.RowsAffected, nil
}

func (s *SessionService) lookup(ctx context.Context, credential string) (*models.Session, error) {
	if credential == "" {
		return nil, apperrors.Unauthorized("missing session credential")
	}

	claims, err := utils.ValidateSessionJWT([]byte(s.config.Secret), s.config.Issuer, credential)
	if err != nil {
		logrus.WithError(err).WithField("credential", utils.FingerprintCredential(credential)).Debug("Rejected session credential")
		return nil, apperrors.Unauthorized("invalid session credential")
	}

	var session models.Session
	if err := s.db.WithContext(ctx).Where("token = ?", claims.ID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("session not found")
		}
		return nil, apperrors.StoreError(err, "load session")
	}

	if session.UserID.String() != claims.Subject {
		return nil, apperrors.Unauthorized("session subject mismatch")
	}

	return &session, nil
}
