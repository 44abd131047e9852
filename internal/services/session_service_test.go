package services

import (
	"strings"
	"time"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/models"
)

func (suite *ServiceTestSuite) TestIssueAndResolveSession() {
	user := suite.createUser("ada@example.com")

	credential, session, err := suite.sessions.Issue(suite.ctx, user.ID, "10.0.0.7", "curl/8")
	suite.Require().NoError(err)
	suite.NotEmpty(credential)
	suite.Equal(suite.clock.Add(testSessionConfig.TTL), session.ExpiresAt)

	identity, err := suite.sessions.Resolve(suite.ctx, credential)
	suite.Require().NoError(err)
	suite.Equal(user.ID, identity.User.ID)
	suite.Equal(session.ID, identity.Session.ID)
	suite.Equal("10.0.0.7", identity.Session.IPAddress)
}

func (suite *ServiceTestSuite) TestResolveRejectsBadCredentials() {
	user := suite.createUser("ada@example.com")
	credential := suite.signIn(user)

	other := NewSessionService(suite.db, testSessionConfig)
	other.config.Secret = "a-different-secret-entirely"
	forged, _, err := other.Issue(suite.ctx, user.ID, "", "")
	suite.Require().NoError(err)

	for name, cred := range map[string]string{
		"empty":        "",
		"garbage":      "abc",
		"tampered":     tamperSignature(credential),
		"wrong secret": forged,
	} {
		_, err := suite.sessions.Resolve(suite.ctx, cred)
		suite.True(apperrors.Is(err, apperrors.CodeUnauthorized), name)
	}
}

func (suite *ServiceTestSuite) TestResolveRejectsExpiredSession() {
	credential := suite.signIn(suite.createUser("ada@example.com"))

	suite.clock = suite.clock.Add(testSessionConfig.TTL - time.Second)
	_, err := suite.sessions.Resolve(suite.ctx, credential)
	suite.NoError(err)

	suite.clock = suite.clock.Add(time.Second)
	_, err = suite.sessions.Resolve(suite.ctx, credential)
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))
}

func (suite *ServiceTestSuite) TestRevokeSignsOut() {
	credential := suite.signIn(suite.createUser("ada@example.com"))

	suite.Require().NoError(suite.sessions.Revoke(suite.ctx, credential))

	_, err := suite.sessions.Resolve(suite.ctx, credential)
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))

	err = suite.sessions.Revoke(suite.ctx, credential)
	suite.True(apperrors.Is(err, apperrors.CodeUnauthorized))
}

func (suite *ServiceTestSuite) TestPurgeExpiredSessions() {
	user := suite.createUser("ada@example.com")
	now := suite.clock
	suite.clock = now.Add(-2 * testSessionConfig.TTL)
	suite.signIn(user)
	suite.clock = now
	live := suite.signIn(user)

	deleted, err := suite.sessions.PurgeExpired(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	suite.Equal(int64(1), suite.countRows(&models.Session{}))

	_, err = suite.sessions.Resolve(suite.ctx, live)
	suite.NoError(err)
}

// tamperSignature flips the high bits of the first signature byte.
func tamperSignature(credential string) string {
	parts := strings.Split(credential, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'Q'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)
	return strings.Join(parts, ".")
}
