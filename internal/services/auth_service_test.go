package services

import (
	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/models"
)

func (suite *ServiceTestSuite) newAuthService() *AuthService {
	return NewAuthService(suite.db, suite.sessions)
}

func (suite *ServiceTestSuite) TestSignUpCreatesCredentialAccountAndSession() {
	auth := suite.newAuthService()

	result, err := auth.SignUp(suite.ctx, &SignUpRequest{
		Name:     " Ada Lovelace ",
		Email:    "Ada@Example.com",
		Password: "correct horse battery",
	}, ClientInfo{IPAddress: "10.0.0.1", UserAgent: "go-test"})
	suite.Require().NoError(err)
	suite.Equal("ada@example.com", result.User.Email)
	suite.Equal("Ada Lovelace", result.User.Name)

	var account models.Account
	suite.Require().NoError(suite.db.First(&account, "user_id = ?", result.User.ID).Error)
	suite.Equal(CredentialProviderID, account.ProviderID)
	suite.Require().NotNil(account.Password)
	suite.NotEqual("correct horse battery", *account.Password)

	identity, err := suite.sessions.Resolve(suite.ctx, result.Token)
	suite.Require().NoError(err)
	suite.Equal(result.User.ID, identity.User.ID)
	suite.Equal("10.0.0.1", identity.Session.IPAddress)
}

func (suite *ServiceTestSuite) TestSignUpRejectsDuplicateEmail() {
	auth := suite.newAuthService()
	req := &SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "password-123"}

	_, err := auth.SignUp(suite.ctx, req, ClientInfo{})
	suite.Require().NoError(err)

	_, err = auth.SignUp(suite.ctx, &SignUpRequest{Name: "Ada", Email: "ADA@example.com", Password: "password-456"}, ClientInfo{})
	suite.True(apperrors.Is(err, apperrors.CodeConflict))
	suite.Equal(i18n.KeyAuthEmailTaken, apperrors.As(err).Key())
	suite.EqualValues(1, suite.countRows(&models.User{}))
}

func (suite *ServiceTestSuite) TestSignUpValidatesInput() {
	auth := suite.newAuthService()

	for name, req := range map[string]*SignUpRequest{
		"missing name":   {Email: "ada@example.com", Password: "password-123"},
		"bad email":      {Name: "Ada", Email: "not-an-email", Password: "password-123"},
		"short password": {Name: "Ada", Email: "ada@example.com", Password: "short"},
	} {
		_, err := auth.SignUp(suite.ctx, req, ClientInfo{})
		suite.True(apperrors.Is(err, apperrors.CodeValidation), name)
	}
	suite.Zero(suite.countRows(&models.User{}))
}

func (suite *ServiceTestSuite) TestSignIn() {
	auth := suite.newAuthService()
	signedUp, err := auth.SignUp(suite.ctx, &SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "password-123"}, ClientInfo{})
	suite.Require().NoError(err)

	result, err := auth.SignIn(suite.ctx, &SignInRequest{Email: "ada@example.com", Password: "password-123"}, ClientInfo{})
	suite.Require().NoError(err)
	suite.Equal(signedUp.User.ID, result.User.ID)
	suite.NotEqual(signedUp.Session.ID, result.Session.ID)

	_, err = suite.sessions.Resolve(suite.ctx, result.Token)
	suite.NoError(err)
}

func (suite *ServiceTestSuite) TestSignInRejectsBadCredentials() {
	auth := suite.newAuthService()
	_, err := auth.SignUp(suite.ctx, &SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "password-123"}, ClientInfo{})
	suite.Require().NoError(err)

	// A user without a credential account cannot sign in with a password.
	suite.createUser("oauth@example.com")

	for name, req := range map[string]*SignInRequest{
		"wrong password":        {Email: "ada@example.com", Password: "password-124"},
		"unknown email":         {Email: "nobody@example.com", Password: "password-123"},
		"no credential account": {Email: "oauth@example.com", Password: "password-123"},
	} {
		_, err := auth.SignIn(suite.ctx, req, ClientInfo{})
		suite.True(apperrors.Is(err, apperrors.CodeUnauthorized), name)
		suite.Equal(i18n.KeyAuthInvalidCredentials, apperrors.As(err).Key(), name)
	}
}
