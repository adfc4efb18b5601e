package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/core/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/platform/config"
	"github.com/finassoc/association_finance_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindActiveSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error) {
	args := m.Called(ctx, sessionToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockUserRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUserRepository) InvalidateActiveSessionsForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) InvalidateSession(ctx context.Context, sessionID string, now time.Time) error {
	args := m.Called(ctx, sessionID, now)
	return args.Error(0)
}

func (m *MockUserRepository) TouchSession(ctx context.Context, sessionID string, now time.Time) error {
	args := m.Called(ctx, sessionID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AuthServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	mockRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:             "test-secret",
		JWTIssuer:             "association-finance-app",
		JWTExpiryDuration:     time.Hour,
		SessionExpiryDuration: 30 * 24 * time.Hour,
	}
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "tesoureiro",
		Email:          "tesoureiro@example.org",
		HashedPassword: hash,
	}
	req := dto.LoginRequest{Username: user.Username, Password: password}

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()
	// Prior sessions die so only one stays active per user
	suite.mockRepo.On("InvalidateActiveSessionsForUser", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once()
	suite.mockRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.UserID == user.UserID &&
			s.IsActive &&
			s.SessionToken != "" &&
			s.IPAddress == "10.0.0.1" &&
			s.ExpiresAt.After(time.Now().Add(29*24*time.Hour))
	})).Return(nil).Once()

	resp, err := suite.service.Login(ctx, req, "10.0.0.1", "test-agent")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), resp.ExpiresAt, time.Second)

	// The signed token round-trips and carries the session binding
	claims, err := utils.ParseAccessToken(resp.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.NotEmpty(claims.SessionToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	req := dto.LoginRequest{Username: "ghost", Password: "whatever"}

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, req, "10.0.0.1", "test-agent")

	suite.Require().Error(err)
	suite.Nil(resp)
	// An unknown username is indistinguishable from a wrong password
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "tesoureiro",
		HashedPassword: hash,
	}
	req := dto.LoginRequest{Username: user.Username, Password: "wrong-password"}

	suite.mockRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, req, "10.0.0.1", "test-agent")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockRepo.AssertNotCalled(suite.T(), "InvalidateActiveSessionsForUser", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout_Success() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	suite.mockRepo.On("InvalidateSession", ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Logout(ctx, sessionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestValidateSession_Active() {
	ctx := context.Background()
	sessionToken := "opaque-session-token"
	session := &domain.Session{
		SessionID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		SessionToken: sessionToken,
		IsActive:     true,
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	suite.mockRepo.On("FindActiveSessionByToken", ctx, sessionToken).Return(session, nil).Once()
	suite.mockRepo.On("TouchSession", ctx, session.SessionID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.ValidateSession(ctx, sessionToken)

	suite.Require().NoError(err)
	suite.Equal(session, result)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestValidateSession_TouchFailureIgnored() {
	ctx := context.Background()
	sessionToken := "opaque-session-token"
	session := &domain.Session{
		SessionID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		SessionToken: sessionToken,
		IsActive:     true,
	}

	suite.mockRepo.On("FindActiveSessionByToken", ctx, sessionToken).Return(session, nil).Once()
	// Activity tracking is best-effort and never blocks the request
	suite.mockRepo.On("TouchSession", ctx, session.SessionID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateSession(ctx, sessionToken)

	suite.Require().NoError(err)
	suite.Equal(session, result)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestValidateSession_NotActive() {
	ctx := context.Background()

	suite.mockRepo.On("FindActiveSessionByToken", ctx, "stale-token").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateSession(ctx, "stale-token")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockRepo.AssertNotCalled(suite.T(), "TouchSession", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
