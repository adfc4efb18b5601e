package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/core/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockMovementRepository is a mock type for the MovementRepositoryFacade interface
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string) ([]domain.Movement, error) {
	args := m.Called(ctx, originType, originID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var movements []domain.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.Movement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return movements, token, args.Error(2)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, originType, originID, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) ResetLedger(ctx context.Context, userID string, now time.Time) (int64, int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovementRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovementsByOriginInTx(ctx context.Context, tx pgx.Tx, originType domain.OriginType, originID string) ([]domain.Movement, error) {
	args := m.Called(ctx, tx, originType, originID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockMovementRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMovementRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockAccountRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestAdjustAccountBalance_Deposit_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	userID := uuid.NewString()
	account := &domain.Account{
		AccountID:      accountID,
		Kind:           domain.Cash,
		CurrentBalance: decimal.NewFromInt(100),
	}
	req := dto.AdjustBalanceRequest{
		Direction: domain.In,
		Amount:    decimal.NewFromInt(40),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("SaveMovement", ctx, mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.AccountID == accountID &&
			mv.Direction == domain.In &&
			mv.Amount.Equal(req.Amount) &&
			mv.Description == "Depósito manual" &&
			mv.Category == "Ajuste" &&
			mv.OriginType == domain.OriginAdjustment &&
			mv.OriginID == nil
	})).Return(nil).Once()

	movement, err := suite.service.AdjustAccountBalance(ctx, accountID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.NotEmpty(movement.MovementID)
	suite.Equal(userID, movement.CreatedBy)
	suite.WithinDuration(time.Now(), movement.OccurredAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustAccountBalance_Withdrawal_DefaultDescription() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{
		AccountID:      accountID,
		Kind:           domain.Bank,
		CurrentBalance: decimal.NewFromInt(500),
	}
	req := dto.AdjustBalanceRequest{
		Direction: domain.Out,
		Amount:    decimal.NewFromInt(200),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("SaveMovement", ctx, mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Direction == domain.Out && mv.Description == "Retirada manual"
	})).Return(nil).Once()

	movement, err := suite.service.AdjustAccountBalance(ctx, accountID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustAccountBalance_InvalidAmount() {
	ctx := context.Background()
	req := dto.AdjustBalanceRequest{
		Direction: domain.In,
		Amount:    decimal.Zero,
	}

	movement, err := suite.service.AdjustAccountBalance(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAdjustAccountBalance_InsufficientBalance() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{
		AccountID:      accountID,
		Kind:           domain.Cash,
		CurrentBalance: decimal.NewFromInt(50),
	}
	req := dto.AdjustBalanceRequest{
		Direction: domain.Out,
		Amount:    decimal.NewFromInt(80),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	// The floor lives inside the movement write, under the account row lock
	insufficientErr := fmt.Errorf("%w: account %s holds 50, cannot withdraw 80", apperrors.ErrInsufficientBalance, accountID)
	suite.mockRepo.On("SaveMovement", ctx, mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Direction == domain.Out && mv.Amount.Equal(req.Amount)
	})).Return(insufficientErr).Once()

	movement, err := suite.service.AdjustAccountBalance(ctx, accountID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.EqualError(err, insufficientErr.Error())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustAccountBalance_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.AdjustBalanceRequest{
		Direction: domain.In,
		Amount:    decimal.NewFromInt(10),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.AdjustAccountBalance(ctx, accountID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListMovements_DefaultLimit() {
	ctx := context.Background()
	nextToken := "token-abc"
	expected := []domain.Movement{
		{MovementID: uuid.NewString(), Direction: domain.In, Amount: decimal.NewFromInt(10)},
	}

	// No limit in the request falls back to the default page size
	suite.mockRepo.On("ListMovements", ctx, (*string)(nil), 50, (*string)(nil)).Return(expected, &nextToken, nil).Once()

	resp, err := suite.service.ListMovements(ctx, dto.ListMovementsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Movements, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListMovements_BadToken() {
	ctx := context.Background()
	badToken := "not-a-token"
	params := dto.ListMovementsParams{NextToken: &badToken}

	suite.mockRepo.On("ListMovements", ctx, (*string)(nil), 50, &badToken).Return(nil, nil, apperrors.ErrValidation).Once()

	resp, err := suite.service.ListMovements(ctx, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetMovementsByOrigin_Success() {
	ctx := context.Background()
	originID := uuid.NewString()
	expected := []domain.Movement{
		{MovementID: uuid.NewString(), OriginType: domain.OriginPayable, OriginID: &originID},
	}

	suite.mockRepo.On("FindMovementsByOrigin", ctx, domain.OriginPayable, originID).Return(expected, nil).Once()

	movements, err := suite.service.GetMovementsByOrigin(ctx, domain.OriginPayable, originID)

	suite.Require().NoError(err)
	suite.Equal(expected, movements)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetMovementByID_NotFound() {
	ctx := context.Background()
	movementID := uuid.NewString()

	suite.mockRepo.On("FindMovementByID", ctx, movementID).Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.GetMovementByID(ctx, movementID)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestResetAllBalances_ReturnsCounts() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ResetLedger", ctx, userID, mock.AnythingOfType("time.Time")).Return(int64(3), int64(17), nil).Once()

	resp, err := suite.service.ResetAllBalances(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.AccountsReset)
	suite.Equal(int64(17), resp.MovementsDeleted)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestResetAllBalances_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("ResetLedger", ctx, userID, mock.AnythingOfType("time.Time")).Return(int64(0), int64(0), expectedErr).Once()

	resp, err := suite.service.ResetAllBalances(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
