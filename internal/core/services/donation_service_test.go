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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDonationRepository is a mock type for the DonationRepositoryFacade interface
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, received *bool, limit int, offset int) ([]domain.Donation, error) {
	args := m.Called(ctx, received, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement) error {
	args := m.Called(ctx, donation, movement)
	return args.Error(0)
}

func (m *MockDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement, reverseMovements bool, userID string, now time.Time) error {
	args := m.Called(ctx, donation, movement, reverseMovements, userID, now)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteDonation(ctx context.Context, donationID string, reverseMovements bool, userID string, now time.Time) error {
	args := m.Called(ctx, donationID, reverseMovements, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DonationServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockDonationRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.DonationSvcFacade
}

func (suite *DonationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewDonationService(suite.mockRepo, suite.mockAccountRepo)
}

// --- Test Cases ---

func (suite *DonationServiceTestSuite) TestCreateDonation_Received_RecordsMovement() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	accountID := uuid.NewString()
	donationDate := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	req := dto.CreateDonationRequest{
		DonorName: "João da Silva",
		Amount:    decimal.NewFromInt(100),
		AccountID: accountID,
		Date:      donationDate,
		Received:  true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID, Kind: domain.Cash}, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation"), mock.MatchedBy(func(mv *domain.Movement) bool {
		return mv != nil &&
			mv.Description == "Doação - João da Silva" &&
			mv.Category == "Doação" &&
			mv.Direction == domain.In &&
			mv.OriginType == domain.OriginDonation &&
			mv.OriginID != nil &&
			mv.OccurredAt.Equal(donationDate) &&
			mv.Amount.Equal(req.Amount)
	})).Return(nil).Once()

	created, err := suite.service.CreateDonation(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.DonationID)
	suite.True(created.Received)
	suite.Equal(creatorUserID, created.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_Promised_NoMovement() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateDonationRequest{
		DonorName: "Ana",
		Amount:    decimal.NewFromInt(50),
		AccountID: accountID,
		Date:      time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		Received:  false,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID, Kind: domain.Bank}, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation"), (*domain.Movement)(nil)).Return(nil).Once()

	created, err := suite.service.CreateDonation(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(created.Received)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_InvalidAmount() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{
		DonorName: "Ana",
		Amount:    decimal.Zero,
		AccountID: uuid.NewString(),
	}

	created, err := suite.service.CreateDonation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestCreateDonation_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateDonationRequest{
		DonorName: "Ana",
		Amount:    decimal.NewFromInt(25),
		AccountID: accountID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateDonation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_MarkReceived() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	current := &domain.Donation{
		DonationID: donationID,
		DonorName:  "Carlos",
		Amount:     decimal.NewFromInt(80),
		AccountID:  uuid.NewString(),
		Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Received:   false,
	}
	received := true
	req := dto.UpdateDonationRequest{Received: &received}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(current, nil).Once()
	suite.mockRepo.On("UpdateDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.DonationID == donationID && d.Received
	}), mock.MatchedBy(func(mv *domain.Movement) bool {
		return mv != nil && mv.Description == "Doação - Carlos" && mv.Direction == domain.In
	}), false, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateDonation(ctx, donationID, req, userID)

	suite.Require().NoError(err)
	suite.True(updated.Received)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_UnmarkReceived_Reverses() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	current := &domain.Donation{
		DonationID: donationID,
		DonorName:  "Carlos",
		Amount:     decimal.NewFromInt(80),
		AccountID:  uuid.NewString(),
		Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Received:   true,
	}
	received := false
	req := dto.UpdateDonationRequest{Received: &received}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(current, nil).Once()
	// The inflow is removed and no replacement is recorded
	suite.mockRepo.On("UpdateDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.DonationID == donationID && !d.Received
	}), (*domain.Movement)(nil), true, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateDonation(ctx, donationID, req, userID)

	suite.Require().NoError(err)
	suite.False(updated.Received)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_AmountChangeWhileReceived_RewritesMovement() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	current := &domain.Donation{
		DonationID: donationID,
		DonorName:  "Carlos",
		Amount:     decimal.NewFromInt(80),
		AccountID:  uuid.NewString(),
		Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Received:   true,
	}
	newAmount := decimal.NewFromInt(120)
	req := dto.UpdateDonationRequest{Amount: &newAmount}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(current, nil).Once()
	// Old movement reversed, corrected one recorded in the same transaction
	suite.mockRepo.On("UpdateDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.Amount.Equal(newAmount) && d.Received
	}), mock.MatchedBy(func(mv *domain.Movement) bool {
		return mv != nil && mv.Amount.Equal(newAmount)
	}), true, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateDonation(ctx, donationID, req, userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestUpdateDonation_NotesOnly_LeavesLedgerAlone() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	current := &domain.Donation{
		DonationID: donationID,
		DonorName:  "Carlos",
		Amount:     decimal.NewFromInt(80),
		AccountID:  uuid.NewString(),
		Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Received:   true,
	}
	newNotes := "recibo emitido"
	req := dto.UpdateDonationRequest{Notes: &newNotes}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(current, nil).Once()
	suite.mockRepo.On("UpdateDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.Notes == newNotes
	}), (*domain.Movement)(nil), false, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateDonation(ctx, donationID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(newNotes, updated.Notes)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_Received_Reverses() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	donation := &domain.Donation{DonationID: donationID, Received: true}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(donation, nil).Once()
	suite.mockRepo.On("DeleteDonation", ctx, donationID, true, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteDonation(ctx, donationID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestDeleteDonation_Promised_NoReversal() {
	ctx := context.Background()
	donationID := uuid.NewString()
	userID := uuid.NewString()
	donation := &domain.Donation{DonationID: donationID, Received: false}

	suite.mockRepo.On("FindDonationByID", ctx, donationID).Return(donation, nil).Once()
	suite.mockRepo.On("DeleteDonation", ctx, donationID, false, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteDonation(ctx, donationID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestListDonations_ReceivedFilter() {
	ctx := context.Background()
	received := true
	params := dto.ListDonationsParams{Received: &received, Limit: 10, Offset: 0}
	expected := []domain.Donation{
		{DonationID: uuid.NewString(), DonorName: "João", Received: true},
	}

	suite.mockRepo.On("ListDonations", ctx, &received, 10, 0).Return(expected, nil).Once()

	resp, err := suite.service.ListDonations(ctx, params)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Donations, 1)
	suite.Equal(expected[0].DonationID, resp.Donations[0].DonationID)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestDonationService(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
