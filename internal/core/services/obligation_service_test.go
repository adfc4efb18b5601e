package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/core/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockObligationRepository is a mock type for the ObligationRepositoryFacade interface
type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) ListObligations(ctx context.Context, filters portsrepo.ObligationListFilters, limit int, offset int) ([]domain.Obligation, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) FindObligationsByRecurrenceGroup(ctx context.Context, recurrenceGroupID string) ([]domain.Obligation, error) {
	args := m.Called(ctx, recurrenceGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) SaveObligations(ctx context.Context, obligations []domain.Obligation) error {
	args := m.Called(ctx, obligations)
	return args.Error(0)
}

func (m *MockObligationRepository) UpdateObligation(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) SettleObligation(ctx context.Context, obligation domain.Obligation, movement domain.Movement) error {
	args := m.Called(ctx, obligation, movement)
	return args.Error(0)
}

func (m *MockObligationRepository) RevertObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error {
	args := m.Called(ctx, obligation, userID, now)
	return args.Error(0)
}

func (m *MockObligationRepository) DeleteObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error {
	args := m.Called(ctx, obligation, userID, now)
	return args.Error(0)
}

// MockPartyRepository is a mock type for the PartyRepositoryFacade interface
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

// MockBeneficiaryRepository is a mock type for the BeneficiaryRepositoryFacade interface
type MockBeneficiaryRepository struct {
	mock.Mock
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) ListBeneficiaries(ctx context.Context, limit int, offset int) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID string) error {
	args := m.Called(ctx, beneficiaryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ObligationServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockObligationRepository
	mockAccountRepo *MockAccountRepository
	mockPartyRepo   *MockPartyRepository
	mockBenefRepo   *MockBeneficiaryRepository
	service         portssvc.ObligationSvcFacade
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockObligationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockBenefRepo = new(MockBeneficiaryRepository)
	suite.service = services.NewObligationService(suite.mockRepo, suite.mockAccountRepo, suite.mockPartyRepo, suite.mockBenefRepo)
}

// expectReferencesValid wires the lookups a creation request performs on its
// counterparty and account.
func (suite *ObligationServiceTestSuite) expectReferencesValid(ctx context.Context, partyID, accountID string) {
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID, Kind: domain.Supplier, Name: "Fornecedor"}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID, Kind: domain.Bank}, nil).Once()
}

// --- Test Cases ---

func (suite *ObligationServiceTestSuite) TestCreateObligation_Single_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	partyID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.CreateObligationRequest{
		Kind:           domain.Payable,
		CounterpartyID: partyID,
		Category:       "Energia",
		AccountID:      accountID,
		IssueDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(200),
	}

	suite.expectReferencesValid(ctx, partyID, accountID)
	suite.mockRepo.On("SaveObligations", ctx, mock.MatchedBy(func(os []domain.Obligation) bool {
		return len(os) == 1 &&
			os[0].Status == domain.Pending &&
			os[0].InstallmentIndex == 1 &&
			os[0].InstallmentCount == 1 &&
			os[0].RecurrenceGroupID == nil
	})).Return(nil).Once()

	created, err := suite.service.CreateObligation(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.NotEmpty(created[0].ObligationID)
	suite.Equal(domain.Pending, created[0].Status)
	suite.Equal(creatorUserID, created[0].CreatedBy)
	suite.WithinDuration(time.Now(), created[0].CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SettleObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_InvalidAmount() {
	ctx := context.Background()
	req := dto.CreateObligationRequest{
		Kind:           domain.Payable,
		CounterpartyID: uuid.NewString(),
		Category:       "Energia",
		AccountID:      uuid.NewString(),
		Amount:         decimal.Zero,
	}

	created, err := suite.service.CreateObligation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveObligations", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_BeneficiaryOnReceivable() {
	ctx := context.Background()
	beneficiaryID := uuid.NewString()
	req := dto.CreateObligationRequest{
		Kind:           domain.Receivable,
		CounterpartyID: uuid.NewString(),
		BeneficiaryID:  &beneficiaryID,
		Category:       "Mensalidade",
		AccountID:      uuid.NewString(),
		Amount:         decimal.NewFromInt(50),
	}

	created, err := suite.service.CreateObligation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveObligations", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_Recurring_FanOut() {
	ctx := context.Background()
	partyID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.CreateObligationRequest{
		Kind:             domain.Payable,
		CounterpartyID:   partyID,
		Category:         "Aluguel",
		AccountID:        accountID,
		IssueDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Amount:           decimal.NewFromInt(800),
		IsRecurring:      true,
		InstallmentCount: 4,
	}

	// Issue and due dates both advance one calendar month, clamping to month ends
	expectedIssueDates := []time.Time{
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
	}
	expectedDueDates := []time.Time{
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.expectReferencesValid(ctx, partyID, accountID)
	suite.mockRepo.On("SaveObligations", ctx, mock.MatchedBy(func(os []domain.Obligation) bool {
		if len(os) != 4 {
			return false
		}
		groupID := os[0].RecurrenceGroupID
		if groupID == nil {
			return false
		}
		for i, o := range os {
			if o.Status != domain.Pending ||
				o.InstallmentIndex != i+1 ||
				o.InstallmentCount != 4 ||
				o.RecurrenceGroupID == nil ||
				*o.RecurrenceGroupID != *groupID ||
				!o.IssueDate.Equal(expectedIssueDates[i]) ||
				!o.DueDate.Equal(expectedDueDates[i]) {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	created, err := suite.service.CreateObligation(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(created, 4)
	for i, o := range created {
		suite.True(o.IssueDate.Equal(expectedIssueDates[i]), "installment %d issue date", i+1)
		suite.True(o.DueDate.Equal(expectedDueDates[i]), "installment %d due date", i+1)
	}

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestCreateObligation_AlreadySettled() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	partyID := uuid.NewString()
	accountID := uuid.NewString()
	settlementDate := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	req := dto.CreateObligationRequest{
		Kind:           domain.Payable,
		CounterpartyID: partyID,
		Category:       "Energia",
		AccountID:      accountID,
		IssueDate:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(120),
		Settled:        true,
		SettlementDate: &settlementDate,
	}

	// One lookup for reference validation, one to build the movement description
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID, Kind: domain.Supplier, Name: "Companhia de Energia"}, nil).Twice()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID, Kind: domain.Bank}, nil).Once()
	suite.mockRepo.On("SaveObligations", ctx, mock.AnythingOfType("[]domain.Obligation")).Return(nil).Once()
	suite.mockRepo.On("SettleObligation", ctx, mock.AnythingOfType("domain.Obligation"), mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Description == "Pagamento - Companhia de Energia" &&
			mv.Direction == domain.Out &&
			mv.OriginType == domain.OriginPayable &&
			mv.OriginID != nil &&
			mv.OccurredAt.Equal(settlementDate)
	})).Return(nil).Once()

	created, err := suite.service.CreateObligation(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.Equal(domain.Settled, created[0].Status)
	suite.Require().NotNil(created[0].SettlementDate)
	suite.True(created[0].SettlementDate.Equal(settlementDate))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSettleObligation_Payable_WithBeneficiary() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	partyID := uuid.NewString()
	beneficiaryID := uuid.NewString()
	userID := uuid.NewString()
	pending := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Payable,
		CounterpartyID: partyID,
		BeneficiaryID:  &beneficiaryID,
		Status:         domain.Pending,
		Category:       "Cesta básica",
		AccountID:      uuid.NewString(),
		Amount:         decimal.NewFromInt(300),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(pending, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID, Name: "Mercado Central"}, nil).Once()
	suite.mockBenefRepo.On("FindBeneficiaryByID", ctx, beneficiaryID).Return(&domain.Beneficiary{BeneficiaryID: beneficiaryID, Name: "Maria"}, nil).Once()
	suite.mockRepo.On("SettleObligation", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.ObligationID == obligationID && o.Status == domain.Settled && o.SettlementDate != nil
	}), mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Description == "Pagamento - Mercado Central (para Maria)" &&
			mv.Direction == domain.Out &&
			mv.OriginType == domain.OriginPayable &&
			mv.OriginID != nil && *mv.OriginID == obligationID &&
			mv.Amount.Equal(pending.Amount)
	})).Return(nil).Once()

	settled, err := suite.service.SettleObligation(ctx, obligationID, dto.SettleObligationRequest{}, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(settled)
	suite.Equal(domain.Settled, settled.Status)
	suite.Require().NotNil(settled.SettlementDate)
	suite.WithinDuration(time.Now(), *settled.SettlementDate, time.Second)
	suite.Equal(userID, settled.LastUpdatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockBenefRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSettleObligation_Receivable_Description() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	pending := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Receivable,
		CounterpartyID: uuid.NewString(),
		Status:         domain.Pending,
		Category:       "Mensalidade",
		AccountID:      uuid.NewString(),
		Amount:         decimal.NewFromInt(60),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(pending, nil).Once()
	suite.mockRepo.On("SettleObligation", ctx, mock.AnythingOfType("domain.Obligation"), mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Description == "Recebimento - Mensalidade" &&
			mv.Direction == domain.In &&
			mv.OriginType == domain.OriginReceivable
	})).Return(nil).Once()

	settled, err := suite.service.SettleObligation(ctx, obligationID, dto.SettleObligationRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.Settled, settled.Status)

	suite.mockRepo.AssertExpectations(suite.T())
	// Receivables never resolve parties for the description
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByID", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestSettleObligation_CounterpartyGone_FallbackDescription() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	partyID := uuid.NewString()
	pending := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Payable,
		CounterpartyID: partyID,
		Status:         domain.Pending,
		Category:       "Energia",
		AccountID:      uuid.NewString(),
		Amount:         decimal.NewFromInt(45),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(pending, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SettleObligation", ctx, mock.AnythingOfType("domain.Obligation"), mock.MatchedBy(func(mv domain.Movement) bool {
		return mv.Description == "Pagamento - Fornecedor"
	})).Return(nil).Once()

	settled, err := suite.service.SettleObligation(ctx, obligationID, dto.SettleObligationRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.Settled, settled.Status)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSettleObligation_AlreadySettled_NoOp() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	settlementDate := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	alreadySettled := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Payable,
		Status:         domain.Settled,
		SettlementDate: &settlementDate,
		Amount:         decimal.NewFromInt(90),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(alreadySettled, nil).Once()

	settled, err := suite.service.SettleObligation(ctx, obligationID, dto.SettleObligationRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(alreadySettled, settled)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SettleObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestSettleObligation_ConcurrentWinnerReturned() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	pending := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Receivable,
		Status:         domain.Pending,
		Category:       "Mensalidade",
		AccountID:      uuid.NewString(),
		Amount:         decimal.NewFromInt(60),
	}
	settlementDate := time.Now().UTC()
	stored := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Receivable,
		Status:         domain.Settled,
		SettlementDate: &settlementDate,
		Amount:         decimal.NewFromInt(60),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(pending, nil).Once()
	// A concurrent settle won the status-guarded update
	suite.mockRepo.On("SettleObligation", ctx, mock.AnythingOfType("domain.Obligation"), mock.AnythingOfType("domain.Movement")).Return(apperrors.ErrConflict).Once()
	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(stored, nil).Once()

	settled, err := suite.service.SettleObligation(ctx, obligationID, dto.SettleObligationRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(stored, settled)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRevertObligation_Success() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	userID := uuid.NewString()
	settlementDate := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)
	settled := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Payable,
		Status:         domain.Settled,
		SettlementDate: &settlementDate,
		Amount:         decimal.NewFromInt(150),
	}
	reverted := &domain.Obligation{
		ObligationID: obligationID,
		Kind:         domain.Payable,
		Status:       domain.Pending,
		Amount:       decimal.NewFromInt(150),
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(settled, nil).Once()
	suite.mockRepo.On("RevertObligation", ctx, *settled, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(reverted, nil).Once()

	result, err := suite.service.RevertObligationToPending(ctx, obligationID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Pending, result.Status)
	suite.Nil(result.SettlementDate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRevertObligation_PendingNoOp() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	pending := &domain.Obligation{
		ObligationID: obligationID,
		Kind:         domain.Receivable,
		Status:       domain.Pending,
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(pending, nil).Once()

	result, err := suite.service.RevertObligationToPending(ctx, obligationID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(pending, result)

	suite.mockRepo.AssertNotCalled(suite.T(), "RevertObligation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_AmountChangeOnSettled_Resettles() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	partyID := uuid.NewString()
	userID := uuid.NewString()
	settlementDate := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	current := &domain.Obligation{
		ObligationID:   obligationID,
		Kind:           domain.Payable,
		CounterpartyID: partyID,
		Status:         domain.Settled,
		Category:       "Aluguel",
		AccountID:      uuid.NewString(),
		SettlementDate: &settlementDate,
		Amount:         decimal.NewFromInt(800),
	}
	newAmount := decimal.NewFromInt(850)
	req := dto.UpdateObligationRequest{Amount: &newAmount}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(current, nil).Once()
	// The stale movement is shed before the corrected one is recorded
	suite.mockRepo.On("RevertObligation", ctx, *current, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("UpdateObligation", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.ObligationID == obligationID &&
			o.Status == domain.Pending &&
			o.SettlementDate == nil &&
			o.Amount.Equal(newAmount)
	})).Return(nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(&domain.Party{PartyID: partyID, Name: "Imobiliária"}, nil).Once()
	suite.mockRepo.On("SettleObligation", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.Status == domain.Settled && o.Amount.Equal(newAmount)
	}), mock.MatchedBy(func(mv domain.Movement) bool {
		// The re-settlement keeps the original settlement date
		return mv.Amount.Equal(newAmount) && mv.OccurredAt.Equal(settlementDate)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateObligation(ctx, obligationID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Settled, updated.Status)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Require().NotNil(updated.SettlementDate)
	suite.True(updated.SettlementDate.Equal(settlementDate))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_PendingNotesOnly() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	current := &domain.Obligation{
		ObligationID: obligationID,
		Kind:         domain.Receivable,
		Status:       domain.Pending,
		Amount:       decimal.NewFromInt(60),
	}
	newNotes := "pagador avisado"
	req := dto.UpdateObligationRequest{Notes: &newNotes}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(current, nil).Once()
	suite.mockRepo.On("UpdateObligation", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.Notes == newNotes && o.Status == domain.Pending
	})).Return(nil).Once()
	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(current, nil).Once()

	_, err := suite.service.UpdateObligation(ctx, obligationID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "RevertObligation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SettleObligation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestDeleteObligation_Success() {
	ctx := context.Background()
	obligationID := uuid.NewString()
	userID := uuid.NewString()
	obligation := &domain.Obligation{
		ObligationID: obligationID,
		Kind:         domain.Payable,
		Status:       domain.Settled,
	}

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(obligation, nil).Once()
	suite.mockRepo.On("DeleteObligation", ctx, *obligation, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteObligation(ctx, obligationID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestDeleteObligation_NotFound() {
	ctx := context.Background()
	obligationID := uuid.NewString()

	suite.mockRepo.On("FindObligationByID", ctx, obligationID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteObligation(ctx, obligationID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteObligation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestListObligations_FiltersPassedThrough() {
	ctx := context.Background()
	kind := domain.Payable
	status := domain.Pending
	params := dto.ListObligationsParams{
		Kind:   &kind,
		Status: &status,
		Limit:  20,
		Offset: 0,
	}
	expected := []domain.Obligation{
		{ObligationID: uuid.NewString(), Kind: domain.Payable, Status: domain.Pending},
	}

	suite.mockRepo.On("ListObligations", ctx, mock.MatchedBy(func(f portsrepo.ObligationListFilters) bool {
		return f.Kind != nil && *f.Kind == domain.Payable &&
			f.Status != nil && *f.Status == domain.Pending &&
			f.DueFrom == nil && f.DueUntil == nil
	}), 20, 0).Return(expected, nil).Once()

	resp, err := suite.service.ListObligations(ctx, params)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Obligations, 1)
	suite.Equal(expected[0].ObligationID, resp.Obligations[0].ObligationID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestListObligations_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListObligations", ctx, mock.AnythingOfType("repositories.ObligationListFilters"), 50, 0).Return(nil, expectedErr).Once()

	resp, err := suite.service.ListObligations(ctx, dto.ListObligationsParams{Limit: 50})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestObligationService(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
