package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/core/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepository = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	args := m.Called(ctx, periodID)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindClosedPeriodFor(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

// --- Test Suite Setup ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPeriodRepository
	service  portssvc.PeriodSvcFacade
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodRepository)
	suite.service = services.NewPeriodService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{StartDate: "2025-01-01", EndDate: "2025-03-31"}

	suite.mockRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(period.PeriodID)
	suite.False(period.IsClosed, "new periods start open")
	suite.Nil(period.ClosedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_SingleDayAllowed() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{StartDate: "2025-01-31", EndDate: "2025-01-31"}

	suite.mockRepo.On("SavePeriod", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().NoError(err)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{StartDate: "2025-03-31", EndDate: "2025-01-01"}

	_, err := suite.service.CreatePeriod(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodDates)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_CloseStampsClosedAt() {
	ctx := context.Background()
	periodID := uuid.NewString()
	existing := &domain.AccountingPeriod{
		PeriodID:  periodID,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	closed := true

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).Return(nil).Once()

	updated, err := suite.service.UpdatePeriod(ctx, periodID, dto.UpdatePeriodRequest{IsClosed: &closed})

	suite.Require().NoError(err)
	suite.True(updated.IsClosed)
	suite.Require().NotNil(updated.ClosedAt)
	suite.WithinDuration(time.Now().UTC(), *updated.ClosedAt, time.Minute)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_RecloseKeepsOriginalStamp() {
	ctx := context.Background()
	periodID := uuid.NewString()
	firstClose := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	existing := &domain.AccountingPeriod{
		PeriodID:  periodID,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		IsClosed:  true,
		ClosedAt:  &firstClose,
	}
	closed := true

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePeriod", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdatePeriod(ctx, periodID, dto.UpdatePeriodRequest{IsClosed: &closed})

	suite.Require().NoError(err)
	suite.True(updated.IsClosed)
	suite.Equal(firstClose, *updated.ClosedAt)
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_ReopenIgnored() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closedAt := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	existing := &domain.AccountingPeriod{
		PeriodID:  periodID,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		IsClosed:  true,
		ClosedAt:  &closedAt,
	}
	open := false

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePeriod", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdatePeriod(ctx, periodID, dto.UpdatePeriodRequest{IsClosed: &open})

	suite.Require().NoError(err)
	suite.True(updated.IsClosed, "closing is one-way")
}

func (suite *PeriodServiceTestSuite) TestUpdatePeriod_DateShiftRevalidated() {
	ctx := context.Background()
	periodID := uuid.NewString()
	existing := &domain.AccountingPeriod{
		PeriodID:  periodID,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	badEnd := "2024-12-31"

	suite.mockRepo.On("FindPeriodByID", ctx, periodID).Return(existing, nil).Once()

	_, err := suite.service.UpdatePeriod(ctx, periodID, dto.UpdatePeriodRequest{EndDate: &badEnd})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodDates)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestDeletePeriod_NotFound() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockRepo.On("DeletePeriod", ctx, periodID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeletePeriod(ctx, periodID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
