package services_test

import (
	"context"
	"testing"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BadgeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBadgeRepository
	service  portssvc.BadgeSvcFacade
}

func (suite *BadgeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBadgeRepository)
	suite.service = services.NewBadgeService(suite.mockRepo)
}

func (suite *BadgeServiceTestSuite) TestAllocate_FirstCompatibleWins() {
	ctx := context.Background()
	pool := []domain.Badge{
		{BadgeID: "b1", Number: "B-001", Zones: []string{"hall"}, IsAvailable: true},
		{BadgeID: "b2", Number: "B-002", Zones: []string{"hall", "bureaux"}, IsAvailable: true},
		{BadgeID: "b3", Number: "B-003", Zones: []string{"hall", "bureaux", "archives"}, IsAvailable: true},
	}
	suite.mockRepo.On("ListBadges", ctx).Return(pool, nil).Once()
	suite.mockRepo.On("SaveBadge", ctx, mock.MatchedBy(func(b domain.Badge) bool {
		return b.Number == "B-002" && !b.IsAvailable && b.HolderVisitorID == "v1" && b.AssignedAt != nil
	})).Return(domain.Badge{Number: "B-002", IsAvailable: false, HolderVisitorID: "v1"}, nil).Once()

	badge, err := suite.service.Allocate(ctx, []string{"hall", "bureaux"}, "v1")

	suite.Require().NoError(err)
	suite.Equal("B-002", badge.Number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BadgeServiceTestSuite) TestAllocate_SupersetCovers() {
	ctx := context.Background()
	pool := []domain.Badge{
		{BadgeID: "b1", Number: "B-001", Zones: []string{"hall", "bureaux", "direction"}, IsAvailable: true},
	}
	suite.mockRepo.On("ListBadges", ctx).Return(pool, nil).Once()
	suite.mockRepo.On("SaveBadge", ctx, mock.Anything).Return(pool[0], nil).Once()

	badge, err := suite.service.Allocate(ctx, []string{"hall"}, "v1")

	suite.Require().NoError(err)
	suite.Equal("B-001", badge.Number)
}

func (suite *BadgeServiceTestSuite) TestAllocate_NoCompatibleBadge() {
	ctx := context.Background()
	pool := []domain.Badge{
		{BadgeID: "b1", Number: "B-001", Zones: []string{"hall"}, IsAvailable: true},
		{BadgeID: "b2", Number: "B-002", Zones: []string{"hall", "direction"}, IsAvailable: false},
	}
	suite.mockRepo.On("ListBadges", ctx).Return(pool, nil).Once()

	badge, err := suite.service.Allocate(ctx, []string{"hall", "direction"}, "v1")

	suite.Require().ErrorIs(err, apperrors.ErrNoBadgeAvailable)
	suite.Nil(badge)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBadge", mock.Anything, mock.Anything)
}

func (suite *BadgeServiceTestSuite) TestRelease_UnknownBadgeIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindBadgeByNumber", ctx, "B-999").Return(nil, apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.service.Release(ctx, "B-999"))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBadge", mock.Anything, mock.Anything)
}

func (suite *BadgeServiceTestSuite) TestRelease_AlreadyAvailableIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindBadgeByNumber", ctx, "B-001").
		Return(&domain.Badge{Number: "B-001", IsAvailable: true}, nil).Once()

	suite.Require().NoError(suite.service.Release(ctx, "B-001"))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBadge", mock.Anything, mock.Anything)
}

func (suite *BadgeServiceTestSuite) TestRelease_ReturnsBadgeToPool() {
	ctx := context.Background()
	holder := "v1"
	suite.mockRepo.On("FindBadgeByNumber", ctx, "B-001").
		Return(&domain.Badge{Number: "B-001", IsAvailable: false, HolderVisitorID: holder}, nil).Once()
	suite.mockRepo.On("SaveBadge", ctx, mock.MatchedBy(func(b domain.Badge) bool {
		return b.IsAvailable && b.HolderVisitorID == "" && b.AssignedAt == nil
	})).Return(domain.Badge{Number: "B-001", IsAvailable: true}, nil).Once()

	suite.Require().NoError(suite.service.Release(ctx, "B-001"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBadgeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BadgeServiceTestSuite))
}
