package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VisitorServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockVisitorRepository
	mockBadge *MockBadgeSvc
	service   portssvc.VisitorSvcFacade
}

func (suite *VisitorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVisitorRepository)
	suite.mockBadge = new(MockBadgeSvc)
	suite.service = services.NewVisitorService(suite.mockRepo, suite.mockBadge)
}

func (suite *VisitorServiceTestSuite) TestCheckOut_StampsTimeAndReleasesBadge() {
	ctx := context.Background()
	checkIn := time.Now().Add(-45 * time.Minute)
	visitor := &domain.Visitor{
		VisitorID:   "v1",
		BadgeNumber: "B-003",
		CheckInTime: checkIn,
		Status:      domain.VisitorCheckedIn,
	}
	checkOut := time.Now()
	savedVisitor := *visitor
	savedVisitor.Status = domain.VisitorCheckedOut
	savedVisitor.CheckOutTime = &checkOut

	suite.mockRepo.On("FindVisitorByID", ctx, "v1").Return(visitor, nil).Once()
	suite.mockRepo.On("SaveVisitor", ctx, mock.MatchedBy(func(v domain.Visitor) bool {
		return v.Status == domain.VisitorCheckedOut && v.CheckOutTime != nil && !v.CheckOutTime.Before(checkIn)
	})).Return(savedVisitor, nil).Once()
	suite.mockBadge.On("Release", ctx, "B-003").Return(nil).Once()

	saved, err := suite.service.CheckOut(ctx, "v1")

	suite.Require().NoError(err)
	suite.Equal(domain.VisitorCheckedOut, saved.Status)
	suite.Require().NotNil(saved.CheckOutTime)
	minutes, done := saved.VisitDurationMinutes()
	suite.True(done)
	suite.Greater(minutes, 44.0)
	suite.mockBadge.AssertExpectations(suite.T())
}

func (suite *VisitorServiceTestSuite) TestCheckOut_TwiceIsRejected() {
	ctx := context.Background()
	out := time.Now().Add(-1 * time.Hour)
	visitor := &domain.Visitor{
		VisitorID:    "v1",
		CheckOutTime: &out,
		Status:       domain.VisitorCheckedOut,
	}
	suite.mockRepo.On("FindVisitorByID", ctx, "v1").Return(visitor, nil).Once()

	_, err := suite.service.CheckOut(ctx, "v1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVisitor", mock.Anything, mock.Anything)
}

func (suite *VisitorServiceTestSuite) TestCheckOut_BadgeReleaseFailureDoesNotFailCheckOut() {
	ctx := context.Background()
	visitor := &domain.Visitor{
		VisitorID:   "v1",
		BadgeNumber: "B-003",
		CheckInTime: time.Now().Add(-30 * time.Minute),
		Status:      domain.VisitorCheckedIn,
	}
	checkOut := time.Now()
	savedVisitor := *visitor
	savedVisitor.Status = domain.VisitorCheckedOut
	savedVisitor.CheckOutTime = &checkOut

	suite.mockRepo.On("FindVisitorByID", ctx, "v1").Return(visitor, nil).Once()
	suite.mockRepo.On("SaveVisitor", ctx, mock.Anything).Return(savedVisitor, nil).Once()
	suite.mockBadge.On("Release", ctx, "B-003").Return(errors.New("store busy")).Once()

	saved, err := suite.service.CheckOut(ctx, "v1")

	suite.Require().NoError(err)
	suite.Equal(domain.VisitorCheckedOut, saved.Status)
}

func (suite *VisitorServiceTestSuite) TestCheckOut_NoBadgeSkipsRelease() {
	ctx := context.Background()
	visitor := &domain.Visitor{
		VisitorID:   "v1",
		CheckInTime: time.Now().Add(-10 * time.Minute),
		Status:      domain.VisitorCheckedIn,
	}
	checkOut := time.Now()
	savedVisitor := *visitor
	savedVisitor.Status = domain.VisitorCheckedOut
	savedVisitor.CheckOutTime = &checkOut

	suite.mockRepo.On("FindVisitorByID", ctx, "v1").Return(visitor, nil).Once()
	suite.mockRepo.On("SaveVisitor", ctx, mock.Anything).Return(savedVisitor, nil).Once()

	_, err := suite.service.CheckOut(ctx, "v1")

	suite.Require().NoError(err)
	suite.mockBadge.AssertNotCalled(suite.T(), "Release", mock.Anything, mock.Anything)
}

func (suite *VisitorServiceTestSuite) TestListPresentVisitors_FiltersCheckedOut() {
	ctx := context.Background()
	out := time.Now()
	suite.mockRepo.On("ListVisitors", ctx).Return([]domain.Visitor{
		{VisitorID: "v1", Status: domain.VisitorCheckedIn},
		{VisitorID: "v2", Status: domain.VisitorCheckedOut, CheckOutTime: &out},
		{VisitorID: "v3", Status: domain.VisitorCheckedIn},
	}, nil).Once()

	present, err := suite.service.ListPresentVisitors(ctx)

	suite.Require().NoError(err)
	suite.Len(present, 2)
}

func TestVisitorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitorServiceTestSuite))
}
