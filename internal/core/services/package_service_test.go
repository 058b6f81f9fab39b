package services_test

import (
	"context"
	"testing"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/core/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PackageServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPackageRepository
	service  portssvc.PackageSvcFacade
}

func (suite *PackageServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPackageRepository)
	suite.service = services.NewPackageService(suite.mockRepo)
}

func (suite *PackageServiceTestSuite) TestDeliver_RecordsHandoverDetails() {
	ctx := context.Background()
	received := &domain.Package{PackageID: "p1", State: domain.PackageReceived}

	suite.mockRepo.On("FindPackageByID", ctx, "p1").Return(received, nil).Once()
	suite.mockRepo.On("SavePackage", ctx, mock.MatchedBy(func(p domain.Package) bool {
		return p.State == domain.PackageDelivered &&
			p.Status.DeliveredAt != nil &&
			p.Status.DeliveredBy == "Marie Ndong" &&
			p.Status.Signature == "MN"
	})).Return(domain.Package{PackageID: "p1", State: domain.PackageDelivered}, nil).Once()

	delivered, err := suite.service.Deliver(ctx, "p1", dto.DeliverPackageRequest{
		DeliveredBy: "Marie Ndong",
		Signature:   "MN",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PackageDelivered, delivered.State)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PackageServiceTestSuite) TestDeliver_TwiceIsRejected() {
	ctx := context.Background()
	done := &domain.Package{PackageID: "p1", State: domain.PackageDelivered}
	suite.mockRepo.On("FindPackageByID", ctx, "p1").Return(done, nil).Once()

	_, err := suite.service.Deliver(ctx, "p1", dto.DeliverPackageRequest{DeliveredBy: "Marie"})

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePackage", mock.Anything, mock.Anything)
}

func (suite *PackageServiceTestSuite) TestReturn_FromNotified() {
	ctx := context.Background()
	notified := &domain.Package{PackageID: "p1", State: domain.PackageNotified}

	suite.mockRepo.On("FindPackageByID", ctx, "p1").Return(notified, nil).Once()
	suite.mockRepo.On("SavePackage", ctx, mock.MatchedBy(func(p domain.Package) bool {
		return p.State == domain.PackageReturned
	})).Return(domain.Package{PackageID: "p1", State: domain.PackageReturned}, nil).Once()

	returned, err := suite.service.Return(ctx, "p1")

	suite.Require().NoError(err)
	suite.Equal(domain.PackageReturned, returned.State)
}

func (suite *PackageServiceTestSuite) TestReturn_AfterDeliveryIsRejected() {
	ctx := context.Background()
	done := &domain.Package{PackageID: "p1", State: domain.PackageDelivered}
	suite.mockRepo.On("FindPackageByID", ctx, "p1").Return(done, nil).Once()

	_, err := suite.service.Return(ctx, "p1")

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *PackageServiceTestSuite) TestGetPackageByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPackageByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetPackageByID(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestPackageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PackageServiceTestSuite))
}
