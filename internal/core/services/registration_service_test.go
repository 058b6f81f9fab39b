package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/core/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func ptr[T any](v T) *T { return &v }

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockVisitors     *MockVisitorRepository
	mockPackages     *MockPackageRepository
	mockEmployees    *MockEmployeeRepository
	mockServices     *MockServiceRepository
	mockBadges       *MockBadgeSvc
	mockAppointments *MockAppointmentSvc
	mockDispatcher   *MockDispatcher
	service          portssvc.RegistrationSvcFacade
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.mockVisitors = new(MockVisitorRepository)
	suite.mockPackages = new(MockPackageRepository)
	suite.mockEmployees = new(MockEmployeeRepository)
	suite.mockServices = new(MockServiceRepository)
	suite.mockBadges = new(MockBadgeSvc)
	suite.mockAppointments = new(MockAppointmentSvc)
	suite.mockDispatcher = new(MockDispatcher)
	suite.service = services.NewRegistrationService(
		suite.mockVisitors,
		suite.mockPackages,
		suite.mockEmployees,
		suite.mockServices,
		suite.mockBadges,
		suite.mockAppointments,
		services.WithNotificationDispatcher(suite.mockDispatcher),
	)
}

// visitorDraft fills a draft that passes every step gate.
func visitorDraft() dto.UpdateRegistrationRequest {
	return dto.UpdateRegistrationRequest{
		FirstName:        ptr("Jean"),
		LastName:         ptr("Obame"),
		Company:          ptr("Total Gabon"),
		Phone:            ptr("+241 01 02 03 04"),
		IDDocumentType:   ptr("CNI"),
		IDDocumentNumber: ptr("GA-123456"),
		BadgeRequired:    ptr(true),
		BadgeZones:       ptr([]string{"hall", "bureaux"}),
		Purpose:          ptr("Dépôt de dossier fiscal"),
		ExpectedDuration: ptr(45),
		DestinationType:  ptr("employee"),
		EmployeeID:       ptr("e-marie"),
	}
}

// startAndFill opens a session, merges the draft and walks it to the
// confirmation step.
func (suite *RegistrationServiceTestSuite) startAndFill(kind domain.RegistrationKind, draft dto.UpdateRegistrationRequest) string {
	ctx := context.Background()
	session, err := suite.service.Start(ctx, kind)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateDraft(ctx, session.SessionID, draft)
	suite.Require().NoError(err)

	for i := 0; i < 4; i++ {
		result, err := suite.service.Next(ctx, session.SessionID)
		suite.Require().NoError(err)
		suite.Require().Empty(result.Errors, "unexpected validation errors on step %d: %v", i, result.Errors)
	}

	current, err := suite.service.Get(ctx, session.SessionID)
	suite.Require().NoError(err)
	suite.Require().Equal(domain.StepConfirmation, current.Step)
	return session.SessionID
}

func (suite *RegistrationServiceTestSuite) TestNext_InvalidIdentityStaysOnStep() {
	ctx := context.Background()
	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateDraft(ctx, session.SessionID, dto.UpdateRegistrationRequest{
		FirstName: ptr("Jean"),
	})
	suite.Require().NoError(err)

	result, err := suite.service.Next(ctx, session.SessionID)

	suite.Require().NoError(err)
	suite.Equal(domain.StepIdentity, result.Session.Step)
	suite.Contains(result.Errors, "le nom est obligatoire")
	suite.Contains(result.Errors, "le numéro de téléphone est obligatoire")
	suite.Contains(result.Errors, "le numéro de pièce d'identité est obligatoire")
	suite.NotContains(result.Errors, "le prénom est obligatoire")
}

func (suite *RegistrationServiceTestSuite) TestPrevious_NeverValidatesAndKeepsData() {
	ctx := context.Background()
	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateDraft(ctx, session.SessionID, visitorDraft())
	suite.Require().NoError(err)

	_, err = suite.service.Next(ctx, session.SessionID)
	suite.Require().NoError(err)

	// Clobber a badge field so the badge gate would fail, then go back: no
	// validation runs and nothing is lost.
	_, err = suite.service.UpdateDraft(ctx, session.SessionID, dto.UpdateRegistrationRequest{
		BadgeZones: ptr([]string{}),
	})
	suite.Require().NoError(err)

	result, err := suite.service.Previous(ctx, session.SessionID)

	suite.Require().NoError(err)
	suite.Equal(domain.StepIdentity, result.Session.Step)
	suite.Equal("Jean", result.Session.Draft.FirstName)
	suite.True(result.Session.Draft.BadgeRequired)
}

func (suite *RegistrationServiceTestSuite) TestPrevious_FromIdentityIsRejected() {
	ctx := context.Background()
	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)

	_, err = suite.service.Previous(ctx, session.SessionID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *RegistrationServiceTestSuite) TestFamilyVisitRequiresRelationship() {
	ctx := context.Background()
	draft := visitorDraft()
	draft.Purpose = ptr(domain.PurposeFamilyVisit)

	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateDraft(ctx, session.SessionID, draft)
	suite.Require().NoError(err)

	// identity, badge
	for i := 0; i < 2; i++ {
		result, err := suite.service.Next(ctx, session.SessionID)
		suite.Require().NoError(err)
		suite.Require().Empty(result.Errors)
	}

	// visit type gate rejects the family visit without a relationship
	result, err := suite.service.Next(ctx, session.SessionID)
	suite.Require().NoError(err)
	suite.Equal(domain.StepVisitType, result.Session.Step)
	suite.Contains(result.Errors, "le type de relation est obligatoire pour une visite parent")

	_, err = suite.service.UpdateDraft(ctx, session.SessionID, dto.UpdateRegistrationRequest{
		RelationshipType: ptr("frère"),
	})
	suite.Require().NoError(err)

	result, err = suite.service.Next(ctx, session.SessionID)
	suite.Require().NoError(err)
	suite.Empty(result.Errors)
	suite.Equal(domain.StepDestination, result.Session.Step)
	suite.Equal("Visite Parent (frère)", result.Session.Draft.EffectivePurpose())
}

func (suite *RegistrationServiceTestSuite) TestDestinationRequiresExactlyOneTarget() {
	ctx := context.Background()
	draft := visitorDraft()
	draft.ServiceID = ptr("s1") // both employee and service set

	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateDraft(ctx, session.SessionID, draft)
	suite.Require().NoError(err)

	for i := 0; i < 3; i++ {
		result, err := suite.service.Next(ctx, session.SessionID)
		suite.Require().NoError(err)
		suite.Require().Empty(result.Errors)
	}

	result, err := suite.service.Next(ctx, session.SessionID)
	suite.Require().NoError(err)
	suite.Equal(domain.StepDestination, result.Session.Step)
	suite.Contains(result.Errors, "un seul type de destination peut être renseigné")
}

func (suite *RegistrationServiceTestSuite) TestSubmit_VisitorHappyPathWithMatch() {
	ctx := context.Background()
	sessionID := suite.startAndFill(domain.KindVisitor, visitorDraft())

	host := &domain.Employee{EmployeeID: "e-marie", FirstName: "Marie", LastName: "Ndong", Email: "m.ndong@dgi.ga"}
	suite.mockEmployees.On("FindEmployeeByID", ctx, "e-marie").Return(host, nil)

	suite.mockBadges.On("Allocate", ctx, []string{"hall", "bureaux"}, mock.AnythingOfType("string")).
		Return(&domain.Badge{Number: "B-002"}, nil).Once()

	matched := &domain.Appointment{AppointmentID: "a1", Status: domain.AppointmentPending}
	suite.mockAppointments.On("FindMatch", ctx, "Jean Obame", "Marie Ndong", mock.AnythingOfType("string")).
		Return(matched, nil).Once()
	suite.mockAppointments.On("CompleteMatch", ctx, "a1").Return(nil).Once()

	suite.mockVisitors.On("SaveVisitor", ctx, mock.MatchedBy(func(v domain.Visitor) bool {
		return v.FirstName == "Jean" &&
			v.Status == domain.VisitorCheckedIn &&
			v.BadgeNumber == "B-002" &&
			v.AppointmentID == "a1" &&
			strings.HasPrefix(v.RegistrationNumber, "V-") &&
			v.LookupToken != ""
	})).Return(domain.Visitor{
		VisitorID:          "v1",
		RegistrationNumber: "V-20260828-101500-3FA2",
		LookupToken:        "deadbeef",
		BadgeNumber:        "B-002",
	}, nil).Once()

	suite.mockDispatcher.On("Dispatch", ctx, mock.MatchedBy(func(req domain.NotificationRequest) bool {
		return req.Type == domain.NotifyVisitorArrival && req.RecipientEmail == "m.ndong@dgi.ga"
	})).Return(nil).Once()

	response, validationErrs, err := suite.service.Submit(ctx, sessionID)

	suite.Require().NoError(err)
	suite.Require().Empty(validationErrs)
	suite.Equal("v1", response.RecordID)
	suite.Equal("B-002", response.BadgeNumber)
	suite.Equal("a1", response.MatchedAppointmentID)
	suite.True(strings.HasPrefix(response.RegistrationNumber, "V-"))

	// Session is gone after a successful submit.
	_, err = suite.service.Get(ctx, sessionID)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	suite.mockVisitors.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *RegistrationServiceTestSuite) TestSubmit_NoBadgeAvailableAbortsAndKeepsSession() {
	ctx := context.Background()
	sessionID := suite.startAndFill(domain.KindVisitor, visitorDraft())

	suite.mockBadges.On("Allocate", ctx, []string{"hall", "bureaux"}, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNoBadgeAvailable).Once()

	_, _, err := suite.service.Submit(ctx, sessionID)

	suite.Require().ErrorIs(err, apperrors.ErrNoBadgeAvailable)
	suite.mockVisitors.AssertNotCalled(suite.T(), "SaveVisitor", mock.Anything, mock.Anything)

	// Operator data survives for a retry with adjusted zones.
	session, err := suite.service.Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal("Jean", session.Draft.FirstName)
}

func (suite *RegistrationServiceTestSuite) TestSubmit_StoreFailureKeepsSessionAndReleasesBadge() {
	ctx := context.Background()
	sessionID := suite.startAndFill(domain.KindVisitor, visitorDraft())

	host := &domain.Employee{EmployeeID: "e-marie", FirstName: "Marie", LastName: "Ndong"}
	suite.mockEmployees.On("FindEmployeeByID", ctx, "e-marie").Return(host, nil)
	suite.mockBadges.On("Allocate", ctx, mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.Badge{Number: "B-002"}, nil).Once()
	suite.mockAppointments.On("FindMatch", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	suite.mockVisitors.On("SaveVisitor", ctx, mock.Anything).
		Return(domain.Visitor{}, errors.New("disk full")).Once()
	suite.mockBadges.On("Release", ctx, "B-002").Return(nil).Once()

	_, _, err := suite.service.Submit(ctx, sessionID)

	suite.Require().Error(err)
	suite.mockBadges.AssertExpectations(suite.T())

	_, err = suite.service.Get(ctx, sessionID)
	suite.Require().NoError(err)
}

func (suite *RegistrationServiceTestSuite) TestSubmit_NotificationFailureDoesNotFailSubmit() {
	ctx := context.Background()
	draft := visitorDraft()
	draft.BadgeRequired = ptr(false)
	draft.BadgeZones = nil
	sessionID := suite.startAndFill(domain.KindVisitor, draft)

	host := &domain.Employee{EmployeeID: "e-marie", FirstName: "Marie", LastName: "Ndong"}
	suite.mockEmployees.On("FindEmployeeByID", ctx, "e-marie").Return(host, nil)
	suite.mockAppointments.On("FindMatch", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	suite.mockVisitors.On("SaveVisitor", ctx, mock.Anything).
		Return(domain.Visitor{VisitorID: "v1", RegistrationNumber: "V-X"}, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, mock.Anything).
		Return(errors.New("gateway down")).Once()

	response, validationErrs, err := suite.service.Submit(ctx, sessionID)

	suite.Require().NoError(err)
	suite.Empty(validationErrs)
	suite.Equal("v1", response.RecordID)
	suite.mockBadges.AssertNotCalled(suite.T(), "Allocate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestSubmit_PackageRecord() {
	ctx := context.Background()
	draft := dto.UpdateRegistrationRequest{
		FirstName:        ptr("DHL"),
		LastName:         ptr("Livreur"),
		Phone:            ptr("+241 07 00 00 00"),
		IDDocumentType:   ptr("Badge transporteur"),
		IDDocumentNumber: ptr("DHL-42"),
		BadgeRequired:    ptr(false),
		Purpose:          ptr("Livraison"),
		PackageType:      ptr("recommande"),
		TrackingNumber:   ptr("GA-TRACK-001"),
		Carrier:          ptr("DHL"),
		Urgent:           ptr(true),
		DestinationType:  ptr("service"),
		ServiceID:        ptr("s1"),
	}
	sessionID := suite.startAndFill(domain.KindPackage, draft)

	suite.mockServices.On("FindServiceByID", ctx, "s1").
		Return(&domain.Service{ServiceID: "s1", Name: "Recouvrement", ResponsableID: "e-chef"}, nil).Once()
	suite.mockEmployees.On("FindEmployeeByID", ctx, "e-chef").
		Return(&domain.Employee{EmployeeID: "e-chef", Email: "chef@dgi.ga"}, nil).Once()

	suite.mockPackages.On("SavePackage", ctx, mock.MatchedBy(func(p domain.Package) bool {
		return p.Type == domain.PackageRecommande &&
			p.State == domain.PackageReceived &&
			p.Urgent &&
			p.Sender.Name == "DHL Livreur" &&
			strings.HasPrefix(p.RegistrationNumber, "P-") &&
			!p.Status.ReceivedAt.IsZero()
	})).Return(domain.Package{PackageID: "p1", RegistrationNumber: "P-20260828-101500-0001"}, nil).Once()

	suite.mockDispatcher.On("Dispatch", ctx, mock.MatchedBy(func(req domain.NotificationRequest) bool {
		return req.Type == domain.NotifyPackageArrival && req.Urgent && req.RecipientEmail == "chef@dgi.ga"
	})).Return(nil).Once()

	response, validationErrs, err := suite.service.Submit(ctx, sessionID)

	suite.Require().NoError(err)
	suite.Empty(validationErrs)
	suite.Equal("p1", response.RecordID)
	suite.Equal(string(domain.KindPackage), response.Kind)
	suite.mockPackages.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *RegistrationServiceTestSuite) TestCancel_DiscardsSession() {
	ctx := context.Background()
	session, err := suite.service.Start(ctx, domain.KindVisitor)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Cancel(ctx, session.SessionID))

	_, err = suite.service.Get(ctx, session.SessionID)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
