package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStep(t *testing.T) {
	tests := []struct {
		name     string
		from     Step
		event    StepEvent
		expected Step
		ok       bool
	}{
		{"identity forward", StepIdentity, EventNext, StepBadge, true},
		{"badge forward", StepBadge, EventNext, StepVisitType, true},
		{"visit type forward", StepVisitType, EventNext, StepDestination, true},
		{"destination forward", StepDestination, EventNext, StepConfirmation, true},
		{"no forward from confirmation", StepConfirmation, EventNext, 0, false},
		{"no backward from identity", StepIdentity, EventPrevious, 0, false},
		{"badge backward", StepBadge, EventPrevious, StepIdentity, true},
		{"confirmation backward", StepConfirmation, EventPrevious, StepDestination, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStep(tt.from, tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, next)
			}
		})
	}
}

func TestValidateStep_Identity(t *testing.T) {
	draft := RegistrationDraft{Kind: KindVisitor, FirstName: "Jean"}

	errs := draft.ValidateStep(StepIdentity)

	assert.Contains(t, errs, "le nom est obligatoire")
	assert.Contains(t, errs, "le numéro de téléphone est obligatoire")
	assert.Contains(t, errs, "le numéro de pièce d'identité est obligatoire")
	assert.NotContains(t, errs, "le prénom est obligatoire")

	draft.LastName = "Obame"
	draft.Phone = "+241 01 02 03 04"
	draft.IDDocumentNumber = "GA-123456"
	assert.Empty(t, draft.ValidateStep(StepIdentity))
}

func TestValidateStep_WhitespaceOnlyIsMissing(t *testing.T) {
	draft := RegistrationDraft{
		FirstName:        "  ",
		LastName:         "Obame",
		Phone:            "+241 01",
		IDDocumentNumber: "GA-1",
	}

	errs := draft.ValidateStep(StepIdentity)

	assert.Contains(t, errs, "le prénom est obligatoire")
}

func TestValidateStep_Badge(t *testing.T) {
	draft := RegistrationDraft{BadgeRequired: true}
	assert.Contains(t, draft.ValidateStep(StepBadge), "au moins une zone d'accès doit être sélectionnée pour le badge")

	draft.BadgeZones = []string{"hall"}
	assert.Empty(t, draft.ValidateStep(StepBadge))

	noBadge := RegistrationDraft{BadgeRequired: false}
	assert.Empty(t, noBadge.ValidateStep(StepBadge))
}

func TestValidateStep_VisitType(t *testing.T) {
	draft := RegistrationDraft{Kind: KindVisitor}
	assert.Contains(t, draft.ValidateStep(StepVisitType), "le motif est obligatoire")

	draft.Purpose = PurposeFamilyVisit
	assert.Contains(t, draft.ValidateStep(StepVisitType), "le type de relation est obligatoire pour une visite parent")

	draft.RelationshipType = "frère"
	assert.Empty(t, draft.ValidateStep(StepVisitType))

	pkg := RegistrationDraft{Kind: KindPackage, Purpose: "Livraison"}
	assert.Contains(t, pkg.ValidateStep(StepVisitType), "le type de courrier est obligatoire")

	pkg.PackageType = PackageColis
	assert.Empty(t, pkg.ValidateStep(StepVisitType))
}

func TestValidateStep_Destination(t *testing.T) {
	tests := []struct {
		name     string
		draft    RegistrationDraft
		expected string
	}{
		{
			"missing destination type",
			RegistrationDraft{},
			"le type de destination est obligatoire",
		},
		{
			"employee destination without employee",
			RegistrationDraft{DestinationType: DestinationEmployee},
			"un agent destinataire doit être sélectionné",
		},
		{
			"service destination without service",
			RegistrationDraft{DestinationType: DestinationService},
			"un service destinataire doit être sélectionné",
		},
		{
			"employee destination with service set too",
			RegistrationDraft{DestinationType: DestinationEmployee, EmployeeID: "e1", ServiceID: "s1"},
			"un seul type de destination peut être renseigné",
		},
		{
			"service destination with employee set too",
			RegistrationDraft{DestinationType: DestinationService, ServiceID: "s1", EmployeeID: "e1"},
			"un seul type de destination peut être renseigné",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.draft.ValidateStep(StepDestination), tt.expected)
		})
	}

	valid := RegistrationDraft{DestinationType: DestinationEmployee, EmployeeID: "e1"}
	assert.Empty(t, valid.ValidateStep(StepDestination))
}

func TestValidateStep_ConfirmationHasNoGate(t *testing.T) {
	assert.Empty(t, RegistrationDraft{}.ValidateStep(StepConfirmation))
}

func TestEffectivePurpose(t *testing.T) {
	family := RegistrationDraft{Purpose: PurposeFamilyVisit, RelationshipType: "frère"}
	assert.Equal(t, "Visite Parent (frère)", family.EffectivePurpose())

	plain := RegistrationDraft{Purpose: "Dépôt de dossier fiscal", RelationshipType: "frère"}
	assert.Equal(t, "Dépôt de dossier fiscal", plain.EffectivePurpose())

	noRelation := RegistrationDraft{Purpose: PurposeFamilyVisit}
	assert.Equal(t, PurposeFamilyVisit, noRelation.EffectivePurpose())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "identity", StepIdentity.String())
	assert.Equal(t, "confirmation", StepConfirmation.String())
	assert.Equal(t, "step(9)", Step(9).String())
}
