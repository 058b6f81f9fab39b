package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RegistrationKind says what the workflow is assembling.
type RegistrationKind string

const (
	KindVisitor RegistrationKind = "visitor"
	KindPackage RegistrationKind = "package"
)

// Step is one state of the guided registration workflow.
type Step int

const (
	StepIdentity Step = iota
	StepBadge
	StepVisitType
	StepDestination
	StepConfirmation
)

var stepNames = [...]string{"identity", "badge", "visit_type", "destination", "confirmation"}

func (s Step) String() string {
	if s < StepIdentity || s > StepConfirmation {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// StepEvent is a navigation event applied to the workflow.
type StepEvent int

const (
	EventNext StepEvent = iota
	EventPrevious
)

// stepTransitions is the explicit state x event -> state table. Moves absent
// from the table are illegal: there is no previous from Identity and no next
// from Confirmation (Confirmation only leaves via submit or cancel).
var stepTransitions = map[Step]map[StepEvent]Step{
	StepIdentity:     {EventNext: StepBadge},
	StepBadge:        {EventNext: StepVisitType, EventPrevious: StepIdentity},
	StepVisitType:    {EventNext: StepDestination, EventPrevious: StepBadge},
	StepDestination:  {EventNext: StepConfirmation, EventPrevious: StepVisitType},
	StepConfirmation: {EventPrevious: StepDestination},
}

// NextStep resolves a navigation event against the transition table.
func NextStep(from Step, event StepEvent) (Step, bool) {
	to, ok := stepTransitions[from][event]
	return to, ok
}

// RegistrationDraft is the partial record accumulated across workflow steps.
// Fields are merged in by the operator step by step; nothing is validated
// until a forward transition is attempted.
type RegistrationDraft struct {
	Kind RegistrationKind `json:"kind"`

	// Identity step. For packages these describe the deliverer/sender side.
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	IDDocumentType   string `json:"idDocumentType"`
	IDDocumentNumber string `json:"idDocumentNumber"`

	// Badge step.
	BadgeRequired bool     `json:"badgeRequired"`
	BadgeZones    []string `json:"badgeZones"`

	// Visit type step. For visitors: purpose of the visit; for packages:
	// package description.
	Purpose          string          `json:"purpose"`
	RelationshipType string          `json:"relationshipType,omitempty"`
	ExpectedDuration int             `json:"expectedDurationMinutes"`
	PackageType      PackageType     `json:"packageType,omitempty"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
	Carrier          string          `json:"carrier,omitempty"`
	WeightKg         decimal.Decimal `json:"weightKg,omitempty"`
	Dimensions       string          `json:"dimensions,omitempty"`
	Fragile          bool            `json:"fragile,omitempty"`
	Urgent           bool            `json:"urgent,omitempty"`
	Confidential     bool            `json:"confidential,omitempty"`

	// Destination step.
	DestinationType DestinationType `json:"destinationType"`
	EmployeeID      string          `json:"employeeID,omitempty"`
	ServiceID       string          `json:"serviceID,omitempty"`
}

// EffectivePurpose folds the relationship sub-field into the purpose text for
// the family-visit sentinel.
func (d RegistrationDraft) EffectivePurpose() string {
	if d.Purpose == PurposeFamilyVisit && d.RelationshipType != "" {
		return fmt.Sprintf("%s (%s)", d.Purpose, d.RelationshipType)
	}
	return d.Purpose
}

// ValidateStep runs the validation gate for one step and returns the list of
// operator-facing error messages. An empty list means the step may be left.
// Validation failures are data, not errors: the workflow stays on the step
// and the operator corrects the fields.
func (d RegistrationDraft) ValidateStep(step Step) []string {
	var errs []string
	switch step {
	case StepIdentity:
		if strings.TrimSpace(d.FirstName) == "" {
			errs = append(errs, "le prénom est obligatoire")
		}
		if strings.TrimSpace(d.LastName) == "" {
			errs = append(errs, "le nom est obligatoire")
		}
		if strings.TrimSpace(d.Phone) == "" {
			errs = append(errs, "le numéro de téléphone est obligatoire")
		}
		if strings.TrimSpace(d.IDDocumentNumber) == "" {
			errs = append(errs, "le numéro de pièce d'identité est obligatoire")
		}
	case StepBadge:
		if d.BadgeRequired && len(d.BadgeZones) == 0 {
			errs = append(errs, "au moins une zone d'accès doit être sélectionnée pour le badge")
		}
	case StepVisitType:
		if strings.TrimSpace(d.Purpose) == "" {
			errs = append(errs, "le motif est obligatoire")
		}
		if d.Purpose == PurposeFamilyVisit && strings.TrimSpace(d.RelationshipType) == "" {
			errs = append(errs, "le type de relation est obligatoire pour une visite parent")
		}
		if d.Kind == KindPackage && d.PackageType == "" {
			errs = append(errs, "le type de courrier est obligatoire")
		}
	case StepDestination:
		switch d.DestinationType {
		case DestinationEmployee:
			if d.EmployeeID == "" {
				errs = append(errs, "un agent destinataire doit être sélectionné")
			}
			if d.ServiceID != "" {
				errs = append(errs, "un seul type de destination peut être renseigné")
			}
		case DestinationService:
			if d.ServiceID == "" {
				errs = append(errs, "un service destinataire doit être sélectionné")
			}
			if d.EmployeeID != "" {
				errs = append(errs, "un seul type de destination peut être renseigné")
			}
		default:
			errs = append(errs, "le type de destination est obligatoire")
		}
	case StepConfirmation:
		// Assembly only; all gates already passed.
	}
	return errs
}
