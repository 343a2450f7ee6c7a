package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form statuses. A form only ever moves forward: in-progress -> submitted.
const (
	StatusInProgress = "in-progress"
	StatusSubmitted  = "submitted"
)

// --- Form ---
// One licence application. Both pages sections are always present from
// creation onward; patches overwrite leaf fields and never remove a section.
type Form struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ReferenceNumber string             `bson:"referenceNumber" json:"referenceNumber" example:"HDJ2123F"`
	FormName        string             `bson:"formName" json:"formName" example:"Riverside Park application"`
	Status          string             `bson:"status" json:"status" example:"in-progress"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`

	Pages Pages `bson:"pages" json:"pages"`
}

// --- Pages ---
type Pages struct {
	ApplicantDetails    ApplicantDetails    `bson:"applicantDetails" json:"applicantDetails"`
	LicensingConditions LicensingConditions `bson:"licensingConditions" json:"licensingConditions"`
}

// --- ApplicantDetails ---
type ApplicantDetails struct {
	RacetrackName           string     `bson:"racetrackName" json:"racetrackName"`
	ApplicantName           string     `bson:"applicantName" json:"applicantName"`
	ApplicantAddress        string     `bson:"applicantAddress" json:"applicantAddress"`
	ApplicantPostcode       string     `bson:"applicantPostcode" json:"applicantPostcode"`
	RacetrackAddress        string     `bson:"racetrackAddress" json:"racetrackAddress"`
	RacetrackPostcode       string     `bson:"racetrackPostcode" json:"racetrackPostcode"`
	Telephone               string     `bson:"telephone" json:"telephone"`
	Email                   string     `bson:"email" json:"email"`
	Disqualified            bool       `bson:"disqualified" json:"disqualified"`
	DisqualificationDetails string     `bson:"disqualificationDetails" json:"disqualificationDetails"`
	ApplicationDate         *time.Time `bson:"applicationDate" json:"applicationDate"`
}

// --- LicensingConditions ---
type LicensingConditions struct {
	Condition1 Condition1 `bson:"condition1" json:"condition1"`
	Condition2 Condition2 `bson:"condition2" json:"condition2"`
	Condition3 Condition3 `bson:"condition3" json:"condition3"`
	Condition4 Condition4 `bson:"condition4" json:"condition4"`
	Condition5 Condition5 `bson:"condition5" json:"condition5"`
	Condition6 Condition6 `bson:"condition6" json:"condition6"`
}

// Condition 1: agreement with an attending veterinary surgeon
type Condition1 struct {
	HasVetAgreement          bool       `bson:"hasVetAgreement" json:"hasVetAgreement"`
	AnticipatedAgreementDate *time.Time `bson:"anticipatedAgreementDate" json:"anticipatedAgreementDate"`
	VetContact               string     `bson:"vetContact" json:"vetContact"`
	HasVetRegister           bool       `bson:"hasVetRegister" json:"hasVetRegister"`
	AnticipatedRegisterDate  *time.Time `bson:"anticipatedRegisterDate" json:"anticipatedRegisterDate"`
}

// Condition 2: facilities for the attending veterinary surgeon
type Condition2 struct {
	FacilitiesReady           bool       `bson:"facilitiesReady" json:"facilitiesReady"`
	AnticipatedFacilitiesDate *time.Time `bson:"anticipatedFacilitiesDate" json:"anticipatedFacilitiesDate"`
}

// Condition 3: kennel availability
type Condition3 struct {
	KennelsReady           bool       `bson:"kennelsReady" json:"kennelsReady"`
	AnticipatedKennelsDate *time.Time `bson:"anticipatedKennelsDate" json:"anticipatedKennelsDate"`
}

// Condition 4: greyhound identification
type Condition4 struct {
	GreyhoundIdentified           bool       `bson:"greyhoundIdentified" json:"greyhoundIdentified"`
	AnticipatedIdentificationDate *time.Time `bson:"anticipatedIdentificationDate" json:"anticipatedIdentificationDate"`
}

// Condition 5: record keeping
type Condition5 struct {
	RecordsKept            bool       `bson:"recordsKept" json:"recordsKept"`
	AnticipatedRecordsDate *time.Time `bson:"anticipatedRecordsDate" json:"anticipatedRecordsDate"`
}

// Condition 6: injury records
type Condition6 struct {
	InjuryRecordsKept            bool       `bson:"injuryRecordsKept" json:"injuryRecordsKept"`
	AnticipatedInjuryRecordsDate *time.Time `bson:"anticipatedInjuryRecordsDate" json:"anticipatedInjuryRecordsDate"`
}

// DefaultForm returns a new form with every leaf field at its documented
// default: empty strings, false flags, nil dates, status in-progress.
func DefaultForm() Form {
	return Form{
		Status: StatusInProgress,
		Pages: Pages{
			ApplicantDetails:    ApplicantDetails{},
			LicensingConditions: LicensingConditions{},
		},
	}
}
