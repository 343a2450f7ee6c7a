package models

import (
	"encoding/json"
	"time"
)

// Known page names inside a form's pages structure.
const (
	PageApplicantDetails    = "applicantDetails"
	PageLicensingConditions = "licensingConditions"
)

// CreateFormRequest is the payload for creating a new form.
type CreateFormRequest struct {
	FormName string `json:"formName" validate:"required,min=1,max=100" example:"Riverside Park application"`
}

// UpdateFormRequest carries exactly one of a top-level rename (formName) or a
// nested page patch (page + data). Data stays raw here; the service decodes it
// strictly into the patch struct matching the page.
type UpdateFormRequest struct {
	FormName *string         `json:"formName,omitempty" validate:"omitempty,min=1,max=100"`
	Page     string          `json:"page,omitempty" validate:"omitempty,oneof=applicantDetails licensingConditions"`
	Data     json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// ListFormsQuery holds the optional status filter for listing forms.
type ListFormsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=in-progress submitted"`
}

// Patch structs mirror the page sub-objects with every field optional. Only
// fields present in the request are overlaid onto the stored form; unknown
// keys are rejected during decoding.

type ApplicantDetailsPatch struct {
	RacetrackName           *string    `json:"racetrackName,omitempty"`
	ApplicantName           *string    `json:"applicantName,omitempty"`
	ApplicantAddress        *string    `json:"applicantAddress,omitempty"`
	ApplicantPostcode       *string    `json:"applicantPostcode,omitempty"`
	RacetrackAddress        *string    `json:"racetrackAddress,omitempty"`
	RacetrackPostcode       *string    `json:"racetrackPostcode,omitempty"`
	Telephone               *string    `json:"telephone,omitempty"`
	Email                   *string    `json:"email,omitempty"`
	Disqualified            *bool      `json:"disqualified,omitempty"`
	DisqualificationDetails *string    `json:"disqualificationDetails,omitempty"`
	ApplicationDate         *time.Time `json:"applicationDate,omitempty"`
}

type LicensingConditionsPatch struct {
	Condition1 *Condition1Patch `json:"condition1,omitempty"`
	Condition2 *Condition2Patch `json:"condition2,omitempty"`
	Condition3 *Condition3Patch `json:"condition3,omitempty"`
	Condition4 *Condition4Patch `json:"condition4,omitempty"`
	Condition5 *Condition5Patch `json:"condition5,omitempty"`
	Condition6 *Condition6Patch `json:"condition6,omitempty"`
}

type Condition1Patch struct {
	HasVetAgreement          *bool      `json:"hasVetAgreement,omitempty"`
	AnticipatedAgreementDate *time.Time `json:"anticipatedAgreementDate,omitempty"`
	VetContact               *string    `json:"vetContact,omitempty"`
	HasVetRegister           *bool      `json:"hasVetRegister,omitempty"`
	AnticipatedRegisterDate  *time.Time `json:"anticipatedRegisterDate,omitempty"`
}

type Condition2Patch struct {
	FacilitiesReady           *bool      `json:"facilitiesReady,omitempty"`
	AnticipatedFacilitiesDate *time.Time `json:"anticipatedFacilitiesDate,omitempty"`
}

type Condition3Patch struct {
	KennelsReady           *bool      `json:"kennelsReady,omitempty"`
	AnticipatedKennelsDate *time.Time `json:"anticipatedKennelsDate,omitempty"`
}

type Condition4Patch struct {
	GreyhoundIdentified           *bool      `json:"greyhoundIdentified,omitempty"`
	AnticipatedIdentificationDate *time.Time `json:"anticipatedIdentificationDate,omitempty"`
}

type Condition5Patch struct {
	RecordsKept            *bool      `json:"recordsKept,omitempty"`
	AnticipatedRecordsDate *time.Time `json:"anticipatedRecordsDate,omitempty"`
}

type Condition6Patch struct {
	InjuryRecordsKept            *bool      `json:"injuryRecordsKept,omitempty"`
	AnticipatedInjuryRecordsDate *time.Time `json:"anticipatedInjuryRecordsDate,omitempty"`
}
