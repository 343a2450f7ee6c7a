package forms

import (
	"bytes"
	"encoding/json"

	"racetrack-licensing-api/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// updateFieldsForPage strict-decodes raw page data into the typed patch for
// the named page and flattens it into dotted $set paths. Unknown keys are a
// validation failure, never a silent merge.
func updateFieldsForPage(page string, raw json.RawMessage) (bson.M, error) {
	switch page {
	case models.PageApplicantDetails:
		var patch models.ApplicantDetailsPatch
		if err := decodeStrict(raw, &patch); err != nil {
			return nil, err
		}
		return applicantDetailsFields(&patch), nil

	case models.PageLicensingConditions:
		var patch models.LicensingConditionsPatch
		if err := decodeStrict(raw, &patch); err != nil {
			return nil, err
		}
		return licensingConditionsFields(&patch), nil

	default:
		return nil, &ValidationError{Message: "unknown page: " + page}
	}
}

func decodeStrict(raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ValidationError{Message: "invalid page data: " + err.Error()}
	}
	return nil
}

func applicantDetailsFields(p *models.ApplicantDetailsPatch) bson.M {
	const prefix = "pages.applicantDetails."
	set := bson.M{}

	if p.RacetrackName != nil {
		set[prefix+"racetrackName"] = *p.RacetrackName
	}
	if p.ApplicantName != nil {
		set[prefix+"applicantName"] = *p.ApplicantName
	}
	if p.ApplicantAddress != nil {
		set[prefix+"applicantAddress"] = *p.ApplicantAddress
	}
	if p.ApplicantPostcode != nil {
		set[prefix+"applicantPostcode"] = *p.ApplicantPostcode
	}
	if p.RacetrackAddress != nil {
		set[prefix+"racetrackAddress"] = *p.RacetrackAddress
	}
	if p.RacetrackPostcode != nil {
		set[prefix+"racetrackPostcode"] = *p.RacetrackPostcode
	}
	if p.Telephone != nil {
		set[prefix+"telephone"] = *p.Telephone
	}
	if p.Email != nil {
		set[prefix+"email"] = *p.Email
	}
	if p.Disqualified != nil {
		set[prefix+"disqualified"] = *p.Disqualified
	}
	if p.DisqualificationDetails != nil {
		set[prefix+"disqualificationDetails"] = *p.DisqualificationDetails
	}
	if p.ApplicationDate != nil {
		set[prefix+"applicationDate"] = *p.ApplicationDate
	}

	return set
}

func licensingConditionsFields(p *models.LicensingConditionsPatch) bson.M {
	const prefix = "pages.licensingConditions."
	set := bson.M{}

	if c := p.Condition1; c != nil {
		if c.HasVetAgreement != nil {
			set[prefix+"condition1.hasVetAgreement"] = *c.HasVetAgreement
		}
		if c.AnticipatedAgreementDate != nil {
			set[prefix+"condition1.anticipatedAgreementDate"] = *c.AnticipatedAgreementDate
		}
		if c.VetContact != nil {
			set[prefix+"condition1.vetContact"] = *c.VetContact
		}
		if c.HasVetRegister != nil {
			set[prefix+"condition1.hasVetRegister"] = *c.HasVetRegister
		}
		if c.AnticipatedRegisterDate != nil {
			set[prefix+"condition1.anticipatedRegisterDate"] = *c.AnticipatedRegisterDate
		}
	}

	if c := p.Condition2; c != nil {
		if c.FacilitiesReady != nil {
			set[prefix+"condition2.facilitiesReady"] = *c.FacilitiesReady
		}
		if c.AnticipatedFacilitiesDate != nil {
			set[prefix+"condition2.anticipatedFacilitiesDate"] = *c.AnticipatedFacilitiesDate
		}
	}

	if c := p.Condition3; c != nil {
		if c.KennelsReady != nil {
			set[prefix+"condition3.kennelsReady"] = *c.KennelsReady
		}
		if c.AnticipatedKennelsDate != nil {
			set[prefix+"condition3.anticipatedKennelsDate"] = *c.AnticipatedKennelsDate
		}
	}

	if c := p.Condition4; c != nil {
		if c.GreyhoundIdentified != nil {
			set[prefix+"condition4.greyhoundIdentified"] = *c.GreyhoundIdentified
		}
		if c.AnticipatedIdentificationDate != nil {
			set[prefix+"condition4.anticipatedIdentificationDate"] = *c.AnticipatedIdentificationDate
		}
	}

	if c := p.Condition5; c != nil {
		if c.RecordsKept != nil {
			set[prefix+"condition5.recordsKept"] = *c.RecordsKept
		}
		if c.AnticipatedRecordsDate != nil {
			set[prefix+"condition5.anticipatedRecordsDate"] = *c.AnticipatedRecordsDate
		}
	}

	if c := p.Condition6; c != nil {
		if c.InjuryRecordsKept != nil {
			set[prefix+"condition6.injuryRecordsKept"] = *c.InjuryRecordsKept
		}
		if c.AnticipatedInjuryRecordsDate != nil {
			set[prefix+"condition6.anticipatedInjuryRecordsDate"] = *c.AnticipatedInjuryRecordsDate
		}
	}

	return set
}
