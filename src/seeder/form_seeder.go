package seeder

import (
	"context"
	"encoding/json"
	"log"

	"racetrack-licensing-api/src/models"
	"racetrack-licensing-api/src/services/forms"
)

// SeedSampleForms creates a few example licence applications through the
// service, for local development and manual testing.
func SeedSampleForms(ctx context.Context, service *forms.Service) error {
	blank, err := service.Create(ctx, "Hilltop Stadium application")
	if err != nil {
		return err
	}
	log.Printf("Seeded blank form %s (%s)", blank.ID.Hex(), blank.ReferenceNumber)

	partial, err := service.Create(ctx, "Riverside Park application")
	if err != nil {
		return err
	}

	applicantData, _ := json.Marshal(map[string]interface{}{
		"racetrackName":     "Riverside Park",
		"applicantName":     "Jo Bloggs",
		"applicantAddress":  "1 High Street, Riverton",
		"applicantPostcode": "RV1 2AB",
		"racetrackAddress":  "Riverside Park, Riverton",
		"racetrackPostcode": "RV1 9ZZ",
		"telephone":         "01234 567890",
		"email":             "jo.bloggs@example.com",
	})

	_, err = service.Update(ctx, partial.ID.Hex(), &models.UpdateFormRequest{
		Page: models.PageApplicantDetails,
		Data: applicantData,
	})
	if err != nil {
		return err
	}

	conditionsData, _ := json.Marshal(map[string]interface{}{
		"condition3": map[string]interface{}{"kennelsReady": true},
		"condition5": map[string]interface{}{"recordsKept": true},
	})

	_, err = service.Update(ctx, partial.ID.Hex(), &models.UpdateFormRequest{
		Page: models.PageLicensingConditions,
		Data: conditionsData,
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded partially completed form %s (%s)", partial.ID.Hex(), partial.ReferenceNumber)
	return nil
}
