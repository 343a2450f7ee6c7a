package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultForm(t *testing.T) {
	form := DefaultForm()

	t.Run("StartsInProgress", func(t *testing.T) {
		assert.Equal(t, StatusInProgress, form.Status)
		assert.Empty(t, form.FormName)
		assert.Empty(t, form.ReferenceNumber)
		assert.True(t, form.ID.IsZero())
	})

	t.Run("ApplicantDetailsDefaults", func(t *testing.T) {
		details := form.Pages.ApplicantDetails

		assert.Empty(t, details.RacetrackName)
		assert.Empty(t, details.ApplicantName)
		assert.Empty(t, details.ApplicantAddress)
		assert.Empty(t, details.ApplicantPostcode)
		assert.Empty(t, details.RacetrackAddress)
		assert.Empty(t, details.RacetrackPostcode)
		assert.Empty(t, details.Telephone)
		assert.Empty(t, details.Email)
		assert.False(t, details.Disqualified)
		assert.Empty(t, details.DisqualificationDetails)
		assert.Nil(t, details.ApplicationDate)
	})

	t.Run("LicensingConditionsDefaults", func(t *testing.T) {
		conditions := form.Pages.LicensingConditions

		assert.False(t, conditions.Condition1.HasVetAgreement)
		assert.False(t, conditions.Condition1.HasVetRegister)
		assert.Empty(t, conditions.Condition1.VetContact)
		assert.Nil(t, conditions.Condition1.AnticipatedAgreementDate)
		assert.Nil(t, conditions.Condition1.AnticipatedRegisterDate)
		assert.False(t, conditions.Condition2.FacilitiesReady)
		assert.Nil(t, conditions.Condition2.AnticipatedFacilitiesDate)
		assert.False(t, conditions.Condition3.KennelsReady)
		assert.Nil(t, conditions.Condition3.AnticipatedKennelsDate)
		assert.False(t, conditions.Condition4.GreyhoundIdentified)
		assert.False(t, conditions.Condition5.RecordsKept)
		assert.False(t, conditions.Condition6.InjuryRecordsKept)
	})
}
