package forms

import (
	"encoding/json"
	"testing"

	"racetrack-licensing-api/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFieldsForPage(t *testing.T) {
	t.Run("ApplicantDetailsLeafOverlay", func(t *testing.T) {
		data := json.RawMessage(`{"applicantName":"Jo Bloggs","disqualified":true}`)

		set, err := updateFieldsForPage(models.PageApplicantDetails, data)
		require.NoError(t, err)

		assert.Equal(t, "Jo Bloggs", set["pages.applicantDetails.applicantName"])
		assert.Equal(t, true, set["pages.applicantDetails.disqualified"])
		assert.Len(t, set, 2, "absent fields must stay untouched")
	})

	t.Run("ConditionPatchTouchesOnlyNamedLeaves", func(t *testing.T) {
		data := json.RawMessage(`{"condition3":{"kennelsReady":true}}`)

		set, err := updateFieldsForPage(models.PageLicensingConditions, data)
		require.NoError(t, err)

		assert.Equal(t, true, set["pages.licensingConditions.condition3.kennelsReady"])
		assert.Len(t, set, 1)
	})

	t.Run("MultipleConditionsInOnePatch", func(t *testing.T) {
		data := json.RawMessage(`{
			"condition1": {"hasVetAgreement": true, "vetContact": "Dr Vet, 0111 222333"},
			"condition6": {"injuryRecordsKept": true}
		}`)

		set, err := updateFieldsForPage(models.PageLicensingConditions, data)
		require.NoError(t, err)

		assert.Equal(t, true, set["pages.licensingConditions.condition1.hasVetAgreement"])
		assert.Equal(t, "Dr Vet, 0111 222333", set["pages.licensingConditions.condition1.vetContact"])
		assert.Equal(t, true, set["pages.licensingConditions.condition6.injuryRecordsKept"])
		assert.Len(t, set, 3)
	})

	t.Run("UnknownKeyIsRejected", func(t *testing.T) {
		data := json.RawMessage(`{"applicantName":"Jo","favouriteColour":"blue"}`)

		_, err := updateFieldsForPage(models.PageApplicantDetails, data)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "favouriteColour")
	})

	t.Run("UnknownConditionIsRejected", func(t *testing.T) {
		data := json.RawMessage(`{"condition7":{"ready":true}}`)

		_, err := updateFieldsForPage(models.PageLicensingConditions, data)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("UnknownPageIsRejected", func(t *testing.T) {
		_, err := updateFieldsForPage("paymentDetails", json.RawMessage(`{}`))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "paymentDetails")
	})

	t.Run("MalformedJSONIsRejected", func(t *testing.T) {
		_, err := updateFieldsForPage(models.PageApplicantDetails, json.RawMessage(`{"applicantName":`))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("EmptyObjectSetsNothing", func(t *testing.T) {
		set, err := updateFieldsForPage(models.PageApplicantDetails, json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Empty(t, set)
	})
}
