package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var referenceNumberPattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}[A-Z]$`)

func TestGenerateReferenceNumber(t *testing.T) {
	t.Run("MatchesRequiredFormat", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			ref := GenerateReferenceNumber()
			assert.Regexp(t, referenceNumberPattern, ref)
			assert.Len(t, ref, 8)
		}
	})

	t.Run("DigitsStayInFourDigitRange", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			ref := GenerateReferenceNumber()
			digits := ref[3:7]
			assert.GreaterOrEqual(t, digits, "1000")
			assert.LessOrEqual(t, digits, "9999")
		}
	})
}
