package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const refLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateReferenceNumber produces a GOV.UK style reference number: three
// uppercase letters, four digits, one uppercase letter, e.g. HDJ2123F.
//
// The second and third letters, the digits and the suffix are all derived
// from the current millisecond timestamp so forms created in rapid
// succession still differ; the leading letter is random. Uniqueness is
// probabilistic only - callers must not treat this as a primary key.
func GenerateReferenceNumber() string {
	ts := time.Now().UnixMilli()

	first := refLetters[rand.Intn(len(refLetters))]
	second := refLetters[ts%26]
	third := refLetters[(ts/26)%26]

	// Always four digits.
	digits := 1000 + ts%9000

	suffix := refLetters[(ts/(26*26))%26]

	return fmt.Sprintf("%c%c%c%d%c", first, second, third, digits, suffix)
}
