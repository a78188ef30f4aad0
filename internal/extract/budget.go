package extract

import (
	"regexp"
	"strings"

	"github.com/shopsense/shopsense/internal/prefs"
)

// An optional lead-in word, a 4-7 digit amount, an optional currency unit.
// The trailing \b keeps longer digit runs (phone numbers, order ids) from
// matching on their first seven digits.
var budgetPattern = regexp.MustCompile(`\b(?:(?:under|within|upto|around)\s+)?(\d{4,7})\b\s*(?:inr|rs|rupees)?`)

// Budget extracts a numeric budget from the utterance. The currency unit is
// discarded; only the digit string is kept.
func Budget(utterance string) prefs.Update {
	match := budgetPattern.FindStringSubmatch(strings.ToLower(utterance))
	if match == nil {
		return prefs.Update{}
	}
	return prefs.Update{Budget: prefs.String(match[1])}
}
