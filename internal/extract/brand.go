package extract

import (
	"regexp"
	"strings"

	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/prefs"
)

// Brands returns every known brand mentioned as a whole word in the
// utterance. Substring hits inside larger words do not count, so "hp" does
// not match "whopping".
func Brands(utterance string, lex *lexicon.Lexicon) prefs.Update {
	query := strings.ToLower(utterance)
	var matched []string
	for _, brand := range lex.Brands {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(brand)) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(query) {
			matched = append(matched, brand)
		}
	}
	return prefs.Update{Brands: matched}
}
