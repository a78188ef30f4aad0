package extract

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/prefs"
)

// Category fuzzy-matches the utterance against the category lexicon and
// returns the best entry when its partial-ratio score clears the threshold.
func Category(utterance string, lex *lexicon.Lexicon, threshold int) prefs.Update {
	best, score := bestPartialMatch(utterance, lex.Categories)
	if score <= threshold {
		return prefs.Update{}
	}
	return prefs.Update{Category: prefs.String(best)}
}

// UseCase applies the same algorithm against the use-case lexicon.
func UseCase(utterance string, lex *lexicon.Lexicon, threshold int) prefs.Update {
	best, score := bestPartialMatch(utterance, lex.UseCases)
	if score <= threshold {
		return prefs.Update{}
	}
	return prefs.Update{UseCase: prefs.String(best)}
}

// Features returns every feature phrase whose partial-ratio score against
// the utterance clears the threshold. Multiple features may match per turn.
func Features(utterance string, lex *lexicon.Lexicon, threshold int) prefs.Update {
	query := strings.ToLower(utterance)
	var matched []string
	for _, feature := range lex.Features {
		if fuzzy.PartialRatio(strings.ToLower(feature), query) > threshold {
			matched = append(matched, feature)
		}
	}
	return prefs.Update{Features: matched}
}

// bestPartialMatch scores the query against every choice and returns the
// winner. Ties keep the first choice encountered, so lexicon order is the
// tie-break.
func bestPartialMatch(query string, choices []string) (string, int) {
	query = strings.ToLower(query)
	best := ""
	bestScore := -1
	for _, choice := range choices {
		score := fuzzy.PartialRatio(strings.ToLower(choice), query)
		if score > bestScore {
			best = choice
			bestScore = score
		}
	}
	return best, bestScore
}
