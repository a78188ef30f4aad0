// Package extract implements the independent signal extractors that turn a
// raw utterance into candidate preference updates. Each extractor is a pure
// function over (utterance, lexicon); none depends on another's output
// within a turn, so they can run in any order.
package extract

import (
	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/prefs"
)

// DefaultThreshold is the partial-ratio score a fuzzy match must exceed.
const DefaultThreshold = 80

// Deterministic runs every rule-based extractor over the utterance and
// returns their updates. The updates target disjoint fields or use
// set-union, so the slice order carries no meaning.
func Deterministic(utterance string, lex *lexicon.Lexicon, threshold int) []prefs.Update {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return []prefs.Update{
		Budget(utterance),
		Category(utterance, lex, threshold),
		UseCase(utterance, lex, threshold),
		Brands(utterance, lex),
		Features(utterance, lex, threshold),
	}
}
