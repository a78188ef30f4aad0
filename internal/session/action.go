package session

import "strings"

// Action classifies what the assistant did this turn.
type Action string

const (
	// ActionRecommend means the reply presented concrete product options.
	ActionRecommend Action = "recommend"
	// ActionClarify means the reply asked for more preference detail.
	ActionClarify Action = "clarify"
)

// triggerPhrase marks a recommendation reply. The assistant prompt instructs
// the model to open its product lists with this phrase.
const triggerPhrase = "here are some"

// SelectAction derives the turn's action from the reply text alone.
func SelectAction(reply string) Action {
	if strings.Contains(strings.ToLower(reply), triggerPhrase) {
		return ActionRecommend
	}
	return ActionClarify
}
