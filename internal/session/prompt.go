package session

import (
	"fmt"
	"strings"

	"github.com/shopsense/shopsense/internal/prefs"
)

const assistantPromptTemplate = `You are a helpful shopping assistant for an online electronics store.
Your goal is to understand what the user wants to buy and either ask a
clarifying question or recommend products.

Known preferences so far:
- Category: %s
- Budget: %s
- Use case: %s
- Preferred brands: %s
- Important features: %s
- Excluded features: %s

Rules:
- If key preferences are missing, ask one short clarifying question about
  the most important gap.
- When you recommend products, begin the list with the exact phrase
  "Here are some" followed by the options.
- Keep replies short and conversational.%s

User message: %s`

const completenessNudge = `
- The category, budget, and use case are all known. Prefer recommending
  products now over asking further questions.`

// assistantPrompt renders the system prompt for the reply call, embedding
// the working preference record and the user's latest message.
func assistantPrompt(record *prefs.Record, userText string) string {
	nudge := ""
	if record.Complete() {
		nudge = completenessNudge
	}
	return fmt.Sprintf(assistantPromptTemplate,
		scalarOrNone(record.Category),
		scalarOrNone(record.Budget),
		scalarOrNone(record.UseCase),
		listOrNone(record.BrandPreferences),
		listOrNone(record.ImportantFeatures),
		listOrNone(record.ExcludedFeatures),
		nudge,
		strings.TrimSpace(userText))
}

func scalarOrNone(value *string) string {
	if value == nil {
		return "None"
	}
	return *value
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
