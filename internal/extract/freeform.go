package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopsense/shopsense/internal/lexicon"
	"github.com/shopsense/shopsense/internal/llm"
	"github.com/shopsense/shopsense/internal/prefs"
)

const extractionPromptTemplate = `You are an intelligent state extraction system.
Based on the user input and assistant reply, extract any new shopping preferences.

User: "%s"
Assistant: "%s"

Return only the updated fields in this JSON format:
{
  "budget": "...",
  "use_case": "...",
  "category": "...",
  "brand_preferences": ["..."],
  "important_features": ["..."],
  "excluded_features": ["..."]
}
If nothing was mentioned, return an empty JSON object: {}`

// FreeForm asks the language model to read the latest exchange and emit a
// JSON object of updated preference fields. Its output is the least trusted
// extractor: values are validated strictly and the whole call degrades to
// an empty update on any failure.
type FreeForm struct {
	llm    llm.Responder
	logger *slog.Logger
}

func NewFreeForm(responder llm.Responder, logger *slog.Logger) *FreeForm {
	if logger == nil {
		logger = slog.Default()
	}
	return &FreeForm{llm: responder, logger: logger}
}

// Extract never fails: a model error, a reply without JSON, or malformed
// JSON all log a warning and return a zero update.
func (f *FreeForm) Extract(ctx context.Context, userText, assistantReply string, lex *lexicon.Lexicon) prefs.Update {
	prompt := fmt.Sprintf(extractionPromptTemplate, strings.TrimSpace(userText), strings.TrimSpace(assistantReply))
	raw, err := f.llm.Reply(ctx, llm.MessageInput{Text: prompt})
	if err != nil {
		f.logger.Warn("free-form extraction call failed", "error", err)
		return prefs.Update{}
	}

	object := FirstJSONObject(raw)
	if object == "" {
		f.logger.Warn("no JSON object found in extraction reply")
		return prefs.Update{}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(object), &fields); err != nil {
		f.logger.Warn("extraction reply JSON did not parse", "error", err)
		return prefs.Update{}
	}
	return updateFromFields(fields, lex)
}

// updateFromFields validates each candidate field. A scalar first passes the
// loose check (non-null, non-placeholder string) and is then normalized by
// the strict typed check; strict failure keeps the loose value rather than
// discarding it. Fields that fail both checks are dropped individually.
func updateFromFields(fields map[string]json.RawMessage, lex *lexicon.Lexicon) prefs.Update {
	update := prefs.Update{}

	if value, ok := looseString(fields["category"]); ok {
		update.Category = prefs.String(matchLexicon(value, lex.Categories))
	}
	if value, ok := looseString(fields["budget"]); ok {
		update.Budget = prefs.String(strictBudget(value))
	}
	if value, ok := looseString(fields["use_case"]); ok {
		update.UseCase = prefs.String(matchLexicon(value, lex.UseCases))
	}
	update.Brands = looseList(fields["brand_preferences"], lex.Brands)
	update.Features = looseList(fields["important_features"], lex.Features)
	update.Excluded = looseList(fields["excluded_features"], nil)

	return update
}

// looseString accepts a JSON string or number; null, empty, and placeholder
// values are rejected.
func looseString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if prefs.IsPlaceholder(text) {
			return "", false
		}
		return text, true
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return strconv.FormatFloat(number, 'f', -1, 64), true
	}
	return "", false
}

// looseList accepts a JSON list of strings or a single string. When choices
// is non-nil, elements are normalized to lexicon casing where they match.
func looseList(raw json.RawMessage, choices []string) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		single, ok := looseString(raw)
		if !ok {
			return nil
		}
		values = []string{single}
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if prefs.IsPlaceholder(value) {
			continue
		}
		if choices != nil {
			value = matchLexicon(value, choices)
		}
		result = append(result, value)
	}
	return result
}

// matchLexicon is the strict typed check for closed-vocabulary fields: a
// case-insensitive lexicon hit returns the lexicon entry verbatim, anything
// else falls back to the loose value (the record allows free text).
func matchLexicon(value string, choices []string) string {
	for _, choice := range choices {
		if strings.EqualFold(choice, value) {
			return choice
		}
	}
	return value
}

// strictBudget normalizes a budget to its digit string when the value holds
// a 4-7 digit amount, possibly decorated with currency symbols or
// separators. Anything else is kept as the loose value.
func strictBudget(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	if len(normalized) >= 4 && len(normalized) <= 7 {
		return normalized
	}
	return value
}
