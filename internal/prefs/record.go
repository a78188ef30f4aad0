// Package prefs holds the canonical preference record for a shopping
// conversation and the rules for merging extractor output into it.
package prefs

import "strings"

// Record is the single preference state threaded through a session. It is
// created once at session start and mutated turn by turn; scalar fields are
// overwritten wholesale, list fields accumulate with set semantics.
type Record struct {
	Category          *string  `json:"category"`
	Budget            *string  `json:"budget"`
	UseCase           *string  `json:"use_case"`
	BrandPreferences  []string `json:"brand_preferences"`
	ImportantFeatures []string `json:"important_features"`
	ExcludedFeatures  []string `json:"excluded_features"`
	SuggestedProducts []string `json:"suggested_products"`
}

// NewRecord returns an empty record. Slices start non-nil so the final dump
// shows empty lists rather than nulls.
func NewRecord() *Record {
	return &Record{
		BrandPreferences:  []string{},
		ImportantFeatures: []string{},
		ExcludedFeatures:  []string{},
		SuggestedProducts: []string{},
	}
}

func (r *Record) Clone() *Record {
	clone := &Record{
		Category:          clonePtr(r.Category),
		Budget:            clonePtr(r.Budget),
		UseCase:           clonePtr(r.UseCase),
		BrandPreferences:  append([]string{}, r.BrandPreferences...),
		ImportantFeatures: append([]string{}, r.ImportantFeatures...),
		ExcludedFeatures:  append([]string{}, r.ExcludedFeatures...),
		SuggestedProducts: append([]string{}, r.SuggestedProducts...),
	}
	return clone
}

// Apply merges one extractor's update into the record. Scalars only change
// when the candidate passes the placeholder filter; list candidates are
// appended when not already present.
func (r *Record) Apply(update Update) {
	r.Category = overwrite(r.Category, update.Category)
	r.Budget = overwrite(r.Budget, update.Budget)
	r.UseCase = overwrite(r.UseCase, update.UseCase)
	r.BrandPreferences = appendMissing(r.BrandPreferences, update.Brands)
	r.ImportantFeatures = appendMissing(r.ImportantFeatures, update.Features)
	r.ExcludedFeatures = appendMissing(r.ExcludedFeatures, update.Excluded)
}

// Reconcile applies a full turn's update batch: deterministic extractor
// updates first in the given order, the free-form update last so a valid
// free-form value has final say on scalar conflicts. It is total: invalid
// candidates degrade to no-ops, never errors.
func (r *Record) Reconcile(deterministic []Update, freeform Update) {
	for _, update := range deterministic {
		r.Apply(update)
	}
	r.Apply(freeform)
	r.Dedupe()
}

// Dedupe enforces set semantics on the list fields, keeping first
// occurrence order. Safe to call repeatedly.
func (r *Record) Dedupe() {
	r.BrandPreferences = dedupe(r.BrandPreferences)
	r.ImportantFeatures = dedupe(r.ImportantFeatures)
	r.ExcludedFeatures = dedupe(r.ExcludedFeatures)
}

// Complete reports whether the core scalar preferences are all known.
func (r *Record) Complete() bool {
	return r.Category != nil && r.Budget != nil && r.UseCase != nil
}

// IsPlaceholder reports whether a candidate value carries no information:
// empty, whitespace-only, or the literal ellipsis a model emits when it has
// nothing to report.
func IsPlaceholder(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == "..."
}

// String returns a pointer to value, for building scalar updates.
func String(value string) *string {
	return &value
}

func overwrite(current, candidate *string) *string {
	if candidate == nil {
		return current
	}
	trimmed := strings.TrimSpace(*candidate)
	if IsPlaceholder(trimmed) {
		return current
	}
	return &trimmed
}

func appendMissing(existing []string, candidates []string) []string {
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if IsPlaceholder(trimmed) {
			continue
		}
		if !containsFold(existing, trimmed) {
			existing = append(existing, trimmed)
		}
	}
	return existing
}

func dedupe(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if IsPlaceholder(trimmed) {
			continue
		}
		if !containsFold(result, trimmed) {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}

func clonePtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
