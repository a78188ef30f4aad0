package prefs

// Update is one extractor's candidate contribution to the record. The zero
// value is a no-op; nil scalars and empty lists leave their fields alone.
type Update struct {
	Category *string
	Budget   *string
	UseCase  *string
	Brands   []string
	Features []string
	Excluded []string
}

func (u Update) IsZero() bool {
	return u.Category == nil && u.Budget == nil && u.UseCase == nil &&
		len(u.Brands) == 0 && len(u.Features) == 0 && len(u.Excluded) == 0
}
