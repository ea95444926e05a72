package users

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CityFilter selects records whose city starts with a prefix, ignoring case.
// The zero value is inactive and keeps every record.
type CityFilter struct {
	prefix string
	active bool
}

// NewCityFilter builds an active filter from a user-supplied letter. The
// letter is trimmed; a blank letter is a UsageError.
func NewCityFilter(letter string) (CityFilter, error) {
	trimmed := strings.TrimSpace(letter)
	if trimmed == "" {
		return CityFilter{}, &UsageError{Message: "--city-start requires a non-empty letter"}
	}
	return CityFilter{prefix: lower(trimmed), active: true}, nil
}

// Active reports whether the filter drops anything at all.
func (f CityFilter) Active() bool {
	return f.active
}

// Prefix returns the lower-cased prefix, empty for an inactive filter.
func (f CityFilter) Prefix() string {
	return f.prefix
}

// Match reports whether a single record passes the filter. Records without a
// string address.city never match an active filter.
func (f CityFilter) Match(r Record) bool {
	if !f.active {
		return true
	}
	city, ok := r.City()
	if !ok {
		return false
	}
	return strings.HasPrefix(lower(city), f.prefix)
}

// Apply returns the matching records in their original order. An inactive
// filter returns records as is.
func (f CityFilter) Apply(records []Record) []Record {
	if !f.active {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
