package catalog

import "strings"

// Filters holds the optional narrowing criteria applied to a character
// list. Empty fields impose no constraint.
type Filters struct {
	// Name matches by case-insensitive substring.
	Name string
	// Status matches by case-insensitive equality.
	Status string
	// Gender matches by case-insensitive equality; characters without a
	// gender never match when a gender filter is set.
	Gender string
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Name == "" && f.Status == "" && f.Gender == ""
}

// Filter returns the characters matching all set filters, preserving
// input order. With no filters set the input slice is returned as is.
func Filter(characters []Character, f Filters) []Character {
	if f.IsZero() {
		return characters
	}

	result := make([]Character, 0, len(characters))
	for _, c := range characters {
		if !matches(c, f) {
			continue
		}
		result = append(result, c)
	}
	return result
}

func matches(c Character, f Filters) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(c.Status, f.Status) {
		return false
	}
	if f.Gender != "" {
		if c.Gender == "" || !strings.EqualFold(c.Gender, f.Gender) {
			return false
		}
	}
	return true
}
