package calendar

import (
	"errors"
	"sort"
)

// Holiday is a rule resolved for a specific year.
type Holiday struct {
	Date     Date
	Name     string
	Category Category
}

// IsPast reports whether the holiday is over as of today. A holiday on
// today itself is not past.
func (h Holiday) IsPast(today Date) bool {
	return h.Date.Before(today)
}

// BuildFromRules resolves every rule for year and returns the holidays in
// date order. Rules with no occurrence in year are left out; ties keep
// the order of rules.
func BuildFromRules(rules []Rule, year int) ([]Holiday, error) {
	holidays := make([]Holiday, 0, len(rules))
	for _, rule := range rules {
		date, err := rule.Evaluate(year)
		if errors.Is(err, ErrNoOccurrence) {
			continue
		}
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, Holiday{Date: date, Name: rule.Name, Category: rule.Category})
	}
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays, nil
}

// On returns the holidays falling on date.
func On(holidays []Holiday, date Date) []Holiday {
	var found []Holiday
	for _, h := range holidays {
		if h.Date == date {
			found = append(found, h)
		}
	}
	return found
}

// FilterCategory keeps the holidays of the given category.
func FilterCategory(holidays []Holiday, category Category) []Holiday {
	out := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}
