package calendar

import (
	"errors"
	"time"

	"github.com/rickar/cal/v2"
)

// maxBusinessDayScan bounds searches for the next business day; no rule
// set closes more than a few consecutive days.
const maxBusinessDayScan = 366

// BusinessCalendar answers workday questions for a rule set. Saturdays,
// Sundays and public holidays are closed; observances stay open.
type BusinessCalendar struct {
	cal *cal.BusinessCalendar
}

// NewBusinessCalendar loads the public holidays of rules.
func NewBusinessCalendar(rules []Rule) *BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, rule := range rules {
		if rule.Category != Public {
			continue
		}
		bc.AddHoliday(toCalHoliday(rule))
	}
	return &BusinessCalendar{cal: bc}
}

// NewRegionBusinessCalendar builds the business calendar of a region.
func (r *Registry) NewRegionBusinessCalendar(region Region) (*BusinessCalendar, error) {
	rules, err := r.Rules(region)
	if err != nil {
		return nil, err
	}
	return NewBusinessCalendar(rules), nil
}

func toCalHoliday(rule Rule) *cal.Holiday {
	return &cal.Holiday{
		Name: rule.Name,
		Type: cal.ObservancePublic,
		Func: func(_ *cal.Holiday, year int) time.Time {
			date, err := rule.Evaluate(year)
			if err != nil {
				// no occurrence this year
				return time.Time{}
			}
			return date.Time(time.UTC)
		},
	}
}

func (b *BusinessCalendar) IsBusinessDay(d Date) bool {
	return b.cal.IsWorkday(d.Time(time.UTC))
}

// HolidayName returns the name of the public holiday on d, if any.
func (b *BusinessCalendar) HolidayName(d Date) (string, bool) {
	actual, _, h := b.cal.IsHoliday(d.Time(time.UTC))
	if !actual || h == nil {
		return "", false
	}
	return h.Name, true
}

var errNoBusinessDay = errors.New("no business day within a year")

// NextBusinessDay returns the first business day strictly after d.
func (b *BusinessCalendar) NextBusinessDay(d Date) (Date, error) {
	return b.step(d, 1)
}

// PreviousBusinessDay returns the last business day strictly before d.
func (b *BusinessCalendar) PreviousBusinessDay(d Date) (Date, error) {
	return b.step(d, -1)
}

func (b *BusinessCalendar) step(d Date, dir int) (Date, error) {
	for i := 0; i < maxBusinessDayScan; i++ {
		d = d.AddDays(dir)
		if b.IsBusinessDay(d) {
			return d, nil
		}
	}
	return Date{}, errNoBusinessDay
}

// AddBusinessDays moves n business days from d, backwards when n is
// negative. AddBusinessDays(d, 0) returns d unchanged.
func (b *BusinessCalendar) AddBusinessDays(d Date, n int) (Date, error) {
	var err error
	for ; n > 0; n-- {
		if d, err = b.NextBusinessDay(d); err != nil {
			return Date{}, err
		}
	}
	for ; n < 0; n++ {
		if d, err = b.PreviousBusinessDay(d); err != nil {
			return Date{}, err
		}
	}
	return d, nil
}
