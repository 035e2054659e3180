package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Kind names the way a rule pins its holiday to the calendar.
type Kind int

const (
	FixedDate   Kind = iota // same month and day every year
	NthWeekday              // e.g. 3rd Monday of January
	LastWeekday             // e.g. last Monday of May
)

func (k Kind) String() string {
	switch k {
	case FixedDate:
		return "fixed"
	case NthWeekday:
		return "nth"
	case LastWeekday:
		return "last"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return FixedDate, nil
	case "nth":
		return NthWeekday, nil
	case "last":
		return LastWeekday, nil
	default:
		return 0, fmt.Errorf("unknown rule kind %q", s)
	}
}

// Occurrence resolves a holiday to a date within a year. The set of
// implementations is closed: Fixed, Nth and Last.
type Occurrence interface {
	Kind() Kind
	// resolve returns the date in year, ErrNoOccurrence if the year has
	// none, or ErrInvalidRule.
	resolve(year int) (Date, error)
	validate() error
}

// Fixed is a holiday on the same month and day every year.
type Fixed struct {
	Month time.Month
	Day   int
}

const maxOrdinal = 5

// Nth is the Ordinal-th Weekday of Month, counting from 1.
type Nth struct {
	Month   time.Month
	Weekday time.Weekday
	Ordinal int
}

// Last is the last Weekday of Month.
type Last struct {
	Month   time.Month
	Weekday time.Weekday
}

func (Fixed) Kind() Kind { return FixedDate }
func (Nth) Kind() Kind   { return NthWeekday }
func (Last) Kind() Kind  { return LastWeekday }

func (f Fixed) resolve(year int) (Date, error) {
	if err := f.validate(); err != nil {
		return Date{}, err
	}
	if f.Day > DaysIn(year, f.Month) {
		// only February 29th gets here
		return Date{}, ErrNoOccurrence
	}
	return Date{Year: year, Month: f.Month, Day: f.Day}, nil
}

func (f Fixed) validate() error {
	if err := validMonth(f.Month); err != nil {
		return err
	}
	if f.Day < 1 || f.Day > maxDaysIn(f.Month) {
		return fmt.Errorf("day %d out of range for %s: %w", f.Day, f.Month, ErrInvalidRule)
	}
	return nil
}

func (n Nth) resolve(year int) (Date, error) {
	if err := validMonth(n.Month); err != nil {
		return Date{}, err
	}
	if err := validWeekday(n.Weekday); err != nil {
		return Date{}, err
	}
	if n.Ordinal < 1 {
		return Date{}, fmt.Errorf("ordinal %d: %w", n.Ordinal, ErrInvalidRule)
	}
	// no month has a sixth week day
	if n.Ordinal > maxOrdinal {
		return Date{}, ErrNoOccurrence
	}
	first := Date{Year: year, Month: n.Month, Day: 1}.Weekday()
	day := 1 + (int(n.Weekday)-int(first)+7)%7 + (n.Ordinal-1)*7
	if day > DaysIn(year, n.Month) {
		return Date{}, ErrNoOccurrence
	}
	return Date{Year: year, Month: n.Month, Day: day}, nil
}

func (n Nth) validate() error {
	if err := validMonth(n.Month); err != nil {
		return err
	}
	if err := validWeekday(n.Weekday); err != nil {
		return err
	}
	// a weekday occurs at most five times in a month
	if n.Ordinal < 1 || n.Ordinal > maxOrdinal {
		return fmt.Errorf("ordinal %d out of range 1-%d: %w", n.Ordinal, maxOrdinal, ErrInvalidRule)
	}
	return nil
}

func (l Last) resolve(year int) (Date, error) {
	if err := l.validate(); err != nil {
		return Date{}, err
	}
	last := Date{Year: year, Month: l.Month, Day: DaysIn(year, l.Month)}
	back := (int(last.Weekday()) - int(l.Weekday) + 7) % 7
	last.Day -= back
	return last, nil
}

func (l Last) validate() error {
	if err := validMonth(l.Month); err != nil {
		return err
	}
	return validWeekday(l.Weekday)
}

func validMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return fmt.Errorf("month %d: %w", int(m), ErrInvalidRule)
	}
	return nil
}

func validWeekday(wd time.Weekday) error {
	if wd < time.Sunday || wd > time.Saturday {
		return fmt.Errorf("weekday %d: %w", int(wd), ErrInvalidRule)
	}
	return nil
}

// Rule defines one holiday of a region.
type Rule struct {
	Name     string
	Category Category
	When     Occurrence
}

// NewFixed returns a rule for month/day every year.
func NewFixed(name string, category Category, month time.Month, day int) Rule {
	return Rule{Name: name, Category: category, When: Fixed{Month: month, Day: day}}
}

// NewNth returns a rule for the nth weekday of month.
func NewNth(name string, category Category, month time.Month, weekday time.Weekday, n int) Rule {
	return Rule{Name: name, Category: category, When: Nth{Month: month, Weekday: weekday, Ordinal: n}}
}

// NewLast returns a rule for the last weekday of month.
func NewLast(name string, category Category, month time.Month, weekday time.Weekday) Rule {
	return Rule{Name: name, Category: category, When: Last{Month: month, Weekday: weekday}}
}

// Validate reports whether the rule can be evaluated for every year,
// leaving aside February 29th.
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidRule)
	}
	if !r.Category.valid() {
		return fmt.Errorf("%s: category %d: %w", r.Name, int(r.Category), ErrInvalidRule)
	}
	if r.When == nil {
		return fmt.Errorf("%s: no occurrence: %w", r.Name, ErrInvalidRule)
	}
	if err := r.When.validate(); err != nil {
		return fmt.Errorf("%s: %w", r.Name, err)
	}
	return nil
}

// Evaluate returns the date of the rule in year. ErrNoOccurrence means
// the year has no such day, like a 5th Sunday of a four-Sunday February.
func (r Rule) Evaluate(year int) (Date, error) {
	if r.When == nil {
		return Date{}, fmt.Errorf("%s: no occurrence: %w", r.Name, ErrInvalidRule)
	}
	return r.When.resolve(year)
}

// Evaluate is shorthand for rule.Evaluate(year).
func Evaluate(rule Rule, year int) (Date, error) {
	return rule.Evaluate(year)
}

var weekdays = map[string]time.Weekday{
	"SUN": time.Sunday, "MON": time.Monday, "TUE": time.Tuesday,
	"WED": time.Wednesday, "THU": time.Thursday,
	"FRI": time.Friday, "SAT": time.Saturday,
}

// ParseWeekday accepts full English weekday names or their three letter
// abbreviations, in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if len(name) >= 3 {
		if wd, ok := weekdays[name[:3]]; ok && (len(name) == 3 || name == strings.ToUpper(wd.String())) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
