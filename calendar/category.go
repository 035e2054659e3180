package calendar

import (
	"fmt"
	"strings"
)

// Category classifies a holiday.
type Category int

const (
	Public Category = iota
	Observance
)

func (c Category) String() string {
	switch c {
	case Public:
		return "public"
	case Observance:
		return "observance"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) valid() bool {
	return c == Public || c == Observance
}

// ParseCategory accepts "public" or "observance", case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public", "":
		return Public, nil
	case "observance":
		return Observance, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}
