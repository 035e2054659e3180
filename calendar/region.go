package calendar

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a jurisdiction code such as "US" or "IN".
type Region string

const (
	US Region = "US"
	IN Region = "IN"
)

// ParseRegion normalizes a region code. It does not check that the region
// is registered.
func ParseRegion(s string) Region {
	return Region(strings.ToUpper(strings.TrimSpace(s)))
}

// Registry maps regions to their rule sets. A Registry is filled during
// startup; after that it is only read and may be shared by goroutines.
type Registry struct {
	rules map[Region][]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: map[Region][]Rule{}}
}

// DefaultRegistry returns a registry holding the built-in regions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for region, rules := range builtin {
		if err := r.Register(region, rules...); err != nil {
			panic(fmt.Sprintf("builtin rules for %s: %v", region, err))
		}
	}
	return r
}

// Register validates rules and installs them as the rule set of region,
// replacing any previous set.
func (r *Registry) Register(region Region, rules ...Rule) error {
	region = ParseRegion(string(region))
	if region == "" {
		return fmt.Errorf("empty region code: %w", ErrInvalidRule)
	}
	if len(rules) == 0 {
		return fmt.Errorf("region %s has no rules: %w", region, ErrInvalidRule)
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("region %s: %w", region, err)
		}
	}
	r.rules[region] = append([]Rule(nil), rules...)
	return nil
}

func (r *Registry) Has(region Region) bool {
	_, ok := r.rules[ParseRegion(string(region))]
	return ok
}

// Rules returns a copy of the rule set of region.
func (r *Registry) Rules(region Region) ([]Rule, error) {
	rules, ok := r.rules[ParseRegion(string(region))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(region), ErrUnknownRegion)
	}
	return append([]Rule(nil), rules...), nil
}

// Regions lists the registered regions in alphabetical order.
func (r *Registry) Regions() []Region {
	regions := make([]Region, 0, len(r.rules))
	for region := range r.rules {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}

// Build returns the holidays of region in year, sorted by date.
func (r *Registry) Build(region Region, year int) ([]Holiday, error) {
	rules, ok := r.rules[ParseRegion(string(region))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(region), ErrUnknownRegion)
	}
	return BuildFromRules(rules, year)
}

var defaultRegistry = DefaultRegistry()

// Build returns the holidays of a built-in region in year.
func Build(region Region, year int) ([]Holiday, error) {
	return defaultRegistry.Build(region, year)
}
