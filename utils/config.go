package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	defaultListenPort      = "5995"
	defaultStopGracePeriod = 10 * time.Second
)

// RuleSetting is one holiday rule of a region declared in the config file.
type RuleSetting struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Month    int    `yaml:"month"`
	Day      int    `yaml:"day"`
	Weekday  string `yaml:"weekday"`
	Ordinal  int    `yaml:"ordinal"`
	Category string `yaml:"category"`
}

// RegionSetting declares a region, or replaces a built-in one.
type RegionSetting struct {
	Name  string        `yaml:"name"`
	Rules []RuleSetting `yaml:"rules"`
}

type Config struct {
	ListenPort      string
	LogLevel        log.Level
	Timezone        *time.Location
	DefaultRegion   calendar.Region
	StopGracePeriod time.Duration
	ProfileAddress  string // pprof listen address, empty disables
	StartTime       time.Time
	Regions         map[calendar.Region][]calendar.Rule
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() *Config {
	return &Config{
		ListenPort:      defaultListenPort,
		LogLevel:        log.INFO,
		Timezone:        time.UTC,
		DefaultRegion:   calendar.US,
		StopGracePeriod: defaultStopGracePeriod,
		StartTime:       time.Now(),
		Regions:         map[calendar.Region][]calendar.Rule{},
	}
}

// ParseConfig reads a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var aux struct {
		ListenPort      string          `yaml:"listen_port"`
		LogLevel        string          `yaml:"log_level"`
		Timezone        string          `yaml:"timezone"`
		DefaultRegion   string          `yaml:"default_region"`
		StopGracePeriod int             `yaml:"stop_grace_period"`
		ProfileAddress  string          `yaml:"profile_address"`
		Regions         []RegionSetting `yaml:"regions"`
	}
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	m := NewDefaultConfig()
	if aux.ListenPort != "" {
		m.ListenPort = strings.TrimPrefix(aux.ListenPort, ":")
	}

	level, err := log.ParseLevel(aux.LogLevel)
	if err != nil {
		return nil, err
	}
	m.LogLevel = level

	// Giving "" to LoadLocation will be UTC anyway, which is our default too.
	m.Timezone, err = time.LoadLocation(aux.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", aux.Timezone)
	}

	if aux.StopGracePeriod < 0 {
		return nil, fmt.Errorf("invalid stop_grace_period %d", aux.StopGracePeriod)
	}
	if aux.StopGracePeriod > 0 {
		m.StopGracePeriod = time.Duration(aux.StopGracePeriod) * time.Second
	}

	m.ProfileAddress = aux.ProfileAddress

	for _, rs := range aux.Regions {
		region := calendar.ParseRegion(rs.Name)
		if region == "" {
			return nil, errors.New("region without a name")
		}
		if _, dup := m.Regions[region]; dup {
			return nil, fmt.Errorf("region %s declared twice", region)
		}
		rules := make([]calendar.Rule, 0, len(rs.Rules))
		for i, setting := range rs.Rules {
			rule, err := setting.Rule()
			if err != nil {
				return nil, errors.Wrapf(err, "region %s rule %d", region, i+1)
			}
			rules = append(rules, rule)
		}
		m.Regions[region] = rules
	}

	if aux.DefaultRegion != "" {
		m.DefaultRegion = calendar.ParseRegion(aux.DefaultRegion)
	}

	// check the rule sets and the default region now rather than at the first query
	registry, err := m.Registry()
	if err != nil {
		return nil, err
	}
	if !registry.Has(m.DefaultRegion) {
		return nil, fmt.Errorf("default_region %s: %w", m.DefaultRegion, calendar.ErrUnknownRegion)
	}
	return m, nil
}

// Rule converts the setting to a calendar rule. Months are 1-12.
func (s RuleSetting) Rule() (calendar.Rule, error) {
	kind, err := calendar.ParseKind(s.Kind)
	if err != nil {
		return calendar.Rule{}, err
	}
	category, err := calendar.ParseCategory(s.Category)
	if err != nil {
		return calendar.Rule{}, err
	}
	month := time.Month(s.Month)

	var rule calendar.Rule
	switch kind {
	case calendar.FixedDate:
		rule = calendar.NewFixed(s.Name, category, month, s.Day)
	case calendar.NthWeekday, calendar.LastWeekday:
		weekday, err := calendar.ParseWeekday(s.Weekday)
		if err != nil {
			return calendar.Rule{}, err
		}
		if kind == calendar.NthWeekday {
			rule = calendar.NewNth(s.Name, category, month, weekday, s.Ordinal)
		} else {
			rule = calendar.NewLast(s.Name, category, month, weekday)
		}
	}
	if err := rule.Validate(); err != nil {
		return calendar.Rule{}, err
	}
	return rule, nil
}

// Registry returns the built-in regions overlaid with the configured ones.
func (m *Config) Registry() (*calendar.Registry, error) {
	registry := calendar.DefaultRegistry()
	for region, rules := range m.Regions {
		if err := registry.Register(region, rules...); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Today returns the current date in the configured timezone.
func (m *Config) Today(now time.Time) calendar.Date {
	loc := m.Timezone
	if loc == nil {
		loc = time.UTC
	}
	return calendar.DateOf(now.In(loc))
}
