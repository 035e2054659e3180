package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/utils/log"
)

const sampleConfig = `
listen_port: ":8080"
log_level: debug
timezone: America/New_York
default_region: ca
stop_grace_period: 3
profile_address: localhost:6060
regions:
  - name: CA
    rules:
      - name: New Year's Day
        kind: fixed
        month: 1
        day: 1
      - name: Spring Holiday
        kind: last
        month: 5
        weekday: monday
        category: public
      - name: Canada Day
        kind: fixed
        month: 7
        day: 1
      - name: Labour Day
        kind: nth
        month: 9
        weekday: Mon
        ordinal: 1
      - name: Groundhog Day
        kind: fixed
        month: 2
        day: 2
        category: observance
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ListenPort)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, "America/New_York", cfg.Timezone.String())
	assert.Equal(t, calendar.Region("CA"), cfg.DefaultRegion)
	assert.Equal(t, 3*time.Second, cfg.StopGracePeriod)
	assert.Equal(t, "localhost:6060", cfg.ProfileAddress)
	require.Len(t, cfg.Regions["CA"], 5)
	assert.Equal(t, calendar.LastWeekday, cfg.Regions["CA"][1].When.Kind())
	assert.Equal(t, calendar.Observance, cfg.Regions["CA"][4].Category)

	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []calendar.Region{"CA", calendar.IN, calendar.US}, registry.Regions())

	holidays, err := registry.Build("CA", 2025)
	require.NoError(t, err)
	require.Len(t, holidays, 5)
	assert.Equal(t, "2025-05-26", holidays[2].Date.String())
	assert.Equal(t, "Spring Holiday", holidays[2].Name)
	assert.Equal(t, "2025-09-01", holidays[4].Date.String())
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, defaultListenPort, cfg.ListenPort)
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.Equal(t, time.UTC, cfg.Timezone)
	assert.Equal(t, calendar.US, cfg.DefaultRegion)
	assert.Equal(t, defaultStopGracePeriod, cfg.StopGracePeriod)
	assert.Empty(t, cfg.Regions)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "listen_port: [",
		"bad level":        "log_level: chatty",
		"bad timezone":     "timezone: Mars/Olympus",
		"negative grace":   "stop_grace_period: -1",
		"unknown default":  "default_region: ZZ",
		"unnamed region":   "regions:\n  - rules:\n      - {name: x, kind: fixed, month: 1, day: 1}",
		"empty region":     "regions:\n  - name: XX",
		"duplicate region": "regions:\n  - {name: XX, rules: [{name: x, kind: fixed, month: 1, day: 1}]}\n  - {name: xx, rules: [{name: y, kind: fixed, month: 1, day: 2}]}",
		"bad kind":         "regions:\n  - {name: XX, rules: [{name: x, kind: easter, month: 1}]}",
		"bad weekday":      "regions:\n  - {name: XX, rules: [{name: x, kind: nth, month: 1, weekday: someday, ordinal: 1}]}",
		"bad ordinal":      "regions:\n  - {name: XX, rules: [{name: x, kind: nth, month: 1, weekday: mon, ordinal: 6}]}",
		"bad day":          "regions:\n  - {name: XX, rules: [{name: x, kind: fixed, month: 2, day: 30}]}",
		"bad category":     "regions:\n  - {name: XX, rules: [{name: x, kind: fixed, month: 2, day: 3, category: bank}]}",
	}
	for name, data := range tests {
		_, err := ParseConfig([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestConfigToday(t *testing.T) {
	cfg := NewDefaultConfig()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cfg.Timezone = ny

	now := time.Date(2025, time.July, 5, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-04", cfg.Today(now).String())
}
