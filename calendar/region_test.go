package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSortedUnique(t *testing.T) {
	t.Parallel()
	reg := DefaultRegistry()
	for _, region := range reg.Regions() {
		rules, err := reg.Rules(region)
		require.NoError(t, err)
		for year := 1900; year <= 2100; year++ {
			holidays, err := reg.Build(region, year)
			require.NoError(t, err)
			require.NotEmpty(t, holidays)
			assert.Len(t, holidays, len(rules), "%s %d", region, year)

			seen := map[Date]string{}
			for i, h := range holidays {
				assert.Equal(t, year, h.Date.Year)
				if i > 0 {
					assert.False(t, h.Date.Before(holidays[i-1].Date), "%s %d not sorted at %s", region, year, h.Date)
					assert.True(t, holidays[i-1].Date.String() < h.Date.String())
				}
				if other, dup := seen[h.Date]; dup {
					t.Errorf("%s %d: %s and %s share %s", region, year, other, h.Name, h.Date)
				}
				seen[h.Date] = h.Name
			}
		}
	}
}

func TestBuildUS2024(t *testing.T) {
	t.Parallel()
	holidays, err := Build(US, 2024)
	require.NoError(t, err)

	want := []string{
		"2024-01-01 New Year's Day",
		"2024-01-15 MLK Jr. Day",
		"2024-02-19 Presidents' Day",
		"2024-05-27 Memorial Day",
		"2024-06-19 Juneteenth",
		"2024-07-04 Independence Day",
		"2024-09-02 Labor Day",
		"2024-10-14 Columbus Day",
		"2024-11-11 Veterans Day",
		"2024-11-28 Thanksgiving",
		"2024-12-25 Christmas Day",
	}
	got := make([]string, 0, len(holidays))
	for _, h := range holidays {
		got = append(got, h.Date.String()+" "+h.Name)
		assert.Equal(t, Public, h.Category)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("US 2024 mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIN(t *testing.T) {
	t.Parallel()
	holidays, err := Build("in", 2025)
	require.NoError(t, err)
	require.Len(t, holidays, 9)
	assert.Equal(t, "Makar Sankranti", holidays[0].Name)
	assert.Equal(t, Observance, holidays[0].Category)
	assert.Equal(t, "2025-01-26", holidays[1].Date.String())
	assert.Equal(t, "Christmas", holidays[8].Name)

	observances := FilterCategory(holidays, Observance)
	assert.Len(t, observances, 2)
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()
	first, err := Build(US, 2025)
	require.NoError(t, err)
	second, err := Build(US, 2025)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildUnknownRegion(t *testing.T) {
	t.Parallel()
	holidays, err := Build("ZZ", 2025)
	assert.ErrorIs(t, err, ErrUnknownRegion)
	assert.Nil(t, holidays)
}

func TestBuildOmitsMissingOccurrences(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	require.NoError(t, reg.Register("XX",
		NewFixed("Leap Day", Observance, time.February, 29),
		NewNth("Fifth Sunday", Public, time.February, time.Sunday, 5),
		NewFixed("New Year", Public, time.January, 1),
	))

	holidays, err := reg.Build("XX", 2024)
	require.NoError(t, err)
	assert.Len(t, holidays, 2)

	holidays, err = reg.Build("XX", 2023)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "New Year", holidays[0].Name)

	// February 2032 starts on a Sunday and has five of them
	holidays, err = reg.Build("XX", 2032)
	require.NoError(t, err)
	assert.Len(t, holidays, 3)
}

func TestBuildTiesKeepRuleOrder(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	require.NoError(t, reg.Register("XX",
		NewFixed("Second", Public, time.March, 2),
		NewFixed("First B", Public, time.March, 1),
		NewFixed("First A", Public, time.March, 1),
	))
	holidays, err := reg.Build("xx", 2025)
	require.NoError(t, err)
	names := []string{holidays[0].Name, holidays[1].Name, holidays[2].Name}
	assert.Equal(t, []string{"First B", "First A", "Second"}, names)
}

func TestRegister(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	assert.ErrorIs(t, reg.Register("XX"), ErrInvalidRule)
	assert.ErrorIs(t, reg.Register("", USNewYear), ErrInvalidRule)
	assert.ErrorIs(t, reg.Register("XX", NewFixed("Bad", Public, time.April, 31)), ErrInvalidRule)
	assert.False(t, reg.Has("XX"))

	rules := []Rule{USNewYear, USChristmas}
	require.NoError(t, reg.Register("xx", rules...))
	rules[0] = USLabor
	got, err := reg.Rules("XX")
	require.NoError(t, err)
	assert.Equal(t, "New Year's Day", got[0].Name)
	assert.True(t, reg.Has("xx"))

	assert.Equal(t, []Region{IN, US}, DefaultRegistry().Regions())
}

func TestHolidayIsPast(t *testing.T) {
	t.Parallel()
	h := Holiday{Date: Date{Year: 2025, Month: time.July, Day: 4}, Name: "Independence Day"}
	assert.False(t, h.IsPast(Date{Year: 2025, Month: time.July, Day: 4}))
	assert.False(t, h.IsPast(Date{Year: 2025, Month: time.July, Day: 3}))
	assert.True(t, h.IsPast(Date{Year: 2025, Month: time.July, Day: 5}))
}

func TestBuildConcurrent(t *testing.T) {
	t.Parallel()
	reg := DefaultRegistry()
	want := map[Region][]Holiday{}
	for _, region := range reg.Regions() {
		holidays, err := reg.Build(region, 2025)
		require.NoError(t, err)
		want[region] = holidays
	}

	const workers = 16
	results := make([][]Holiday, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			region := reg.Regions()[i%2]
			for j := 0; j < 50; j++ {
				results[i], errs[i] = reg.Build(region, 2025)
				if errs[i] != nil {
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Empty(t, cmp.Diff(want[reg.Regions()[i%2]], results[i]))
	}
}
