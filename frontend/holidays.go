package frontend

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gobwas/glob"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/clock"
	"github.com/alpacahq/holidaystore/metrics"
)

const (
	minYear = 1
	maxYear = 9999
)

var (
	errInvalidYear  = errors.New("year must be between 1 and 9999")
	errInvalidMonth = errors.New("month must be between 1 and 12")
)

// HolidayService answers holiday queries. All of its state is read-only,
// so one instance serves concurrent requests.
type HolidayService struct {
	registry      *calendar.Registry
	clock         clock.Clock
	location      *time.Location
	defaultRegion calendar.Region
}

func NewHolidayService(registry *calendar.Registry, clk clock.Clock, loc *time.Location,
	defaultRegion calendar.Region,
) *HolidayService {
	if loc == nil {
		loc = time.UTC
	}
	return &HolidayService{
		registry:      registry,
		clock:         clk,
		location:      loc,
		defaultRegion: defaultRegion,
	}
}

type ListRegionsRequest struct{}

type ListRegionsResponse struct {
	Regions       []string `msgpack:"regions" json:"regions"`
	DefaultRegion string   `msgpack:"default_region" json:"default_region"`
}

// ListRegions returns the region codes with a rule set.
func (s *HolidayService) ListRegions(_ *http.Request, _ *ListRegionsRequest, resp *ListRegionsResponse) error {
	for _, region := range s.registry.Regions() {
		resp.Regions = append(resp.Regions, string(region))
	}
	resp.DefaultRegion = string(s.defaultRegion)
	return nil
}

type ListHolidaysRequest struct {
	// Region defaults to the server's default region.
	Region string `msgpack:"region,omitempty" json:"region,omitempty"`
	// Year defaults to the current year.
	Year int `msgpack:"year,omitempty" json:"year,omitempty"`
	// Category is "public" or "observance"; empty keeps both.
	Category string `msgpack:"category,omitempty" json:"category,omitempty"`
	// Match is a glob on holiday names, e.g. "*Day".
	Match string `msgpack:"match,omitempty" json:"match,omitempty"`
}

type HolidayResult struct {
	Date     string `msgpack:"date" json:"date" csv:"date"`
	Name     string `msgpack:"name" json:"name" csv:"name"`
	Category string `msgpack:"category" json:"category" csv:"category"`
	Weekday  string `msgpack:"weekday" json:"weekday" csv:"weekday"`
	Past     bool   `msgpack:"past" json:"past" csv:"past"`
}

type ListHolidaysResponse struct {
	Region   string          `msgpack:"region" json:"region"`
	Year     int             `msgpack:"year" json:"year"`
	Today    string          `msgpack:"today" json:"today"`
	Holidays []HolidayResult `msgpack:"holidays" json:"holidays"`
}

// ListHolidays returns the holidays of a region and year in date order.
func (s *HolidayService) ListHolidays(_ *http.Request, req *ListHolidaysRequest, resp *ListHolidaysResponse) error {
	today := s.today()
	region := s.region(req.Region)
	year := req.Year
	if year == 0 {
		year = today.Year
	}

	holidays, err := s.build(region, year)
	if err != nil {
		return err
	}
	if req.Category != "" {
		category, err := calendar.ParseCategory(req.Category)
		if err != nil {
			return err
		}
		holidays = calendar.FilterCategory(holidays, category)
	}
	if req.Match != "" {
		g, err := glob.Compile(req.Match)
		if err != nil {
			return fmt.Errorf("invalid match pattern %q: %w", req.Match, err)
		}
		holidays = matching(holidays, g)
	}

	resp.Region = string(region)
	resp.Year = year
	resp.Today = today.String()
	resp.Holidays = make([]HolidayResult, 0, len(holidays))
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, HolidayResult{
			Date:     h.Date.String(),
			Name:     h.Name,
			Category: h.Category.String(),
			Weekday:  h.Date.Weekday().String(),
			Past:     h.IsPast(today),
		})
	}
	return nil
}

func matching(holidays []calendar.Holiday, g glob.Glob) []calendar.Holiday {
	out := make([]calendar.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if g.Match(h.Name) {
			out = append(out, h)
		}
	}
	return out
}

type MonthRequest struct {
	Region string `msgpack:"region,omitempty" json:"region,omitempty"`
	// Year and Month default to the current ones.
	Year  int `msgpack:"year,omitempty" json:"year,omitempty"`
	Month int `msgpack:"month,omitempty" json:"month,omitempty"`
}

type DayResult struct {
	Day      int      `msgpack:"day" json:"day"`
	Today    bool     `msgpack:"today,omitempty" json:"today,omitempty"`
	Holidays []string `msgpack:"holidays,omitempty" json:"holidays,omitempty"`
}

type MonthResponse struct {
	Region string `msgpack:"region" json:"region"`
	Year   int    `msgpack:"year" json:"year"`
	Month  int    `msgpack:"month" json:"month"`
	// Weeks start on Sunday; padding days are 0.
	Weeks [][]DayResult `msgpack:"weeks" json:"weeks"`
}

// GetMonth returns the month grid with holidays and today marked.
func (s *HolidayService) GetMonth(_ *http.Request, req *MonthRequest, resp *MonthResponse) error {
	today := s.today()
	region := s.region(req.Region)
	year, month := req.Year, req.Month
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = int(today.Month)
	}
	if month < 1 || month > 12 {
		return errInvalidMonth
	}

	holidays, err := s.build(region, year)
	if err != nil {
		return err
	}
	grid := calendar.NewMonthGrid(year, time.Month(month), holidays, today)

	resp.Region = string(region)
	resp.Year = year
	resp.Month = month
	resp.Weeks = make([][]DayResult, 0, len(grid.Weeks))
	for _, week := range grid.Weeks {
		days := make([]DayResult, 0, len(week))
		for _, cell := range week {
			days = append(days, DayResult{Day: cell.Day, Today: cell.Today, Holidays: cell.Holidays})
		}
		resp.Weeks = append(resp.Weeks, days)
	}
	return nil
}

type BusinessDayRequest struct {
	Region string `msgpack:"region,omitempty" json:"region,omitempty"`
	// Date is YYYY-MM-DD and defaults to today.
	Date string `msgpack:"date,omitempty" json:"date,omitempty"`
}

type BusinessDayResponse struct {
	Region          string `msgpack:"region" json:"region"`
	Date            string `msgpack:"date" json:"date"`
	BusinessDay     bool   `msgpack:"business_day" json:"business_day"`
	Holiday         string `msgpack:"holiday,omitempty" json:"holiday,omitempty"`
	NextBusinessDay string `msgpack:"next_business_day" json:"next_business_day"`
}

// IsBusinessDay tells whether a date is a workday in a region.
func (s *HolidayService) IsBusinessDay(_ *http.Request, req *BusinessDayRequest, resp *BusinessDayResponse) error {
	date := s.today()
	if req.Date != "" {
		var err error
		if date, err = calendar.ParseDate(req.Date); err != nil {
			return err
		}
	}
	region := s.region(req.Region)
	bc, err := s.registry.NewRegionBusinessCalendar(region)
	if err != nil {
		metrics.UnknownRegionRequestsTotal.Inc()
		return err
	}
	next, err := bc.NextBusinessDay(date)
	if err != nil {
		return err
	}

	resp.Region = string(region)
	resp.Date = date.String()
	resp.BusinessDay = bc.IsBusinessDay(date)
	resp.Holiday, _ = bc.HolidayName(date)
	resp.NextBusinessDay = next.String()
	return nil
}

func (s *HolidayService) build(region calendar.Region, year int) ([]calendar.Holiday, error) {
	if year < minYear || year > maxYear {
		return nil, errInvalidYear
	}
	holidays, err := s.registry.Build(region, year)
	if errors.Is(err, calendar.ErrUnknownRegion) {
		metrics.UnknownRegionRequestsTotal.Inc()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	metrics.HolidaySetsBuilt.WithLabelValues(string(region)).Inc()
	return holidays, nil
}

func (s *HolidayService) region(code string) calendar.Region {
	if code == "" {
		return s.defaultRegion
	}
	return calendar.ParseRegion(code)
}

func (s *HolidayService) today() calendar.Date {
	return calendar.DateOf(s.clock.Now().In(s.location))
}
