package session

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/frontend"
)

const monthExamples = `Examples:

	This month in the default region:
		>>\month
	August 2025 in India:
		>>\month -r IN -y 2025 -m 8`

// month prints the calendar grid of a month with holidays marked.
func (c *Client) month(line string) {
	opts := MonthOpts{}
	help, err := parseOpts(&opts, `>> \month [Options]`, monthExamples, splitArgs(line))
	if err != nil {
		fmt.Fprintf(c.out, "%v, see \"\\month --help\"\n", err)
		return
	}
	if help != "" {
		fmt.Fprintln(c.out, help)
		return
	}

	req := &frontend.MonthRequest{Region: opts.Region, Year: opts.Year, Month: opts.Month}
	var resp frontend.MonthResponse
	if err := c.apiClient.GetMonth(req, &resp); err != nil {
		fmt.Fprintf(c.out, "Failed with error: %v\n", err)
		return
	}
	PrintMonth(c.out, &resp)
}

// PrintMonth renders a month grid followed by the holiday names.
func PrintMonth(w io.Writer, resp *frontend.MonthResponse) {
	grid := ToMonthGrid(resp)
	fmt.Fprintf(w, "%s\n", resp.Region)
	fmt.Fprint(w, grid.String())
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.IsHoliday() {
				fmt.Fprintf(w, "%2d  %s\n", cell.Day, strings.Join(cell.Holidays, ", "))
			}
		}
	}
}

// ToMonthGrid converts a wire month back into a calendar grid.
func ToMonthGrid(resp *frontend.MonthResponse) calendar.MonthGrid {
	grid := calendar.MonthGrid{Year: resp.Year, Month: time.Month(resp.Month)}
	for _, days := range resp.Weeks {
		var week [7]calendar.Cell
		for i, day := range days {
			if i >= len(week) {
				break
			}
			week[i] = calendar.Cell{Day: day.Day, Today: day.Today, Holidays: day.Holidays}
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
