package session

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/alpacahq/holidaystore/frontend"
)

const holidaysExamples = `Examples:

	Holidays of the default region this year:
		>>\holidays
	Public holidays of India in 2025:
		>>\holidays -r IN -y 2025 -c public
	Names ending in "Day", exported to a file:
		>>\holidays -r US -m "*Day" --export=/tmp/us.csv`

// holidays lists the holidays of a region and year.
func (c *Client) holidays(line string) {
	opts := HolidaysOpts{}
	help, err := parseOpts(&opts, `>> \holidays [Options]`, holidaysExamples, splitArgs(line))
	if err != nil {
		fmt.Fprintf(c.out, "%v, see \"\\holidays --help\"\n", err)
		return
	}
	if help != "" {
		fmt.Fprintln(c.out, help)
		return
	}

	req := &frontend.ListHolidaysRequest{
		Region:   opts.Region,
		Year:     opts.Year,
		Category: opts.Category,
		Match:    opts.Match,
	}
	var resp frontend.ListHolidaysResponse
	if err := c.apiClient.ListHolidays(req, &resp); err != nil {
		fmt.Fprintf(c.out, "Failed with error: %v\n", err)
		return
	}

	if opts.ExportToFile != "" {
		if err := exportCSV(opts.ExportToFile, resp.Holidays); err != nil {
			fmt.Fprintf(c.out, "Failed to export: %v\n", err)
			return
		}
		fmt.Fprintf(c.out, "Exported %d holidays to %s\n", len(resp.Holidays), opts.ExportToFile)
		return
	}
	PrintHolidays(c.out, &resp)
}

func exportCSV(path string, holidays []frontend.HolidayResult) (err error) {
	const perm644 = 0o644
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteHolidaysCSV(file, holidays)
}

// WriteHolidaysCSV writes holidays as CSV with a header row.
func WriteHolidaysCSV(w io.Writer, holidays []frontend.HolidayResult) error {
	if holidays == nil {
		holidays = []frontend.HolidayResult{}
	}
	return gocsv.Marshal(holidays, w)
}

// PrintHolidays renders a holiday list as a table. Holidays before today
// are marked.
func PrintHolidays(w io.Writer, resp *frontend.ListHolidaysResponse) {
	fmt.Fprintf(w, "%s %d (today %s)\n", resp.Region, resp.Year, resp.Today)
	if len(resp.Holidays) == 0 {
		fmt.Fprintln(w, "No holidays")
		return
	}
	for _, h := range resp.Holidays {
		past := ""
		if h.Past {
			past = "  (past)"
		}
		fmt.Fprintf(w, "%s  %-9s  %-24s  %-10s%s\n", h.Date, h.Weekday, h.Name, h.Category, past)
	}
	fmt.Fprintf(w, "(%d holidays)\n", len(resp.Holidays))
}
