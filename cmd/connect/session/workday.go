package session

import (
	"fmt"

	"github.com/alpacahq/holidaystore/frontend"
)

const workdayExamples = `Examples:

	Is today a business day in the default region:
		>>\workday
	Memorial Day 2024:
		>>\workday -r US -d 2024-05-27`

// workday checks a date against the business calendar of a region.
func (c *Client) workday(line string) {
	opts := WorkdayOpts{}
	help, err := parseOpts(&opts, `>> \workday [Options]`, workdayExamples, splitArgs(line))
	if err != nil {
		fmt.Fprintf(c.out, "%v, see \"\\workday --help\"\n", err)
		return
	}
	if help != "" {
		fmt.Fprintln(c.out, help)
		return
	}

	var resp frontend.BusinessDayResponse
	req := &frontend.BusinessDayRequest{Region: opts.Region, Date: opts.Date}
	if err := c.apiClient.IsBusinessDay(req, &resp); err != nil {
		fmt.Fprintf(c.out, "Failed with error: %v\n", err)
		return
	}

	switch {
	case resp.BusinessDay:
		fmt.Fprintf(c.out, "%s is a business day in %s\n", resp.Date, resp.Region)
	case resp.Holiday != "":
		fmt.Fprintf(c.out, "%s is not a business day in %s (%s)\n", resp.Date, resp.Region, resp.Holiday)
	default:
		fmt.Fprintf(c.out, "%s is not a business day in %s (weekend)\n", resp.Date, resp.Region)
	}
	fmt.Fprintf(c.out, "next business day: %s\n", resp.NextBusinessDay)
}
