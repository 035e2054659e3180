package session

import (
	"fmt"
	"strings"
)

// functionHelp prints helpful information about specific commands.
func (c *Client) functionHelp(line string) {
	args := strings.Fields(line)
	args = args[1:] // chop off the first word which should be "help"
	var helpKey string
	if len(args) == 0 {
		helpKey = "help"
	} else {
		helpKey = strings.TrimPrefix(args[0], `\`)
	}
	switch helpKey {
	case "holidays":
		fmt.Fprintln(c.out, `
		The holidays command lists the holidays of a region for one year, in date order.

		Syntax:

			>> \holidays [-r <region>] [-y <year>] [-c public|observance] [-m <glob>] [--export=<file>]

		- Example:

			>> \holidays -r IN -y 2025

		Holidays earlier than today are flagged "(past)". Run \holidays --help for all options.`)
	case "month":
		fmt.Fprintln(c.out, `
		The month command prints a calendar grid. Holidays carry a '*' and today is bracketed.

		Syntax:

			>> \month [-r <region>] [-y <year>] [-m <1-12>]`)
	case "regions":
		fmt.Fprintln(c.out, `
		The regions command lists the region codes. The default region is starred.`)
	case "workday":
		fmt.Fprintln(c.out, `
		The workday command tells whether a date is a business day (Monday to Friday and
		not a public holiday) and prints the next business day.

		Syntax:

			>> \workday [-r <region>] [-d <YYYY-MM-DD>]`)
	case "help":
		fmt.Fprintln(c.out, `
		Usage: \help command_name

		Available commands: holidays, month, regions, workday
		Quit with \q`)
	default:
		fmt.Fprintf(c.out, "No help for %q\n", helpKey)
	}
}
