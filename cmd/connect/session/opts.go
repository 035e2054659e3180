package session

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

// \holidays [Options]
type HolidaysOpts struct {
	Region   string `short:"r" long:"region" description:"Region code, e.g. US" value-name:"CODE"`
	Year     int    `short:"y" long:"year" description:"Year, the current one when omitted"`
	Category string `short:"c" long:"category" description:"Only holidays of this category" choice:"public" choice:"observance"`
	Match    string `short:"m" long:"match" description:"Glob on holiday names, e.g. \"*Day\""`
	// Result export to file
	ExportToFile string `long:"export" description:"Export the result to a CSV file" value-name:"FILE"`
}

// \month [Options]
type MonthOpts struct {
	Region string `short:"r" long:"region" description:"Region code, e.g. IN" value-name:"CODE"`
	Year   int    `short:"y" long:"year" description:"Year, the current one when omitted"`
	Month  int    `short:"m" long:"month" description:"Month 1-12, the current one when omitted"`
}

// \workday [Options]
type WorkdayOpts struct {
	Region string `short:"r" long:"region" description:"Region code, e.g. US" value-name:"CODE"`
	Date   string `short:"d" long:"date" description:"Date to check as YYYY-MM-DD, today when omitted"`
}

// parseOpts fills opts from args. The returned help text is non-empty when
// the user asked for --help.
func parseOpts(opts interface{}, usage, examples string, args []string) (help string, err error) {
	p := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Usage = usage
	p.LongDescription = examples

	rest, err := p.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return flagsErr.Message, nil
		}
		return "", err
	}
	if len(rest) > 0 {
		return "", &flags.Error{Type: flags.ErrUnknownCommand, Message: "unexpected arguments: " + rest[0]}
	}
	return "", nil
}
