// Package session
// This file is the hub of the `session` package. The `Client` struct defined here
// holds the connection to a holiday service and interprets user inputs.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/alpacahq/holidaystore/frontend"
)

func NewClient(ac APIClient) *Client {
	return &Client{
		apiClient: ac,
		out:       os.Stdout,
	}
}

type Client struct {
	apiClient APIClient
	// out receives command output, the terminal unless redirected.
	out io.Writer
}

// SetOutput redirects command output.
func (c *Client) SetOutput(w io.Writer) {
	c.out = w
}

type APIClient interface {
	// PrintConnectInfo prints connection information to stderr.
	PrintConnectInfo()
	// ListRegions returns the regions known to the service.
	ListRegions(req *frontend.ListRegionsRequest, resp *frontend.ListRegionsResponse) error
	// ListHolidays returns the holidays of a region and year.
	ListHolidays(req *frontend.ListHolidaysRequest, resp *frontend.ListHolidaysResponse) error
	// GetMonth returns the month grid of a region.
	GetMonth(req *frontend.MonthRequest, resp *frontend.MonthResponse) error
	// IsBusinessDay checks a date against the business calendar of a region.
	IsBusinessDay(req *frontend.BusinessDayRequest, resp *frontend.BusinessDayResponse) error
}

// RPCClient is a holidaystore API client interface.
type RPCClient interface {
	DoRPC(functionName string, args interface{}) (response interface{}, err error)
}

// Read kicks off the buffer reading process.
func (c *Client) Read() error {
	// Build reader.
	r, err := newReader()
	if err != nil {
		return err
	}
	defer r.Close()

	// Print connection information.
	c.apiClient.PrintConnectInfo()
	fmt.Fprintf(os.Stderr, "Type `\\help` to see command options\n")

	for {
		line, err := r.Readline()

		// Terminate evaluation.
		if errors.Is(err, io.EOF) {
			return nil
		}

		// Printed interrupt prompt.
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			continue
		}

		if !c.Eval(line) {
			return nil
		}
	}
}

// Eval runs one input line and reports whether the session goes on.
func (c *Client) Eval(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case line == `\stop`, line == `\quit`, line == `\q`, line == "exit":
		return false
	case strings.HasPrefix(line, `\holidays`):
		c.holidays(line)
	case strings.HasPrefix(line, `\month`):
		c.month(line)
	case strings.HasPrefix(line, `\regions`):
		c.regions()
	case strings.HasPrefix(line, `\workday`):
		c.workday(line)
	case strings.HasPrefix(line, `\help`) || strings.HasPrefix(line, `\?`):
		c.functionHelp(line)
	case line == "help":
		c.functionHelp(`\help`)
	default:
		fmt.Fprintf(c.out, "Unknown command %q, see \\help\n", line)
	}
	return true
}

func newReader() (*readline.Instance, error) {
	// Determine history file path.
	usr, err := user.Current()
	if err != nil {
		return nil, errors.New("unable to obtain home directory")
	}
	history := filepath.Join(usr.HomeDir, ".holidaystoreReaderHistory")

	// Register commands with autocompletion.
	autoComplete := readline.NewPrefixCompleter(
		readline.PcItem(`\holidays`),
		readline.PcItem(`\month`),
		readline.PcItem(`\regions`),
		readline.PcItem(`\workday`),
		readline.PcItem(`\help`),
		readline.PcItem(`\quit`),
		readline.PcItem(`\q`),
		readline.PcItem(`\?`),
		readline.PcItem(`\stop`),
	)

	config := &readline.Config{
		Prompt:          "\033[31m»\033[0m ",
		HistoryFile:     history,
		AutoComplete:    autoComplete,
		InterruptPrompt: "\nInterrupt, Press Ctrl+D to exit",
		EOFPrompt:       "exit",
	}

	return readline.NewEx(config)
}

// splitArgs drops the command word of line.
func splitArgs(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}
