package grid

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/config"
	"github.com/alpacahq/holidaystore/cmd/connect/session"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
)

const (
	usage   = "grid"
	short   = "Print a text calendar with holidays marked"
	long    = "This command prints the month grids of a year, or of a single month, with holidays starred and today bracketed"
	example = "holidaystore grid -r US -y 2025 -m 7"
)

var (
	// Cmd is the grid command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"cal"},
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeGrid,
	}

	region         string
	year           int
	month          int
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&region, "region", "r", "", "region code, the configured default when omitted")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "year, the current one when omitted")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "month 1-12, the whole year when omitted")
	config.AddFlag(Cmd, &configFilePath)
}

func executeGrid(cmd *cobra.Command, _ []string) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, have: %d", month)
	}
	cfg, err := config.Load(configFilePath)
	if err != nil {
		return err
	}
	service, err := di.NewContainer(cfg).GetHolidayService()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	months := []int{month}
	if month == 0 {
		months = months[:0]
		for m := time.January; m <= time.December; m++ {
			months = append(months, int(m))
		}
	}
	w := cmd.OutOrStdout()
	for i, m := range months {
		var resp frontend.MonthResponse
		if err := service.GetMonth(nil, &frontend.MonthRequest{Region: region, Year: year, Month: m}, &resp); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		session.PrintMonth(w, &resp)
	}
	return nil
}
