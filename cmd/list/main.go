package list

import (
	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/config"
	"github.com/alpacahq/holidaystore/cmd/connect/session"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
)

const (
	usage   = "list"
	short   = "List the holidays of a region"
	long    = "This command prints the holidays of a region for one year in date order"
	example = "holidaystore list -r US -y 2025 --category public --match \"*Day\""
)

var (
	// Cmd is the list command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"ls"},
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeList,
	}

	region         string
	year           int
	category       string
	match          string
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&region, "region", "r", "", "region code, the configured default when omitted")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "year, the current one when omitted")
	Cmd.Flags().StringVar(&category, "category", "", "only list holidays of this category (public, observance)")
	Cmd.Flags().StringVar(&match, "match", "", "glob on holiday names, e.g. \"*Day\"")
	config.AddFlag(Cmd, &configFilePath)
}

func executeList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFilePath)
	if err != nil {
		return err
	}
	service, err := di.NewContainer(cfg).GetHolidayService()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	var resp frontend.ListHolidaysResponse
	req := &frontend.ListHolidaysRequest{Region: region, Year: year, Category: category, Match: match}
	if err := service.ListHolidays(nil, req, &resp); err != nil {
		return err
	}
	session.PrintHolidays(cmd.OutOrStdout(), &resp)
	return nil
}
