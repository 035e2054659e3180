package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/config"
	"github.com/alpacahq/holidaystore/cmd/connect/session"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	usage   = "export"
	short   = "Export the holidays of a region as CSV or JSON"
	long    = "This command writes the holidays of a region for one year as CSV or JSON, to stdout or a file"
	example = "holidaystore export -r IN -y 2025 --format json -o in-2025.json"

	formatCSV  = "csv"
	formatJSON = "json"
)

var (
	// Cmd is the export command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeExport,
	}

	region         string
	year           int
	format         string
	output         string
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&region, "region", "r", "", "region code, the configured default when omitted")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "year, the current one when omitted")
	Cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format, csv or json")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when omitted")
	config.AddFlag(Cmd, &configFilePath)
}

func executeExport(cmd *cobra.Command, _ []string) error {
	format = strings.ToLower(format)
	if format != formatCSV && format != formatJSON {
		return fmt.Errorf("unsupported format %q, need csv or json", format)
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

	var resp frontend.ListHolidaysResponse
	if err := service.ListHolidays(nil, &frontend.ListHolidaysRequest{Region: region, Year: year}, &resp); err != nil {
		return err
	}

	if output == "" {
		return Write(cmd.OutOrStdout(), format, &resp)
	}
	if err := WriteFile(output, format, &resp); err != nil {
		return err
	}
	log.Info("exported %d holidays of %s %d to %s", len(resp.Holidays), resp.Region, resp.Year, output)
	return nil
}

// WriteFile encodes resp into the file at path, replacing its content.
func WriteFile(path, format string, resp *frontend.ListHolidaysResponse) (err error) {
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
	return Write(file, format, resp)
}

// Write encodes resp in the given format.
func Write(w io.Writer, format string, resp *frontend.ListHolidaysResponse) error {
	switch format {
	case formatCSV:
		return session.WriteHolidaysCSV(w, resp.Holidays)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
