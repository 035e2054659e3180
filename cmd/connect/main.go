package connect

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/config"
	"github.com/alpacahq/holidaystore/cmd/connect/session"
	"github.com/alpacahq/holidaystore/frontend/client"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	// Command
	// -------------.
	usage   = "connect"
	short   = "Open an interactive session with the holiday calendar"
	long    = "This command opens an interactive session with a holidaystore server, or with the built-in calendar when no url is given"
	example = "holidaystore connect --url <address>"

	// Flags.
	// -------------
	// Network Address.
	urlFlag    = "url"
	defaultURL = ""
	urlDesc    = "network address to a holidaystore server at \"hostname:port\" when used in remote mode"
)

var (
	// Cmd is the connect command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		SuggestFor: []string{"open", "conn", "repl"},
		Example:    example,
		RunE:       executeConnect,
	}

	// url set via flag for remote server address.
	url string
	// configFilePath optionally adds the regions of a config file in local mode.
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&url, urlFlag, "u", defaultURL, urlDesc)
	config.AddFlag(Cmd, &configFilePath)
}

// executeConnect implements the connect command.
func executeConnect(cmd *cobra.Command, _ []string) error {
	var conn session.APIClient

	if url != "" {
		// Remote mode.
		const colonSeparatedURLSliceLen = 2
		splits := strings.Split(url, ":")
		if len(splits) != colonSeparatedURLSliceLen {
			return fmt.Errorf("incorrect URL, need \"hostname:port\", have: %s", url)
		}
		baseURL := "http://" + url

		rpcClient, err := client.NewClient(baseURL)
		if err != nil {
			return err
		}
		conn = session.NewRemoteAPIClient(baseURL, rpcClient)
	} else {
		// Local mode.
		cfg, err := config.Load(configFilePath)
		if err != nil {
			return err
		}
		service, err := di.NewContainer(cfg).GetHolidayService()
		if err != nil {
			return err
		}
		conn = session.NewLocalAPIClient(service)
	}
	cmd.SilenceUsage = true

	// Enter command loop
	if err := session.NewClient(conn).Read(); err != nil {
		return err
	}

	log.Info("closed connection")
	return nil
}
