package start

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/metrics"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	usage                 = "start"
	short                 = "Start a holidaystore server"
	long                  = "This command starts a holidaystore server answering holiday queries over RPC"
	example               = "holidaystore start --config <path>"
	defaultConfigFilePath = "./holidaystore.yml"
	configDesc            = "set the path for the holidaystore YAML configuration file"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"boot", "up", "serve"},
		Example:    example,
		RunE:       executeStart,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

// executeStart implements the start command.
func executeStart(cmd *cobra.Command, _ []string) error {
	startTime := time.Now()

	// A missing default file means built-in settings, an explicit one must exist.
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || cmd.Flags().Changed("config") {
			return fmt.Errorf("failed to read configuration file error: %w", err)
		}
		log.Info("%v not found, using the default configuration", configFilePath)
		data = []byte("{}")
	} else {
		log.Info("using %v for configuration", configFilePath)
	}

	// Don't output command usage if args(=only the filepath to the config at the moment) are correct
	cmd.SilenceUsage = true

	config, err := utils.ParseConfig(data)
	if err != nil {
		return fmt.Errorf("failed to parse configuration file error: %w", err)
	}
	log.SetLevel(config.LogLevel)
	config.StartTime = startTime

	log.Info("initializing holidaystore...")
	c := di.NewContainer(config)
	handler, err := c.GetHTTPHandler()
	if err != nil {
		return fmt.Errorf("initialize services: %w", err)
	}
	registry, err := c.GetRegistry()
	if err != nil {
		return err
	}
	heartbeat, err := c.GetHeartbeat()
	if err != nil {
		return err
	}

	metrics.RegisteredRegions.Set(float64(len(registry.Regions())))
	startupTime := time.Since(startTime)
	metrics.StartupTime.Set(startupTime.Seconds())
	log.Info("startup time: %s", startupTime)
	log.Info("regions: %v, default region: %s, timezone: %s",
		registry.Regions(), config.DefaultRegion, config.Timezone)

	if config.ProfileAddress != "" {
		log.Info("launching pprof endpoints on %s...", config.ProfileAddress)
		go frontend.Profile(config.ProfileAddress)
	}

	srv := &http.Server{
		Addr:              ":" + config.ListenPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Spawn a goroutine and listen for a signal.
	const defaultSignalChanLen = 10
	signalChan := make(chan os.Signal, defaultSignalChanLen)
	signal.Notify(signalChan, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		for s := range signalChan {
			switch s {
			case syscall.SIGUSR1:
				log.Info("dumping stack traces due to SIGUSR1 request")
				if err2 := pprof.Lookup("goroutine").WriteTo(os.Stdout, 1); err2 != nil {
					log.Error("failed to write goroutine pprof: %v", err2)
				}
			case syscall.SIGINT, syscall.SIGTERM:
				log.Info("initiating graceful shutdown due to '%v' request", s)
				heartbeat.SetReady(false)
				log.Info("waiting up to %v for in-flight requests...", config.StopGracePeriod)
				ctx, cancel := context.WithTimeout(context.Background(), config.StopGracePeriod)
				if err2 := srv.Shutdown(ctx); err2 != nil {
					log.Error("graceful shutdown failed: %v", err2)
				}
				cancel()
				return
			}
		}
	}()

	log.Info("enabling query access...")
	heartbeat.SetReady(true)

	log.Info("launching tcp listener on %s...", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server - error: %w", err)
	}
	<-shutdownDone

	log.Info("exiting...")
	log.Sync()
	return nil
}
