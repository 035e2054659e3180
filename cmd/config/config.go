// Package config loads the optional YAML configuration shared by the
// offline subcommands.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

const configDesc = "path of a holidaystore YAML configuration file with extra regions"

// AddFlag registers the --config flag on cmd.
func AddFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "config", "c", "", configDesc)
}

// Load parses the file at path, or returns the defaults when path is empty.
func Load(path string) (*utils.Config, error) {
	if path == "" {
		return utils.NewDefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file error: %w", err)
	}
	cfg, err := utils.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file error: %w", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.Debug("using %v for configuration", path)
	return cfg, nil
}
