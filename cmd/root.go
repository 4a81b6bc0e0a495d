package cmd

import (
	"fmt"
	"os"

	"github.com/prettymuchbryce/reportdetails/internal/config"
	"github.com/prettymuchbryce/reportdetails/internal/pathutil"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "reportdetails",
	Short: "reportdetails - Decide which actions a report details view offers",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetupLogging("warn")
	},
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", pathutil.MustDefaultConfigPath(), "path to config file")
}

// loadConfig loads the config named by --config, creating the default one
// when the flag was not given, and applies its logging level.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	var path string
	var err error

	if cmd.Flags().Changed("config") {
		path = pathutil.ExpandTilde(configPath)
	} else {
		path, err = config.EnsureDefaultConfig(configPath)
		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	SetupLogging(cfg.Logging.Level)
	return cfg, path, nil
}
