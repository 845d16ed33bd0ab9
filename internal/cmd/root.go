package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Operator console for a task-processing agent backend",
	Long: `Taskdeck is a terminal console for inspecting and driving a
task-processing agent backend: browse and filter the task queue, drill
into task execution detail, watch system health, and submit new tasks.

Run without arguments to open the interactive console.`,
	RunE: runConsole,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/taskdeck/config.yaml)")
	rootCmd.PersistentFlags().StringP("server", "s", "", "backend base URL (overrides config)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/taskdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKDECK_SERVER_BASE_URL for server.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// setup loads the resolved configuration and builds the backend client and
// logger shared by every command.
func setup() (*api.Client, *config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.New(cfg.Logging.LogDir(), cfg.Logging.Level)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	client, err := api.NewClient(cfg.Server.BaseURL,
		api.WithTimeout(cfg.Server.Timeout()),
		api.WithLogger(logger),
	)
	if err != nil {
		logger.Close()
		return nil, nil, nil, err
	}

	return client, cfg, logger, nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	client, cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("starting console", "server", cfg.Server.BaseURL)
	return tui.New(client, cfg, logger).Run()
}
