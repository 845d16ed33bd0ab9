package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend health",
	Long:  `Query the backend health endpoint and print the report.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	status, err := client.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("backend at %s is unreachable: %w", cfg.Server.BaseURL, err)
	}

	fmt.Printf("Status:  %s\n", status.Status)
	fmt.Printf("Version: %s\n", status.Version)
	fmt.Printf("Tasks:   %d\n", status.Tasks)
	fmt.Printf("Results: %d\n", status.Results)
	if status.UptimeSeconds > 0 {
		uptime := time.Duration(status.UptimeSeconds) * time.Second
		fmt.Printf("Uptime:  %s\n", uptime.Truncate(time.Second))
	}
	if status.Debug {
		fmt.Println("Debug:   enabled")
	}

	return nil
}
