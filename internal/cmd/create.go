package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/api"
)

var (
	createPriority int
	createTags     []string
)

var createCmd = &cobra.Command{
	Use:   "create <description>",
	Short: "Submit a new task",
	Long:  `Submit a task to the backend queue and print its assigned ID.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().IntVarP(&createPriority, "priority", "p", 0, "task priority")
	createCmd.Flags().StringSliceVarP(&createTags, "tag", "t", nil, "task tag (repeatable)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, _, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	created, err := client.CreateTask(cmd.Context(), api.NewTask{
		Description: strings.Join(args, " "),
		Priority:    createPriority,
		Tags:        createTags,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("Task %s submitted (%s)\n", created.TaskID, created.Status)
	return nil
}
