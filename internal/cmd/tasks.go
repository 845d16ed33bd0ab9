package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/tui"
	"github.com/taskdeck/taskdeck/internal/util"
)

var (
	tasksPage   int
	tasksStatus string
	tasksTag    string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	Long:  `Print one page of the task listing with optional status and tag filters.`,
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().IntVarP(&tasksPage, "page", "p", 1, "page number")
	tasksCmd.Flags().StringVar(&tasksStatus, "status", "all", "status filter (all, pending, processing, completed, failed)")
	tasksCmd.Flags().StringVar(&tasksTag, "tag", "", "tag filter")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	client, _, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	if tasksPage < 1 {
		tasksPage = 1
	}

	page, err := client.ListTasks(cmd.Context(), api.ListOptions{
		Limit:  tui.PageSize,
		Offset: (tasksPage - 1) * tui.PageSize,
		Status: tasksStatus,
		Tag:    tasksTag,
	})
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(page.Tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range page.Tasks {
		fmt.Printf("%-12s %-11s P%d  %s  %s\n",
			task.ID,
			task.DisplayStatus(),
			task.Priority,
			util.FormatTimestamp(task.CreatedAt),
			util.Truncate(task.Description, 50),
		)
	}
	fmt.Printf("\nPage %d of %d (%d tasks)\n",
		tasksPage, tui.TotalPages(page.Total, tui.PageSize), page.Total)

	return nil
}
