package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

// RetryFailedTasksCmd puts every failed task back to pending. A running
// start-server fires them on its next recovery poll.
func RetryFailedTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retry-failed-tasks",
		Short: "Requeue scheduled tasks that ran out of retries",
		Args:  cobra.ExactArgs(0),
		RunE:  retryFailedTasks,
	}

	return cmd
}

func retryFailedTasks(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	requeued, err := a.scheduler.RetryFailed(ctx)
	for _, id := range requeued {
		fmt.Printf("Task %q requeued\n", id)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%d failed tasks requeued\n", len(requeued))
	return nil
}
