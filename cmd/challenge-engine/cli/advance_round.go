package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

// AdvanceRoundCmd runs the end of a round by hand, the same way the
// scheduled task would. Running it for a round that already ended is a no-op.
// Usage: ./challenge-engine advance-round <challengeID> <round> --config config.yml
func AdvanceRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance-round [challengeID] [round]",
		Short: "End a challenge round now",
		Args:  cobra.ExactArgs(2),
		RunE:  advanceRound,
	}

	return cmd
}

func advanceRound(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	round, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid round number %q: %w", args[1], err)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.service.AdvanceRound(ctx, args[0], uint32(round))
}
