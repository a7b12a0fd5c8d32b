package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

func EndChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end-challenge [challengeID]",
		Short: "Cancel an active challenge",
		Args:  cobra.ExactArgs(1),
		RunE:  endChallenge,
	}

	return cmd
}

func endChallenge(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.service.EndChallenge(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("Challenge %s cancelled\n", args[0])
	return nil
}
