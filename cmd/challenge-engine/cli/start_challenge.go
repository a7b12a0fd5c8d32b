package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
	"github.com/HamMeyva/challenge-engine/internal/services"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

// StartChallengeCmd starts a challenge on a stream. The end of round 1 is
// stored as a pending task that a running start-server picks up.
// Usage: ./challenge-engine start-challenge --stream s1 --team1 alice --team2 bob --rounds 3 --round-duration 60s
func StartChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-challenge",
		Short: "Start a challenge between two teams on a stream",
		Args:  cobra.ExactArgs(0),
		RunE:  startChallenge,
	}

	cmd.Flags().String("stream", "", "Stream the challenge runs on")
	cmd.Flags().String("type", string(types.ChallengeType1v1), "Challenge type (1v1 or 2v2)")
	cmd.Flags().Uint32("rounds", 1, "Number of rounds")
	cmd.Flags().Duration("round-duration", time.Minute, "Duration of every round")
	cmd.Flags().Uint64("max-coins-per-win", 0, "Coins per displayed win, 0 disables wins")
	cmd.Flags().StringSlice("team1", nil, "Broadcasters of team 1, the first one represents the team")
	cmd.Flags().StringSlice("team2", nil, "Broadcasters of team 2, the first one represents the team")

	return cmd
}

func startChallenge(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	flags := cmd.Flags()

	streamID, err := flags.GetString("stream")
	if err != nil {
		return err
	}
	challengeType, err := flags.GetString("type")
	if err != nil {
		return err
	}
	rounds, err := flags.GetUint32("rounds")
	if err != nil {
		return err
	}
	roundDuration, err := flags.GetDuration("round-duration")
	if err != nil {
		return err
	}
	maxCoinsPerWin, err := flags.GetUint64("max-coins-per-win")
	if err != nil {
		return err
	}
	team1, err := flags.GetStringSlice("team1")
	if err != nil {
		return err
	}
	team2, err := flags.GetStringSlice("team2")
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	challenge, err := a.service.StartChallenge(ctx, &services.StartChallengeRequest{
		StreamID:       streamID,
		Type:           types.ChallengeType(strings.ToLower(challengeType)),
		RoundCount:     rounds,
		RoundDuration:  roundDuration,
		MaxCoinsPerWin: maxCoinsPerWin,
		Teams: []services.TeamRequest{
			{TeamNo: types.Team1, MemberIDs: team1},
			{TeamNo: types.Team2, MemberIDs: team2},
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Challenge %s started, round 1 ends at %s\n",
		challenge.ID, challenge.StartedAt.Add(challenge.RoundDurationTime()).Format(time.RFC3339))
	return nil
}
