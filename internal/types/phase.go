package types

import "fmt"

type PhaseKind string

const (
	PhaseRoundActive PhaseKind = "round_active"
	PhaseFinalizing  PhaseKind = "finalizing"
	PhaseFinished    PhaseKind = "finished"
	PhaseCancelled   PhaseKind = "cancelled"
)

// ChallengePhase is the lifecycle state of a challenge. Round is only set
// for PhaseRoundActive.
type ChallengePhase struct {
	Kind  PhaseKind
	Round uint32
}

func (p ChallengePhase) String() string {
	if p.Kind == PhaseRoundActive {
		return fmt.Sprintf("%s(%d)", p.Kind, p.Round)
	}
	return string(p.Kind)
}

// PhaseOf derives the phase from persisted challenge fields. Finalizing is
// never persisted; it only exists while an advance firing drains rounds.
func PhaseOf(status ChallengeStatus, currentRound uint32) ChallengePhase {
	switch status {
	case ChallengeStatusFinished:
		return ChallengePhase{Kind: PhaseFinished}
	case ChallengeStatusCancelled:
		return ChallengePhase{Kind: PhaseCancelled}
	}
	return ChallengePhase{Kind: PhaseRoundActive, Round: currentRound}
}

type TransitionKind string

const (
	TransitionNoop          TransitionKind = "noop"
	TransitionOpenNextRound TransitionKind = "open_next_round"
	TransitionFinalize      TransitionKind = "finalize"
)

type Transition struct {
	Kind      TransitionKind
	NextRound uint32
	// Reason explains a noop, it is empty otherwise.
	Reason string
}

// NextTransition decides what an advance firing for firedRound does. It is a
// pure function of the firing and the persisted challenge so that redelivered
// or retried firings reach the same decision.
//
// A firing for current_round-1 is still allowed to open the next round: that
// is a retry of a firing that crashed after bumping current_round, and every
// step of opening a round is idempotent.
func NextTransition(status ChallengeStatus, roundCount, currentRound, firedRound uint32) Transition {
	if status != ChallengeStatusActive {
		return Transition{Kind: TransitionNoop, Reason: fmt.Sprintf("challenge is %s", status)}
	}
	if firedRound == 0 {
		return Transition{Kind: TransitionNoop, Reason: "round numbers start at 1"}
	}
	if firedRound > currentRound {
		return Transition{
			Kind:   TransitionNoop,
			Reason: fmt.Sprintf("firing for round %d is ahead of current round %d", firedRound, currentRound),
		}
	}
	if firedRound+1 < currentRound {
		return Transition{
			Kind:   TransitionNoop,
			Reason: fmt.Sprintf("stale firing for round %d, current round is %d", firedRound, currentRound),
		}
	}
	if roundCount > firedRound {
		return Transition{Kind: TransitionOpenNextRound, NextRound: firedRound + 1}
	}
	return Transition{Kind: TransitionFinalize}
}
