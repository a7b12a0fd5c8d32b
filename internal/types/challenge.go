package types

import "fmt"

type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusCancelled ChallengeStatus = "cancelled"
	ChallengeStatusFinished  ChallengeStatus = "finished"
)

func (s ChallengeStatus) String() string {
	return string(s)
}

func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeStatusCancelled || s == ChallengeStatusFinished
}

// QualifiedStatesForFinish returns the states a challenge may be finished from.
func QualifiedStatesForFinish() []ChallengeStatus {
	return []ChallengeStatus{ChallengeStatusActive}
}

// QualifiedStatesForCancel returns the states a challenge may be cancelled from.
func QualifiedStatesForCancel() []ChallengeStatus {
	return []ChallengeStatus{ChallengeStatusActive}
}

type ChallengeType string

const (
	ChallengeType1v1 ChallengeType = "1v1"
	ChallengeType2v2 ChallengeType = "2v2"
)

func (t ChallengeType) String() string {
	return string(t)
}

// TeamSize is the number of broadcasters on each side.
func (t ChallengeType) TeamSize() (int, error) {
	switch t {
	case ChallengeType1v1:
		return 1, nil
	case ChallengeType2v2:
		return 2, nil
	}
	return 0, fmt.Errorf("unknown challenge type %q", t)
}

// TeamNo identifies one side of a challenge. Only Team1 and Team2 exist.
type TeamNo uint8

const (
	Team1 TeamNo = 1
	Team2 TeamNo = 2
)

func (t TeamNo) Valid() bool {
	return t == Team1 || t == Team2
}

func AllTeams() []TeamNo {
	return []TeamNo{Team1, Team2}
}

// CoinWins converts accumulated coins into display "wins". It never affects
// round progression. A zero threshold yields zero wins.
func CoinWins(totalCoins, maxCoinsPerWin uint64) uint64 {
	if maxCoinsPerWin == 0 {
		return 0
	}
	return totalCoins / maxCoinsPerWin
}
