package types

// TeamCoins holds the coins collected by each side. It replaces a free-form
// team_no -> coins map so that every switch over teams is exhaustive.
type TeamCoins struct {
	Team1 uint64 `bson:"team_1" json:"team_1"`
	Team2 uint64 `bson:"team_2" json:"team_2"`
}

func (c TeamCoins) Get(team TeamNo) uint64 {
	switch team {
	case Team1:
		return c.Team1
	case Team2:
		return c.Team2
	}
	return 0
}

// Add returns a copy with amount added to team. Unknown teams are ignored.
func (c TeamCoins) Add(team TeamNo, amount uint64) TeamCoins {
	switch team {
	case Team1:
		c.Team1 += amount
	case Team2:
		c.Team2 += amount
	}
	return c
}

func (c TeamCoins) Total() uint64 {
	return c.Team1 + c.Team2
}

// Winner returns the side with the strictly greater total, or nil on a tie
// (which includes a round without any activity).
func (c TeamCoins) Winner() *TeamNo {
	var winner TeamNo
	switch {
	case c.Team1 > c.Team2:
		winner = Team1
	case c.Team2 > c.Team1:
		winner = Team2
	default:
		return nil
	}
	return &winner
}
