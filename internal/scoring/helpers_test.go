package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var matchDate = time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

// newTestMatch schedules TeamA (batting) vs TeamB over the given overs.
func newTestMatch(t *testing.T, overs int) *MatchState {
	t.Helper()
	m, err := NewMatch(
		TeamSheet{Name: "TeamA", Players: []string{"Alice", "Amy", "Ann", "Abe"}},
		TeamSheet{Name: "TeamB", Players: []string{"Bob", "Ben", "Bill"}},
		overs, "TeamA", matchDate,
	)
	require.NoError(t, err)
	return m
}

// readyMatch is newTestMatch with Bob bowling to Alice, Amy at the other end.
func readyMatch(t *testing.T, overs int) *MatchState {
	t.Helper()
	m := newTestMatch(t, overs)
	require.NoError(t, Assign(m, Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"}))
	return m
}

func figures(t *testing.T, m *MatchState, name string) *PlayerFigures {
	t.Helper()
	for i := range m.Players {
		if m.Players[i].Name == name {
			return &m.Players[i]
		}
	}
	t.Fatalf("player %q not in match", name)
	return nil
}

func apply(t *testing.T, m *MatchState, ev BallEvent) Outcome {
	t.Helper()
	out, err := ApplyBall(m, ev)
	require.NoError(t, err)
	return out
}

// refill assigns whatever slots the last ball emptied, rotating through the
// fielding side for bowlers and the batting order for new batters.
func refill(t *testing.T, m *MatchState) {
	t.Helper()
	for m.NextRole() != Ready {
		switch m.NextRole() {
		case NeedBowler:
			last := ""
			if n := len(m.History); n > 0 {
				last = m.History[n-1].BowlerName
			}
			for _, id := range m.Team(m.BattingSide.Other()).Roster {
				if name := m.Players[id].Name; name != last {
					require.NoError(t, AssignBowler(m, name))
					break
				}
			}
		case NeedStriker, NeedNonStriker:
			assigned := false
			for _, id := range m.Team(m.BattingSide).Roster {
				p := m.Players[id]
				if (p.Batting != nil && p.Batting.Out) || slotIs(m.Striker, id) || slotIs(m.NonStriker, id) {
					continue
				}
				if m.NextRole() == NeedStriker {
					require.NoError(t, AssignStriker(m, p.Name))
				} else {
					require.NoError(t, AssignNonStriker(m, p.Name))
				}
				assigned = true
				break
			}
			require.True(t, assigned, "no batter left to assign")
		}
	}
}

func slotIs(slot *PlayerID, id PlayerID) bool { return slot != nil && *slot == id }
