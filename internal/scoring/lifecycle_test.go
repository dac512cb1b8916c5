package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	m, err := NewMatch(
		TeamSheet{Name: "TeamA", Players: []string{"Alice", "Amy"}},
		TeamSheet{Name: "TeamB", Players: []string{"Bob", "Ben"}},
		5, "teamb", matchDate,
	)
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, m.Status)
	assert.Equal(t, SideB, m.TossWinner)
	assert.Equal(t, SideB, m.BattingSide)
	assert.Equal(t, 5, m.OverLimit)
	assert.Equal(t, []PlayerID{0, 1}, m.Team(SideA).Roster)
	assert.Equal(t, []PlayerID{2, 3}, m.Team(SideB).Roster)
	assert.Equal(t, SideB, m.Players[3].Side)
	assert.Equal(t, "1.1", m.NextBall)
	assert.Equal(t, NeedBowler, m.Awaiting)

	// TeamA fields when TeamB bats
	require.NoError(t, AssignBowler(m, "Amy"))
}

func TestNewMatch_Rejects(t *testing.T) {
	two := []string{"X", "Y"}
	cases := []struct {
		name  string
		t1    TeamSheet
		t2    TeamSheet
		overs int
		toss  string
		code  Code
	}{
		{"zero overs", TeamSheet{"A", two}, TeamSheet{"B", two}, 0, "A", CodeInvalidOvers},
		{"same team", TeamSheet{"A", two}, TeamSheet{"a", two}, 20, "A", CodeInvalidRoster},
		{"short roster", TeamSheet{"A", []string{"X"}}, TeamSheet{"B", two}, 20, "A", CodeInvalidRoster},
		{"toss outsider", TeamSheet{"A", two}, TeamSheet{"B", two}, 20, "C", CodeInvalidToss},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMatch(tc.t1, tc.t2, tc.overs, tc.toss, matchDate)
			assert.ErrorIs(t, err, &Error{Code: tc.code})
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestDecideToss(t *testing.T) {
	m := newTestMatch(t, 20)

	require.NoError(t, DecideToss(m, "TeamA", "team2"))
	assert.Equal(t, SideA, m.TossWinner)
	assert.Equal(t, SideB, m.BattingSide)

	assert.ErrorIs(t, DecideToss(m, "TeamC", "team1"), ErrInvalidToss)
	assert.ErrorIs(t, DecideToss(m, "TeamA", "team3"), ErrInvalidSide)

	require.NoError(t, DecideToss(m, "TeamB", "team1"))
	require.NoError(t, Assign(m, Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"}))
	apply(t, m, Runs(1))

	err := DecideToss(m, "TeamA", "team2")
	assert.ErrorIs(t, err, ErrTossLocked)
	assert.Equal(t, SideA, m.BattingSide)
}

func TestDecideToss_RejectedAfterFirstBallEndsInnings(t *testing.T) {
	m, err := NewMatch(
		TeamSheet{Name: "TeamA", Players: []string{"Alice", "Amy"}},
		TeamSheet{Name: "TeamB", Players: []string{"Bob", "Ben"}},
		20, "TeamA", matchDate,
	)
	require.NoError(t, err)
	require.NoError(t, Assign(m, Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"}))

	out := apply(t, m, Wicket(DismissalTypeBowled, 0))
	require.True(t, out.Completed)
	require.Empty(t, m.History)

	assert.ErrorIs(t, DecideToss(m, "TeamB", "team2"), ErrInningsCompleted)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, SideA, m.BattingSide)
	assert.Equal(t, 1, m.Innings(SideA).Wickets)

	_, err = UndoLast(m)
	assert.ErrorIs(t, err, ErrInningsCompleted)
}

func TestReset(t *testing.T) {
	m := readyMatch(t, 20)
	apply(t, m, Runs(4))
	apply(t, m, Wicket(DismissalTypeBowled, 0))

	Reset(m)

	assert.Equal(t, StatusScheduled, m.Status)
	assert.Equal(t, [2]InningsScore{{OversDisplay: "0.0"}, {OversDisplay: "0.0"}}, m.Score)
	assert.Empty(t, m.History)
	assert.Equal(t, Partnership{}, m.Partnership)
	assert.Nil(t, m.Striker)
	assert.Nil(t, m.NonStriker)
	assert.Nil(t, m.Bowler)
	for _, p := range m.Players {
		assert.Nil(t, p.Batting, p.Name)
		assert.Nil(t, p.Bowling, p.Name)
	}
	assert.Equal(t, SideA, m.TossWinner)
	assert.Equal(t, SideA, m.BattingSide)
	assert.Equal(t, "1.1", m.NextBall)
	assert.Len(t, m.Players, 7)

	// players can be reassigned, including a batter who was out
	require.NoError(t, Assign(m, Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"}))
}

func TestClone_IsIndependent(t *testing.T) {
	m := readyMatch(t, 20)
	apply(t, m, Runs(4))

	cp := m.Clone()
	apply(t, cp, Runs(6))
	require.NoError(t, AssignBowler(cp, "Ben"))

	assert.Equal(t, 4, m.Innings(SideA).Runs)
	assert.Len(t, m.History, 1)
	assert.Equal(t, 4, figures(t, m, "Alice").Batting.Runs)
	assert.Equal(t, "Bob", m.PlayerName(m.Bowler))
}
