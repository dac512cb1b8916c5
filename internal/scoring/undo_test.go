package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoLast_EmptyHistory(t *testing.T) {
	m := readyMatch(t, 20)

	_, err := UndoLast(m)

	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, KindNothingToUndo, KindOf(err))
}

func TestUndoLast_WicketRestoresBatterAndBowler(t *testing.T) {
	m := readyMatch(t, 20)
	apply(t, m, Runs(4))
	apply(t, m, Wicket(DismissalTypeBowled, 0))

	rec, err := UndoLast(m)
	require.NoError(t, err)

	assert.Equal(t, KindWicket, rec.Kind)
	assert.Equal(t, 4, m.Innings(SideA).Runs)
	assert.Equal(t, 0, m.Innings(SideA).Wickets)
	assert.Equal(t, "Alice", m.PlayerName(m.Striker))
	assert.Equal(t, "Amy", m.PlayerName(m.NonStriker))
	assert.Equal(t, "Bob", m.PlayerName(m.Bowler))
	assert.Equal(t, Partnership{}, m.Partnership)
	assert.Equal(t, BattingFigures{Runs: 4, Balls: 1, Fours: 1}, *figures(t, m, "Alice").Batting)

	bob := figures(t, m, "Bob").Bowling
	assert.Equal(t, 0, bob.Wickets)
	assert.Equal(t, 1, bob.Balls)
	assert.Equal(t, 4, bob.Runs)
	assert.Equal(t, Ready, m.NextRole())
	assert.Equal(t, "1.2", m.NextBall)
}

func TestUndoLast_RestoresOverEndSlots(t *testing.T) {
	m := readyMatch(t, 20)
	for i := 0; i < 6; i++ {
		apply(t, m, Runs(0))
	}
	require.Nil(t, m.Bowler)

	_, err := UndoLast(m)
	require.NoError(t, err)

	assert.Equal(t, "Bob", m.PlayerName(m.Bowler))
	assert.Equal(t, "Alice", m.PlayerName(m.Striker))
	assert.Equal(t, "Amy", m.PlayerName(m.NonStriker))
	assert.Equal(t, "1.6", m.NextBall)
	assert.Equal(t, 5, figures(t, m, "Bob").Bowling.Balls)
}

// Apply then undo must leave every figure, counter and slot as it was. Only
// the partnership differs after a wicket, which resets it for good.
func TestUndoLast_InvertsEveryEvent(t *testing.T) {
	events := []BallEvent{
		Runs(0), Runs(1), Runs(2), Runs(3), Runs(4), Runs(6),
		Wide(0), Wide(3), NoBall(0), NoBall(1),
		Wicket(DismissalTypeBowled, 0),
		Wicket(DismissalTypeCaught, 2),
		Wicket(DismissalTypeRunOut, 1),
	}
	for _, ev := range events {
		t.Run(string(ev.Kind), func(t *testing.T) {
			m := readyMatch(t, 20)
			apply(t, m, Runs(2))
			apply(t, m, Runs(1))
			before := m.Clone()

			apply(t, m, ev)
			_, err := UndoLast(m)
			require.NoError(t, err)

			assert.Equal(t, before.Score, m.Score)
			assert.Equal(t, before.Players, m.Players)
			assert.Equal(t, before.Striker, m.Striker)
			assert.Equal(t, before.NonStriker, m.NonStriker)
			assert.Equal(t, before.Bowler, m.Bowler)
			assert.Equal(t, before.History, m.History)
			assert.Equal(t, before.Status, m.Status)
			assert.Equal(t, before.NextBall, m.NextBall)
			if ev.Kind == KindWicket {
				assert.Equal(t, Partnership{}, m.Partnership)
			} else {
				assert.Equal(t, before.Partnership, m.Partnership)
			}
		})
	}
}

func TestUndoLast_WalksBackWholeInnings(t *testing.T) {
	m := readyMatch(t, 20)
	for _, ev := range []BallEvent{Runs(1), Wide(0), Runs(4), Wicket(DismissalTypeLBW, 0), Runs(2), NoBall(1), Runs(6), Runs(0)} {
		refill(t, m)
		apply(t, m, ev)
	}

	for len(m.History) > 0 {
		_, err := UndoLast(m)
		require.NoError(t, err)
	}

	assert.Equal(t, [2]InningsScore{{OversDisplay: "0.0"}, {OversDisplay: "0.0"}}, m.Score)
	assert.Equal(t, "Alice", m.PlayerName(m.Striker))
	assert.Equal(t, "Amy", m.PlayerName(m.NonStriker))
	assert.Equal(t, "Bob", m.PlayerName(m.Bowler))
	assert.Equal(t, BattingFigures{}, *figures(t, m, "Alice").Batting)
	assert.Equal(t, 0, figures(t, m, "Bob").Bowling.Balls)
	assert.Equal(t, 0, figures(t, m, "Bob").Bowling.Runs)

	_, err := UndoLast(m)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestUndoLast_CompletedInningsIsFinal(t *testing.T) {
	m := readyMatch(t, 1)
	for i := 0; i < 5; i++ {
		apply(t, m, Runs(0))
	}
	refill(t, m)
	out, err := ApplyBall(m, Runs(4))
	require.NoError(t, err)
	require.True(t, out.Completed)
	before := m.Clone()

	_, err = UndoLast(m)
	assert.ErrorIs(t, err, ErrInningsCompleted)

	assert.Equal(t, before, m, "a rejected undo leaves the state untouched")
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, 4, m.Innings(SideA).Runs)
	assert.Equal(t, 6, m.Innings(SideA).LegalBalls)
	assert.Len(t, m.History, 5)
}

func TestUndoLast_ToleratesMissingFigures(t *testing.T) {
	m := readyMatch(t, 20)
	apply(t, m, Runs(4))
	m.History[0].Batter = 99
	m.History[0].Bowler = PlayerID(len(m.Players))
	figures(t, m, "Alice").Batting = nil

	assert.NotPanics(t, func() {
		_, err := UndoLast(m)
		assert.NoError(t, err)
	})
	assert.Nil(t, m.Striker)
	assert.Nil(t, m.Bowler)
	assert.Equal(t, "Amy", m.PlayerName(m.NonStriker))
	assert.Equal(t, 0, m.Innings(SideA).Runs)
}
