package scoring

import (
	"strings"
	"time"
)

// TeamSheet is a team name plus the player names it fields.
type TeamSheet struct {
	Name    string
	Players []string
}

// NewMatch builds the zeroed state for team1 vs team2. The toss winner bats
// first and the match starts in progress.
func NewMatch(team1, team2 TeamSheet, overs int, tossWinner string, now time.Time) (*MatchState, error) {
	if overs <= 0 {
		return nil, Validation(CodeInvalidOvers, "overs", "overs must be a positive number")
	}
	if strings.EqualFold(strings.TrimSpace(team1.Name), strings.TrimSpace(team2.Name)) {
		return nil, Validation(CodeInvalidRoster, "team2", "a team cannot play itself")
	}
	for i, sheet := range []TeamSheet{team1, team2} {
		if len(sheet.Players) < 2 {
			field := "team1"
			if i == 1 {
				field = "team2"
			}
			return nil, Validation(CodeInvalidRoster, field, "team '%s' needs at least two players", sheet.Name)
		}
	}

	m := &MatchState{
		OverLimit: overs,
		Status:    StatusInProgress,
		Date:      now,
	}
	for i, sheet := range []TeamSheet{team1, team2} {
		side := SideA
		if i == 1 {
			side = SideB
		}
		team := Team{Name: sheet.Name}
		for _, name := range sheet.Players {
			id := PlayerID(len(m.Players))
			m.Players = append(m.Players, PlayerFigures{ID: id, Name: name, Side: side})
			team.Roster = append(team.Roster, id)
		}
		m.Teams[i] = team
	}

	side, err := m.sideNamed(tossWinner)
	if err != nil {
		return nil, err
	}
	m.TossWinner = side
	m.BattingSide = side
	m.refresh()
	return m, nil
}

// DecideToss records who won the toss and which side bats. It is rejected
// once any ball is in the history or the innings has completed.
func DecideToss(m *MatchState, tossWinner, battingSide string) error {
	winner, err := m.sideNamed(tossWinner)
	if err != nil {
		return err
	}
	batting, err := ParseSide(battingSide)
	if err != nil {
		return err
	}
	if m.Status == StatusCompleted {
		return ErrInningsCompleted
	}
	if len(m.History) > 0 {
		return ErrTossLocked
	}
	m.TossWinner = winner
	m.BattingSide = batting
	m.Status = StatusInProgress
	m.refresh()
	return nil
}

// Reset zeroes scores, figures, history, partnership and every slot. The
// toss result and batting side are kept.
func Reset(m *MatchState) {
	m.Score = [2]InningsScore{}
	m.Partnership = Partnership{}
	for i := range m.Players {
		m.Players[i].Batting = nil
		m.Players[i].Bowling = nil
	}
	m.History = nil
	m.Striker, m.NonStriker, m.Bowler = nil, nil, nil
	m.Status = StatusScheduled
	m.refresh()
}

func (m *MatchState) sideNamed(name string) (Side, error) {
	want := strings.TrimSpace(name)
	if want != "" {
		for _, side := range []Side{SideA, SideB} {
			if strings.EqualFold(m.Team(side).Name, want) {
				return side, nil
			}
		}
	}
	return "", ErrInvalidToss.with("", m.Teams[0].Name+" or "+m.Teams[1].Name, "invalid toss winner '%s', must be one of the teams", want)
}
