// Package scoring holds the ball-by-ball match state machine: player
// assignment, ball application and its exact inverse. It does no I/O.
package scoring

import (
	"fmt"
	"strings"
	"time"
)

// Side tags one of the two teams in a match. The values match the
// "team1"/"team2" keys used by the scoring API.
type Side string

const (
	SideA Side = "team1"
	SideB Side = "team2"
)

// ParseSide accepts the API tag of a side.
func ParseSide(raw string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(raw))) {
	case SideA:
		return SideA, nil
	case SideB:
		return SideB, nil
	}
	return "", ErrInvalidSide
}

func (s Side) index() int {
	if s == SideB {
		return 1
	}
	return 0
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideB {
		return SideA
	}
	return SideB
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// PlayerID is the stable index of a player in MatchState.Players.
type PlayerID int

// BattingFigures are a batter's running figures for the innings.
type BattingFigures struct {
	Runs  int  `json:"runs"`
	Balls int  `json:"balls"`
	Fours int  `json:"fours"`
	Sixes int  `json:"sixes"`
	Out   bool `json:"out"`
}

// BowlingFigures are a bowler's running figures for the innings. Balls counts
// legal deliveries only; Overs is derived from it.
type BowlingFigures struct {
	Balls        int     `json:"balls"`
	Overs        float64 `json:"overs"`
	OversDisplay string  `json:"overs_display"`
	Runs         int     `json:"runs"`
	Wickets      int     `json:"wickets"`
}

// PlayerFigures is one entry of the player arena. Batting and Bowling stay nil
// until the player is first assigned to that role in the innings.
type PlayerFigures struct {
	ID      PlayerID        `json:"id"`
	Name    string          `json:"name"`
	Side    Side            `json:"side"`
	Batting *BattingFigures `json:"batting,omitempty"`
	Bowling *BowlingFigures `json:"bowling,omitempty"`
}

// Team is a side's identity plus its ordered roster of arena ids.
type Team struct {
	Name   string     `json:"name"`
	Roster []PlayerID `json:"roster"`
}

// InningsScore counts legal and illegal deliveries separately. Overs is the
// fractional value shown on the scoreboard: 1/6 per legal ball plus 0.1/6 per
// wide or no-ball.
type InningsScore struct {
	Runs         int     `json:"runs"`
	Wickets      int     `json:"wickets"`
	LegalBalls   int     `json:"legal_balls"`
	IllegalBalls int     `json:"illegal_balls"`
	Overs        float64 `json:"overs"`
	OversDisplay string  `json:"overs_display"`
}

type Partnership struct {
	Runs  int `json:"runs"`
	Balls int `json:"balls"`
}

// sub never lets the partnership go negative; a wicket undo leaves it at zero.
func (p *Partnership) sub(runs, balls int) {
	p.Runs = max(p.Runs-runs, 0)
	p.Balls = max(p.Balls-balls, 0)
}

// BallRecord is an immutable fact once appended to the history. It holds
// enough to invert the ball without replaying the innings.
type BallRecord struct {
	Over           int           `json:"over"`
	Ball           int           `json:"ball"`
	OverString     string        `json:"over_string"`
	Kind           EventKind     `json:"event"`
	Runs           int           `json:"runs"`
	Side           Side          `json:"team"`
	Batter         PlayerID      `json:"batter_id"`
	BatterName     string        `json:"batsman"`
	NonStriker     PlayerID      `json:"non_striker_id"`
	NonStrikerName string        `json:"non_striker"`
	Bowler         PlayerID      `json:"bowler_id"`
	BowlerName     string        `json:"bowler"`
	WicketType     DismissalType `json:"wicket_type,omitempty"`
	RunsOnWicket   int           `json:"runs_on_wicket"`
	ExtraRuns      int           `json:"additional_runs"`
	TotalRuns      int           `json:"total_runs"`
}

// MatchState is the authoritative snapshot of one match.
type MatchState struct {
	ID          uint            `json:"id"`
	Teams       [2]Team         `json:"teams"`
	Players     []PlayerFigures `json:"players"`
	OverLimit   int             `json:"overs"`
	TossWinner  Side            `json:"toss"`
	BattingSide Side            `json:"current_batting_team"`
	Score       [2]InningsScore `json:"score"`
	Partnership Partnership     `json:"current_partnership"`
	Striker     *PlayerID       `json:"striker"`
	NonStriker  *PlayerID       `json:"non_striker"`
	Bowler      *PlayerID       `json:"bowler"`
	History     []BallRecord    `json:"ball_by_ball"`
	Status      Status          `json:"status"`
	Date        time.Time       `json:"date"`

	// Derived on every mutation.
	NextBall string `json:"next_ball"`
	Awaiting Role   `json:"next_role"`
}

// Team returns the team playing as side.
func (m *MatchState) Team(side Side) *Team { return &m.Teams[side.index()] }

// Innings returns the score of side.
func (m *MatchState) Innings(side Side) *InningsScore { return &m.Score[side.index()] }

// Player returns the arena entry for id, or nil when id is out of range.
func (m *MatchState) Player(id PlayerID) *PlayerFigures {
	if id < 0 || int(id) >= len(m.Players) {
		return nil
	}
	return &m.Players[id]
}

// PlayerName resolves an optional slot to a name, "" when empty.
func (m *MatchState) PlayerName(id *PlayerID) string {
	if id == nil {
		return ""
	}
	if p := m.Player(*id); p != nil {
		return p.Name
	}
	return ""
}

// SubscriptionKey lets the realtime hub route snapshots to viewers of one match.
func (m *MatchState) SubscriptionKey() string { return fmt.Sprint(m.ID) }

// Clone returns a deep copy that shares no slices or pointers with m.
func (m *MatchState) Clone() *MatchState {
	cp := *m
	for i := range cp.Teams {
		cp.Teams[i].Roster = append([]PlayerID(nil), m.Teams[i].Roster...)
	}
	cp.Players = make([]PlayerFigures, len(m.Players))
	for i, p := range m.Players {
		if p.Batting != nil {
			b := *p.Batting
			p.Batting = &b
		}
		if p.Bowling != nil {
			b := *p.Bowling
			p.Bowling = &b
		}
		cp.Players[i] = p
	}
	cp.Striker = clonePID(m.Striker)
	cp.NonStriker = clonePID(m.NonStriker)
	cp.Bowler = clonePID(m.Bowler)
	cp.History = append([]BallRecord(nil), m.History...)
	return &cp
}

func clonePID(id *PlayerID) *PlayerID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func pid(id PlayerID) *PlayerID { return &id }

// deliveryPosition is the 1-indexed (over, ball) of the next record, counting
// every appended record including wides and no-balls.
func deliveryPosition(historyLen int) (over, ball int) {
	return historyLen/6 + 1, historyLen%6 + 1
}

func oversDisplay(legalBalls int) string {
	return fmt.Sprintf("%d.%d", legalBalls/6, legalBalls%6)
}

// refresh recomputes every derived field after a mutation.
func (m *MatchState) refresh() {
	for i := range m.Score {
		s := &m.Score[i]
		s.Overs = float64(s.LegalBalls)/6 + float64(s.IllegalBalls)*0.1/6
		s.OversDisplay = oversDisplay(s.LegalBalls)
	}
	for i := range m.Players {
		if b := m.Players[i].Bowling; b != nil {
			b.Overs = float64(b.Balls) / 6
			b.OversDisplay = oversDisplay(b.Balls)
		}
	}
	over, ball := deliveryPosition(len(m.History))
	m.NextBall = fmt.Sprintf("%d.%d", over, ball)
	m.Awaiting = m.nextRole()
}

// inningsComplete reports whether the batting side has used its overs or has
// no partner left.
func (m *MatchState) inningsComplete() bool {
	s := m.Innings(m.BattingSide)
	if m.OverLimit > 0 && s.LegalBalls >= m.OverLimit*6 {
		return true
	}
	roster := len(m.Team(m.BattingSide).Roster)
	return roster > 1 && s.Wickets >= roster-1
}
