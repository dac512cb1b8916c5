package scoring

import (
	"strings"
)

// Role is the next slot the scorer has to fill before play can continue.
type Role string

const (
	NeedBowler     Role = "bowler"
	NeedStriker    Role = "striker"
	NeedNonStriker Role = "non_striker"
	Ready          Role = "ready"
)

// nextRole walks bowler → striker → non-striker. A wicket clears the striker
// and the bowler but keeps the non-striker, so after re-filling those two the
// machine goes straight to Ready.
func (m *MatchState) nextRole() Role {
	switch {
	case m.Bowler == nil:
		return NeedBowler
	case m.Striker == nil:
		return NeedStriker
	case m.NonStriker == nil:
		return NeedNonStriker
	}
	return Ready
}

// NextRole reports which slot must be assigned next.
func (m *MatchState) NextRole() Role { return m.nextRole() }

// Assignment names the players to put in each slot. An empty field leaves the
// slot as it is.
type Assignment struct {
	Bowler     string
	Striker    string
	NonStriker string
}

func (a Assignment) empty() bool {
	return a.Bowler == "" && a.Striker == "" && a.NonStriker == ""
}

// AssignBowler puts name (from the fielding side) in the bowler slot.
func AssignBowler(m *MatchState, name string) error {
	return Assign(m, Assignment{Bowler: name})
}

// AssignStriker puts name (from the batting side) on strike.
func AssignStriker(m *MatchState, name string) error {
	return Assign(m, Assignment{Striker: name})
}

// AssignNonStriker puts name (from the batting side) at the non-striker's end.
func AssignNonStriker(m *MatchState, name string) error {
	return Assign(m, Assignment{NonStriker: name})
}

// Assign validates every supplied slot against the bowler → striker →
// non-striker ordering, then applies them together. Nothing changes when any
// check fails.
//
// A bowler may be replaced at any time. Bowling figures are created on a
// player's first spell and resumed afterwards; batting figures likewise.
func Assign(m *MatchState, a Assignment) error {
	if a.empty() {
		return ErrEmptyRequest
	}
	if m.Status == StatusCompleted {
		return ErrInningsCompleted
	}

	bowler, striker, nonStriker := m.Bowler, m.Striker, m.NonStriker

	if a.Bowler != "" {
		id, err := m.findPlayer(m.BattingSide.Other(), a.Bowler, "bowler")
		if err != nil {
			return err
		}
		bowler = pid(id)
	}

	if a.Striker != "" {
		if bowler == nil {
			return ErrOutOfOrder.with("striker", string(NeedBowler), "bowler must be set before setting striker")
		}
		id, err := m.findBatter(a.Striker, "striker")
		if err != nil {
			return err
		}
		striker = pid(id)
	}

	if a.NonStriker != "" {
		if bowler == nil || striker == nil {
			return ErrOutOfOrder.with("non_striker", string(m.orderGap(bowler, striker)), "bowler and striker must be set before setting non-striker")
		}
		id, err := m.findBatter(a.NonStriker, "non_striker")
		if err != nil {
			return err
		}
		nonStriker = pid(id)
	}

	if striker != nil && nonStriker != nil && *striker == *nonStriker {
		field := "non_striker"
		if a.NonStriker == "" {
			field = "striker"
		}
		return &Error{
			Kind:    KindValidation,
			Code:    CodeInvalidPlayer,
			Field:   field,
			Message: "'" + m.Players[*striker].Name + "' cannot be both striker and non-striker",
		}
	}

	m.Bowler, m.Striker, m.NonStriker = bowler, striker, nonStriker
	if p := m.Player(*bowler); p != nil && p.Bowling == nil {
		p.Bowling = &BowlingFigures{}
	}
	for _, id := range []*PlayerID{striker, nonStriker} {
		if id == nil {
			continue
		}
		if p := m.Player(*id); p != nil && p.Batting == nil {
			p.Batting = &BattingFigures{}
		}
	}
	m.refresh()
	return nil
}

func (m *MatchState) orderGap(bowler, striker *PlayerID) Role {
	if bowler == nil {
		return NeedBowler
	}
	if striker == nil {
		return NeedStriker
	}
	return Ready
}

// findPlayer resolves a name on side's roster, case-insensitively.
func (m *MatchState) findPlayer(side Side, name, field string) (PlayerID, error) {
	want := strings.TrimSpace(name)
	if want == "" {
		return 0, Validation(CodeInvalidPlayer, field, "%s name cannot be empty", strings.ReplaceAll(field, "_", "-"))
	}
	team := m.Team(side)
	names := make([]string, 0, len(team.Roster))
	for _, id := range team.Roster {
		p := m.Player(id)
		if p == nil {
			continue
		}
		if strings.EqualFold(p.Name, want) {
			return id, nil
		}
		names = append(names, p.Name)
	}
	return 0, ErrInvalidPlayer.with(field, strings.Join(names, ", "), "%s '%s' not found in %s", strings.ReplaceAll(field, "_", "-"), want, team.Name)
}

func (m *MatchState) findBatter(name, field string) (PlayerID, error) {
	id, err := m.findPlayer(m.BattingSide, name, field)
	if err != nil {
		return 0, err
	}
	if b := m.Players[id].Batting; b != nil && b.Out {
		return 0, Validation(CodeInvalidPlayer, field, "'%s' is already out", m.Players[id].Name)
	}
	return id, nil
}
