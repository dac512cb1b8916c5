package scoring

// inverses maps each event kind to the exact numeric inverse of its applier.
// Slot changes (strike rotation, wicket clearing, over rollover) are undone
// separately by restoring the slots stored in the record.
var inverses = map[EventKind]func(m *MatchState, rec BallRecord, bat *BattingFigures, bowl *BowlingFigures){
	KindRuns:   undoRuns,
	KindWide:   undoExtra,
	KindNoBall: undoExtra,
	KindWicket: undoWicket,
}

// UndoLast pops the last BallRecord and inverts it. A completed innings is
// final: its completing ball was never recorded, so there is nothing
// consistent to pop. Once a record has been popped the undo cannot fail:
// figures that are missing from the snapshot are replaced by throwaway
// placeholders.
//
// A wicket resets the partnership going forward, so undoing one leaves the
// partnership at zero instead of its value before the ball.
func UndoLast(m *MatchState) (BallRecord, error) {
	if m.Status == StatusCompleted {
		return BallRecord{}, ErrInningsCompleted
	}
	if len(m.History) == 0 {
		return BallRecord{}, ErrNothingToUndo
	}
	last := len(m.History) - 1
	rec := m.History[last]
	m.History = m.History[:last]

	if inv, ok := inverses[rec.Kind]; ok {
		inv(m, rec, m.battingOrPlaceholder(rec.Batter), m.bowlingOrPlaceholder(rec.Bowler))
	}

	m.Striker = m.validSlot(rec.Batter)
	m.NonStriker = m.validSlot(rec.NonStriker)
	m.Bowler = m.validSlot(rec.Bowler)

	m.refresh()
	return rec, nil
}

func undoRuns(m *MatchState, rec BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	n := rec.Runs
	s := m.Innings(rec.Side)
	s.Runs -= n
	s.LegalBalls--
	m.Partnership.sub(n, 1)

	bat.Runs -= n
	bat.Balls--
	switch n {
	case 4:
		bat.Fours--
	case 6:
		bat.Sixes--
	}

	bowl.Balls--
	bowl.Runs -= n
}

func undoExtra(m *MatchState, rec BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	total := 1 + rec.ExtraRuns
	s := m.Innings(rec.Side)
	s.Runs -= total
	s.IllegalBalls--

	bowl.Runs -= total
	bat.Runs -= rec.ExtraRuns
}

func undoWicket(m *MatchState, rec BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	s := m.Innings(rec.Side)
	s.Wickets--
	s.LegalBalls--
	m.Partnership = Partnership{}

	bat.Out = false
	bat.Balls--

	bowl.Balls--
	bowl.Wickets--
	bowl.Runs -= rec.RunsOnWicket

	if rec.WicketType == DismissalTypeRunOut {
		s.Runs -= rec.RunsOnWicket
		bat.Runs -= rec.RunsOnWicket
	}
}

func (m *MatchState) battingOrPlaceholder(id PlayerID) *BattingFigures {
	if p := m.Player(id); p != nil {
		if p.Batting == nil {
			p.Batting = &BattingFigures{}
		}
		return p.Batting
	}
	return &BattingFigures{}
}

func (m *MatchState) bowlingOrPlaceholder(id PlayerID) *BowlingFigures {
	if p := m.Player(id); p != nil {
		if p.Bowling == nil {
			p.Bowling = &BowlingFigures{}
		}
		return p.Bowling
	}
	return &BowlingFigures{}
}

func (m *MatchState) validSlot(id PlayerID) *PlayerID {
	if m.Player(id) == nil {
		return nil
	}
	return pid(id)
}
