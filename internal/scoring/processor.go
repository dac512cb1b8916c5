package scoring

import "fmt"

// Outcome describes what ApplyBall did beyond the returned state.
type Outcome struct {
	Record       BallRecord `json:"record"`
	Recorded     bool       `json:"recorded"`
	OverComplete bool       `json:"over_complete"`
	Completed    bool       `json:"completed"`
}

// ApplyBall applies ev to m in place and appends the resulting BallRecord to
// the history. The event is validated and the three slots checked before any
// field is touched.
//
// The ball that completes the innings (overs used or all out) is applied but
// not appended, so it cannot be undone.
func ApplyBall(m *MatchState, ev BallEvent) (Outcome, error) {
	if err := ev.validate(); err != nil {
		return Outcome{}, err
	}
	if m.Status == StatusCompleted {
		return Outcome{}, ErrInningsCompleted
	}
	if m.Striker == nil || m.NonStriker == nil || m.Bowler == nil {
		return Outcome{}, ErrPlayersNotSet.with("", string(m.nextRole()), "striker, non-striker and bowler must be set (next: %s)", m.nextRole())
	}
	batter, nonStriker, bowler := m.Player(*m.Striker), m.Player(*m.NonStriker), m.Player(*m.Bowler)
	if batter == nil || nonStriker == nil || bowler == nil {
		return Outcome{}, ErrPlayersNotSet.with("", string(m.nextRole()), "striker or bowler not found in current match state")
	}
	if batter.Batting == nil {
		batter.Batting = &BattingFigures{}
	}
	if bowler.Bowling == nil {
		bowler.Bowling = &BowlingFigures{}
	}

	over, ball := deliveryPosition(len(m.History))
	rec := BallRecord{
		Over:           over,
		Ball:           ball,
		OverString:     fmt.Sprintf("%d.%d", over, ball),
		Kind:           ev.Kind,
		Side:           m.BattingSide,
		Batter:         batter.ID,
		BatterName:     batter.Name,
		NonStriker:     nonStriker.ID,
		NonStrikerName: nonStriker.Name,
		Bowler:         bowler.ID,
		BowlerName:     bowler.Name,
	}

	appliers[ev.Kind](m, ev, &rec, batter.Batting, bowler.Bowling)

	out := Outcome{}
	// The over boundary counts every record, extras included.
	if ball == 6 {
		out.OverComplete = true
		m.Bowler = nil
		if m.Striker != nil && m.NonStriker != nil {
			m.swapStrike()
		}
	}

	if m.Status == StatusScheduled {
		m.Status = StatusInProgress
	}
	if m.inningsComplete() {
		m.Status = StatusCompleted
		out.Completed = true
	} else {
		m.History = append(m.History, rec)
		out.Recorded = true
	}
	out.Record = rec
	m.refresh()
	return out, nil
}

type applier func(m *MatchState, ev BallEvent, rec *BallRecord, bat *BattingFigures, bowl *BowlingFigures)

var appliers = map[EventKind]applier{
	KindRuns:   applyRuns,
	KindWide:   applyExtra,
	KindNoBall: applyExtra,
	KindWicket: applyWicket,
}

func applyRuns(m *MatchState, ev BallEvent, rec *BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	n := ev.Runs
	rec.Runs = n
	rec.TotalRuns = n

	s := m.Innings(m.BattingSide)
	s.Runs += n
	s.LegalBalls++
	m.Partnership.Runs += n
	m.Partnership.Balls++

	bat.Runs += n
	bat.Balls++
	switch n {
	case 4:
		bat.Fours++
	case 6:
		bat.Sixes++
	}

	bowl.Balls++
	bowl.Runs += n

	if n%2 == 1 {
		m.swapStrike()
	}
}

// applyExtra handles wides and no-balls: one penalty run plus whatever the
// batters completed. The batter is credited with the completed runs only.
func applyExtra(m *MatchState, ev BallEvent, rec *BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	total := 1 + ev.ExtraRuns
	rec.ExtraRuns = ev.ExtraRuns
	rec.TotalRuns = total

	s := m.Innings(m.BattingSide)
	s.Runs += total
	s.IllegalBalls++

	bowl.Runs += total
	bat.Runs += ev.ExtraRuns

	if ev.ExtraRuns%2 == 1 {
		m.swapStrike()
	}
}

// applyWicket always clears the striker and the bowler slots; the
// non-striker stays.
func applyWicket(m *MatchState, ev BallEvent, rec *BallRecord, bat *BattingFigures, bowl *BowlingFigures) {
	rec.WicketType = ev.WicketType
	rec.RunsOnWicket = ev.RunsOnWicket

	s := m.Innings(m.BattingSide)
	s.Wickets++
	s.LegalBalls++
	m.Partnership = Partnership{}

	bat.Out = true
	bat.Balls++

	bowl.Balls++
	bowl.Wickets++
	bowl.Runs += ev.RunsOnWicket

	if ev.WicketType == DismissalTypeRunOut {
		s.Runs += ev.RunsOnWicket
		bat.Runs += ev.RunsOnWicket
		rec.TotalRuns = ev.RunsOnWicket
	}

	m.Striker = nil
	m.Bowler = nil
}

func (m *MatchState) swapStrike() {
	m.Striker, m.NonStriker = m.NonStriker, m.Striker
}
