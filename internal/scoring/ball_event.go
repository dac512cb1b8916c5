package scoring

import (
	"strconv"
	"strings"
)

// EventKind is the closed set of deliveries the processor understands.
type EventKind string

const (
	KindRuns   EventKind = "runs"
	KindWide   EventKind = "wide"
	KindNoBall EventKind = "no_ball"
	KindWicket EventKind = "wicket"
)

// DismissalType for cricket wickets
type DismissalType string

const (
	DismissalTypeBowled      DismissalType = "bowled"
	DismissalTypeCaught      DismissalType = "caught"
	DismissalTypeLBW         DismissalType = "lbw"
	DismissalTypeRunOut      DismissalType = "run_out"
	DismissalTypeStumped     DismissalType = "stumped"
	DismissalTypeHitWicket   DismissalType = "hit_wicket"
	DismissalTypeHandledBall DismissalType = "handled_ball"
	DismissalTypeObstructing DismissalType = "obstructing_the_field"
	DismissalTypeTimedOut    DismissalType = "timed_out"
	DismissalTypeRetiredOut  DismissalType = "retired_out"
)

var dismissalTypes = map[DismissalType]bool{
	DismissalTypeBowled:      true,
	DismissalTypeCaught:      true,
	DismissalTypeLBW:         true,
	DismissalTypeRunOut:      true,
	DismissalTypeStumped:     true,
	DismissalTypeHitWicket:   true,
	DismissalTypeHandledBall: true,
	DismissalTypeObstructing: true,
	DismissalTypeTimedOut:    true,
	DismissalTypeRetiredOut:  true,
}

// ParseDismissal normalises "Run Out", "run-out" and "run_out" to the same
// type. An empty value means bowled.
func ParseDismissal(raw string) (DismissalType, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DismissalTypeBowled, nil
	}
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	if !dismissalTypes[DismissalType(s)] {
		return "", Validation(CodeInvalidWicketType, "wicket_type", "unknown wicket type %q", raw)
	}
	return DismissalType(s), nil
}

const maxRunsPerBall = 6

// BallEvent is a delivery decided once at the boundary. Only the fields that
// belong to Kind are meaningful: Runs for KindRuns, ExtraRuns for wides and
// no-balls, WicketType and RunsOnWicket for KindWicket.
type BallEvent struct {
	Kind         EventKind
	Runs         int
	ExtraRuns    int
	WicketType   DismissalType
	RunsOnWicket int
}

func Runs(n int) BallEvent { return BallEvent{Kind: KindRuns, Runs: n} }

func Wide(extraRuns int) BallEvent { return BallEvent{Kind: KindWide, ExtraRuns: extraRuns} }

func NoBall(extraRuns int) BallEvent { return BallEvent{Kind: KindNoBall, ExtraRuns: extraRuns} }

func Wicket(t DismissalType, runsOnWicket int) BallEvent {
	if t == "" {
		t = DismissalTypeBowled
	}
	return BallEvent{Kind: KindWicket, WicketType: t, RunsOnWicket: runsOnWicket}
}

// ParseEvent turns the scorer's event string into a BallEvent. Accepted
// forms are a run count ("0".."4", "6"), "Wide", "No Ball" and "Wicket".
func ParseEvent(raw, wicketType string, runsOnWicket, extraRuns int) (BallEvent, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return BallEvent{}, ErrEmptyEvent
	}
	var ev BallEvent
	if n, err := strconv.Atoi(s); err == nil {
		ev = Runs(n)
	} else {
		switch strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s)) {
		case "wide":
			ev = Wide(extraRuns)
		case "noball":
			ev = NoBall(extraRuns)
		case "wicket":
			t, err := ParseDismissal(wicketType)
			if err != nil {
				return BallEvent{}, err
			}
			ev = Wicket(t, runsOnWicket)
		default:
			return BallEvent{}, ErrUnknownEventKind.with("", "0-4, 6, Wide, No Ball or Wicket", "unknown event %q", s)
		}
	}
	if err := ev.validate(); err != nil {
		return BallEvent{}, err
	}
	return ev, nil
}

func (e BallEvent) validate() error {
	switch e.Kind {
	case KindRuns:
		if e.Runs < 0 || e.Runs > maxRunsPerBall || e.Runs == 5 {
			return ErrUnknownEventKind.with("", "0-4, 6, Wide, No Ball or Wicket", "unsupported run count %d", e.Runs)
		}
	case KindWide, KindNoBall:
		if e.ExtraRuns < 0 || e.ExtraRuns > maxRunsPerBall {
			return Validation(CodeInvalidRuns, "additional_runs", "additional runs must be between 0 and %d", maxRunsPerBall)
		}
	case KindWicket:
		if !dismissalTypes[e.WicketType] {
			return Validation(CodeInvalidWicketType, "wicket_type", "unknown wicket type %q", e.WicketType)
		}
		if e.RunsOnWicket < 0 || e.RunsOnWicket > maxRunsPerBall {
			return Validation(CodeInvalidRuns, "runs_on_wicket", "runs on wicket must be between 0 and %d", maxRunsPerBall)
		}
	default:
		return ErrUnknownEventKind.with("", "runs, wide, no_ball or wicket", "unknown event kind %q", e.Kind)
	}
	return nil
}
