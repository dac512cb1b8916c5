package scoring

import (
	"errors"
	"fmt"
)

// Kind groups failures by how a caller should react to them.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindValidation    Kind = "validation_error"
	KindState         Kind = "state_error"
	KindStorage       Kind = "storage_error"
	KindNothingToUndo Kind = "nothing_to_undo"
)

// Code identifies the exact failure inside a Kind.
type Code string

const (
	CodeMatchNotFound     Code = "match_not_found"
	CodeTeamNotFound      Code = "team_not_found"
	CodeInvalidPlayer     Code = "invalid_player"
	CodeEmptyRequest      Code = "empty_request"
	CodeEmptyEvent        Code = "empty_event"
	CodeUnknownEventKind  Code = "unknown_event_kind"
	CodeInvalidWicketType Code = "invalid_wicket_type"
	CodeInvalidRuns       Code = "invalid_runs"
	CodeInvalidToss       Code = "invalid_toss"
	CodeInvalidSide       Code = "invalid_side"
	CodeInvalidOvers      Code = "invalid_overs"
	CodeInvalidRoster     Code = "invalid_roster"
	CodePlayersNotSet     Code = "players_not_set"
	CodeOutOfOrder        Code = "out_of_order"
	CodeInningsCompleted  Code = "innings_completed"
	CodeTossLocked        Code = "toss_locked"
	CodeNothingToUndo     Code = "nothing_to_undo"
	CodeStorage           Code = "storage_failure"
)

// Error is the structured failure returned by every scoring and lifecycle operation.
// Field names the offending input and Expected describes what the engine wanted instead.
type Error struct {
	Kind     Kind   `json:"kind"`
	Code     Code   `json:"code"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Code so callers can compare against the exported sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrMatchNotFound    = &Error{Kind: KindNotFound, Code: CodeMatchNotFound, Message: "match not found"}
	ErrTeamNotFound     = &Error{Kind: KindNotFound, Code: CodeTeamNotFound, Message: "team not found"}
	ErrInvalidPlayer    = &Error{Kind: KindNotFound, Code: CodeInvalidPlayer, Message: "invalid player"}
	ErrEmptyRequest     = &Error{Kind: KindValidation, Code: CodeEmptyRequest, Message: "at least one player (bowler, striker, or non-striker) must be specified"}
	ErrEmptyEvent       = &Error{Kind: KindValidation, Code: CodeEmptyEvent, Field: "event", Message: "event is required and cannot be empty"}
	ErrUnknownEventKind = &Error{Kind: KindValidation, Code: CodeUnknownEventKind, Field: "event", Message: "unknown event kind"}
	ErrInvalidToss      = &Error{Kind: KindValidation, Code: CodeInvalidToss, Field: "toss_winner", Message: "invalid toss winner, must be one of the teams"}
	ErrInvalidSide      = &Error{Kind: KindValidation, Code: CodeInvalidSide, Field: "batting_team", Message: "invalid batting team, must be team1 or team2"}
	ErrPlayersNotSet    = &Error{Kind: KindState, Code: CodePlayersNotSet, Message: "striker, non-striker and bowler must be set"}
	ErrOutOfOrder       = &Error{Kind: KindState, Code: CodeOutOfOrder, Message: "players must be assigned bowler first, then striker, then non-striker"}
	ErrInningsCompleted = &Error{Kind: KindState, Code: CodeInningsCompleted, Message: "innings already completed"}
	ErrTossLocked       = &Error{Kind: KindState, Code: CodeTossLocked, Message: "toss cannot change once balls have been recorded"}
	ErrNothingToUndo    = &Error{Kind: KindNothingToUndo, Code: CodeNothingToUndo, Message: "no balls to undo"}
	ErrStorage          = &Error{Kind: KindStorage, Code: CodeStorage, Message: "storage failure"}
)

// with copies a sentinel and fills in the request specific detail.
func (e *Error) with(field, expected, format string, args ...any) *Error {
	cp := *e
	if field != "" {
		cp.Field = field
	}
	cp.Expected = expected
	if format != "" {
		cp.Message = fmt.Sprintf(format, args...)
	}
	return &cp
}

// WithField copies a sentinel, naming the offending field and a new message.
func (e *Error) WithField(field, format string, args ...any) *Error {
	return e.with(field, "", format, args...)
}

// Wrap attaches a cause to a sentinel, used for storage failures.
func Wrap(sentinel *Error, err error) *Error {
	cp := *sentinel
	cp.Err = err
	return &cp
}

// Validation builds an ad-hoc validation error for request checks done outside the engine.
func Validation(code Code, field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the Kind of err, or "" if err is not a scoring error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
