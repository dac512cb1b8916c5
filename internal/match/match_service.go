package match

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/cenkalti/backoff/v5"
)

// Notifier receives a snapshot after every successful mutation. Publish must
// not block on slow subscribers.
type Notifier interface {
	Publish(topic string, payload any)
}

// TeamDirectory resolves team names to their rosters when scheduling.
type TeamDirectory interface {
	GetTeamByName(ctx context.Context, name string) (*team.Team, error)
}

// RetryPolicy bounds how often a failed store write is retried.
type RetryPolicy struct {
	Attempts uint
	Interval time.Duration
}

// ScheduleRequest names the two registered teams, the over limit and who won
// the toss.
type ScheduleRequest struct {
	Team1      string
	Team2      string
	Overs      int
	TossWinner string
}

// MatchService is the lifecycle controller. Every mutation on a match runs
// under that match's lock: load, apply, persist, then publish.
type MatchService struct {
	repo     MatchRepository
	teams    TeamDirectory
	notifier Notifier
	retry    RetryPolicy
	now      func() time.Time
	locks    keyedLocks
}

// NewMatchService creates a new match service
func NewMatchService(repo MatchRepository, teams TeamDirectory, notifier Notifier, retry RetryPolicy) *MatchService {
	if retry.Attempts == 0 {
		retry.Attempts = 1
	}
	return &MatchService{
		repo:     repo,
		teams:    teams,
		notifier: notifier,
		retry:    retry,
		now:      time.Now,
	}
}

// ScheduleMatch builds a fresh in-progress match from two registered teams.
func (s *MatchService) ScheduleMatch(ctx context.Context, req ScheduleRequest) (*scoring.MatchState, error) {
	toss := strings.TrimSpace(req.TossWinner)
	if toss == "" || (!strings.EqualFold(toss, strings.TrimSpace(req.Team1)) && !strings.EqualFold(toss, strings.TrimSpace(req.Team2))) {
		return nil, scoring.Validation(scoring.CodeInvalidToss, "tossWinner", "invalid toss winner '%s', must be one of the teams", req.TossWinner)
	}

	sheets := make([]scoring.TeamSheet, 2)
	for i, name := range []string{req.Team1, req.Team2} {
		t, err := s.teams.GetTeamByName(ctx, strings.TrimSpace(name))
		if err != nil {
			log.Printf("Error looking up team %q: %v", name, err)
			return nil, scoring.Wrap(scoring.ErrStorage, err)
		}
		if t == nil {
			field := "team1"
			if i == 1 {
				field = "team2"
			}
			return nil, scoring.ErrTeamNotFound.WithField(field, "team '%s' not found", name)
		}
		sheets[i] = scoring.TeamSheet{Name: t.Name, Players: t.Players}
	}

	state, err := scoring.NewMatch(sheets[0], sheets[1], req.Overs, toss, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "create", func() error { return s.repo.Create(ctx, state) }); err != nil {
		return nil, err
	}
	log.Printf("Scheduled match %d: %s vs %s, %d overs", state.ID, state.Teams[0].Name, state.Teams[1].Name, state.OverLimit)
	s.publish(state)
	return state, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id uint) (*scoring.MatchState, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, storageErr(err)
	}
	return state, nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]*scoring.MatchState, error) {
	states, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return states, nil
}

// DecideToss records the toss winner and which side bats.
func (s *MatchService) DecideToss(ctx context.Context, id uint, tossWinner, battingSide string) (*scoring.MatchState, error) {
	return s.mutate(ctx, id, func(m *scoring.MatchState) error {
		return scoring.DecideToss(m, tossWinner, battingSide)
	})
}

// AssignPlayers fills any of the bowler, striker and non-striker slots.
func (s *MatchService) AssignPlayers(ctx context.Context, id uint, a scoring.Assignment) (*scoring.MatchState, error) {
	return s.mutate(ctx, id, func(m *scoring.MatchState) error {
		return scoring.Assign(m, a)
	})
}

// ApplyBall scores one delivery.
func (s *MatchService) ApplyBall(ctx context.Context, id uint, ev scoring.BallEvent) (*scoring.MatchState, scoring.Outcome, error) {
	var out scoring.Outcome
	state, err := s.mutate(ctx, id, func(m *scoring.MatchState) error {
		var err error
		out, err = scoring.ApplyBall(m, ev)
		return err
	})
	if err != nil {
		return nil, scoring.Outcome{}, err
	}
	if out.Completed {
		log.Printf("Match %d innings completed at %d/%d", id, state.Innings(state.BattingSide).Runs, state.Innings(state.BattingSide).Wickets)
	}
	return state, out, nil
}

// UndoBall reverts the last recorded delivery.
func (s *MatchService) UndoBall(ctx context.Context, id uint) (*scoring.MatchState, error) {
	return s.mutate(ctx, id, func(m *scoring.MatchState) error {
		_, err := scoring.UndoLast(m)
		return err
	})
}

// ResetMatch zeroes the match but keeps the toss decision.
func (s *MatchService) ResetMatch(ctx context.Context, id uint) (*scoring.MatchState, error) {
	return s.mutate(ctx, id, func(m *scoring.MatchState) error {
		scoring.Reset(m)
		return nil
	})
}

// ResetAllMatches resets every stored match in one transaction and publishes
// each reset snapshot once the transaction commits.
func (s *MatchService) ResetAllMatches(ctx context.Context) ([]*scoring.MatchState, error) {
	listed, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	ids := make([]uint, 0, len(listed))
	for _, m := range listed {
		ids = append(ids, m.ID)
	}
	// ascending order keeps lock acquisition consistent across callers
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		unlock := s.locks.lock(id)
		defer unlock()
	}

	var reset []*scoring.MatchState
	err = s.persist(ctx, "reset all", func() error {
		reset = reset[:0]
		return s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
			for _, id := range ids {
				m, err := tx.Load(ctx, id)
				if errors.Is(err, scoring.ErrMatchNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				scoring.Reset(m)
				if err := tx.SaveAll(ctx, m); err != nil {
					return err
				}
				reset = append(reset, m)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Reset %d matches", len(reset))
	for _, m := range reset {
		s.publish(m)
	}
	return reset, nil
}

// DeleteMatch removes a match. Nothing is published.
func (s *MatchService) DeleteMatch(ctx context.Context, id uint) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.persist(ctx, "delete", func() error { return s.repo.Delete(ctx, id) }); err != nil {
		return err
	}
	s.locks.forget(id)
	log.Printf("Deleted match %d", id)
	return nil
}

// mutate is the load → apply → persist → publish path shared by every
// single-match operation. A failure at any step leaves the store and the
// subscribers untouched.
func (s *MatchService) mutate(ctx context.Context, id uint, apply func(*scoring.MatchState) error) (*scoring.MatchState, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, storageErr(err)
	}
	if err := apply(state); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "save", func() error { return s.repo.SaveAll(ctx, state) }); err != nil {
		return nil, err
	}
	s.publish(state)
	return state, nil
}

// persist runs a store write with bounded exponential retry. Scoring errors
// such as ErrMatchNotFound are returned as they are; anything else becomes a
// StorageError once the attempts run out.
func (s *MatchService) persist(ctx context.Context, op string, write func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.Interval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := write()
		if err != nil && scoring.KindOf(err) != "" {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.retry.Attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Printf("Store %s failed, retrying in %s: %v", op, next, err)
		}),
	)
	if err != nil {
		if scoring.KindOf(err) != "" {
			return err
		}
		log.Printf("Store %s failed: %v", op, err)
		return scoring.Wrap(scoring.ErrStorage, err)
	}
	return nil
}

func (s *MatchService) publish(state *scoring.MatchState) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(TopicScoreUpdate, state)
}

func storageErr(err error) error {
	if scoring.KindOf(err) != "" {
		return err
	}
	log.Printf("Store read failed: %v", err)
	return scoring.Wrap(scoring.ErrStorage, err)
}

// keyedLocks hands out one mutex per match id.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (k *keyedLocks) lock(id uint) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uint]*sync.Mutex)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (k *keyedLocks) forget(id uint) {
	k.mu.Lock()
	delete(k.locks, id)
	k.mu.Unlock()
}
