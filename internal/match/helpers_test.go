package match

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// memRepo keeps deep copies of every snapshot so callers can never mutate
// stored state through a pointer they were handed.
type memRepo struct {
	mu        sync.Mutex
	matches   map[uint]*scoring.MatchState
	nextID    uint
	failSaves int
	saveCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{matches: make(map[uint]*scoring.MatchState)}
}

func (r *memRepo) Create(_ context.Context, state *scoring.MatchState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	state.ID = r.nextID
	r.matches[state.ID] = state.Clone()
	return nil
}

func (r *memRepo) Load(_ context.Context, id uint) (*scoring.MatchState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, scoring.ErrMatchNotFound
	}
	return m.Clone(), nil
}

func (r *memRepo) SaveAll(_ context.Context, state *scoring.MatchState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.failSaves > 0 {
		r.failSaves--
		return errDiskFull
	}
	if _, ok := r.matches[state.ID]; !ok {
		return scoring.ErrMatchNotFound
	}
	r.matches[state.ID] = state.Clone()
	return nil
}

func (r *memRepo) ListAll(_ context.Context) ([]*scoring.MatchState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*scoring.MatchState, 0, len(r.matches))
	for id := uint(1); id <= r.nextID; id++ {
		if m, ok := r.matches[id]; ok {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

func (r *memRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return scoring.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *memRepo) WithTransaction(_ context.Context, txFunc func(MatchRepository) error) error {
	r.mu.Lock()
	saved := make(map[uint]*scoring.MatchState, len(r.matches))
	for id, m := range r.matches {
		saved[id] = m.Clone()
	}
	r.mu.Unlock()

	if err := txFunc(r); err != nil {
		r.mu.Lock()
		r.matches = saved
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *memRepo) stored(t *testing.T, id uint) *scoring.MatchState {
	t.Helper()
	m, err := r.Load(context.Background(), id)
	require.NoError(t, err)
	return m
}

type fakeTeams map[string]team.Team

func (f fakeTeams) GetTeamByName(_ context.Context, name string) (*team.Team, error) {
	for k, t := range f {
		if strings.EqualFold(k, name) {
			return &t, nil
		}
	}
	return nil, nil
}

var testTeams = fakeTeams{
	"Lions":  {Name: "Lions", Players: []string{"Alice", "Amy", "Ann"}},
	"Tigers": {Name: "Tigers", Players: []string{"Bob", "Ben", "Bill"}},
}

type recordingNotifier struct {
	mu     sync.Mutex
	topics []string
	states []*scoring.MatchState
}

func (n *recordingNotifier) Publish(topic string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.topics = append(n.topics, topic)
	if st, ok := payload.(*scoring.MatchState); ok {
		n.states = append(n.states, st.Clone())
	}
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.states)
}

func (n *recordingNotifier) last() *scoring.MatchState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.states[len(n.states)-1]
}

func newTestService(repo MatchRepository) (*MatchService, *recordingNotifier) {
	n := &recordingNotifier{}
	svc := NewMatchService(repo, testTeams, n, RetryPolicy{Attempts: 3, Interval: time.Millisecond})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC) }
	return svc, n
}

// scheduleReady schedules Lions (batting) vs Tigers with Bob bowling to Alice
// and Amy at the other end.
func scheduleReady(t *testing.T, svc *MatchService, overs int) *scoring.MatchState {
	t.Helper()
	ctx := context.Background()
	m, err := svc.ScheduleMatch(ctx, ScheduleRequest{Team1: "Lions", Team2: "Tigers", Overs: overs, TossWinner: "Lions"})
	require.NoError(t, err)
	m, err = svc.AssignPlayers(ctx, m.ID, scoring.Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"})
	require.NoError(t, err)
	return m
}
