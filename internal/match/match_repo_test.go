package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Match{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newState(t *testing.T) *scoring.MatchState {
	t.Helper()
	m, err := scoring.NewMatch(
		scoring.TeamSheet{Name: "Lions", Players: []string{"Alice", "Amy", "Ann"}},
		scoring.TeamSheet{Name: "Tigers", Players: []string{"Bob", "Ben", "Bill"}},
		2, "Lions", time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return m
}

func TestGormMatchRepository_RoundTrip(t *testing.T) {
	repo := NewGormMatchRepository(newTestDB(t))
	ctx := context.Background()

	st := newState(t)
	require.NoError(t, repo.Create(ctx, st))
	require.NotZero(t, st.ID)

	require.NoError(t, scoring.Assign(st, scoring.Assignment{Bowler: "Bob", Striker: "Alice", NonStriker: "Amy"}))
	_, err := scoring.ApplyBall(st, scoring.Wicket(scoring.DismissalTypeCaught, 0))
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(ctx, st))

	got, err := repo.Load(ctx, st.ID)
	require.NoError(t, err)

	assert.Equal(t, st.ID, got.ID)
	assert.Equal(t, st.Teams, got.Teams)
	assert.Equal(t, st.Players, got.Players)
	assert.Equal(t, st.History, got.History)
	assert.Equal(t, st.Score, got.Score)
	assert.Nil(t, got.Striker)
	require.NotNil(t, got.NonStriker)
	assert.Equal(t, *st.NonStriker, *got.NonStriker)
	assert.Equal(t, st.Awaiting, got.Awaiting)
	assert.True(t, st.Date.Equal(got.Date))

	// the listing columns follow the snapshot
	var row Match
	require.NoError(t, newTestDBRow(repo, st.ID, &row))
	assert.Equal(t, "Lions", row.Team1)
	assert.Equal(t, 2, row.Overs)
	assert.Equal(t, scoring.StatusInProgress, row.Status)
}

func newTestDBRow(repo *GormMatchRepository, id uint, row *Match) error {
	return repo.db.First(row, id).Error
}

func TestGormMatchRepository_MissingMatch(t *testing.T) {
	repo := NewGormMatchRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Load(ctx, 7)
	assert.ErrorIs(t, err, scoring.ErrMatchNotFound)

	st := newState(t)
	st.ID = 7
	assert.ErrorIs(t, repo.SaveAll(ctx, st), scoring.ErrMatchNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 7), scoring.ErrMatchNotFound)
}

func TestGormMatchRepository_ListAndDelete(t *testing.T) {
	repo := NewGormMatchRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newState(t)))
	}
	require.NoError(t, repo.Delete(ctx, 2))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, uint(3), all[1].ID)

	_, err = repo.Load(ctx, 2)
	assert.ErrorIs(t, err, scoring.ErrMatchNotFound)
}

func TestGormMatchRepository_TransactionRollsBack(t *testing.T) {
	repo := NewGormMatchRepository(newTestDB(t))
	ctx := context.Background()
	st := newState(t)
	require.NoError(t, repo.Create(ctx, st))

	boom := errors.New("boom")
	err := repo.WithTransaction(ctx, func(tx MatchRepository) error {
		m, err := tx.Load(ctx, st.ID)
		if err != nil {
			return err
		}
		scoring.Reset(m)
		if err := tx.SaveAll(ctx, m); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Load(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, scoring.StatusInProgress, got.Status)
}
