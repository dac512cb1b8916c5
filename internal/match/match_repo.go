package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"gorm.io/gorm"
)

// MatchRepository is the Store the lifecycle controller reads whole snapshots
// from and writes them back to.
type MatchRepository interface {
	// Create inserts a new match and sets state.ID.
	Create(ctx context.Context, state *scoring.MatchState) error
	// Load returns scoring.ErrMatchNotFound for an unknown id.
	Load(ctx context.Context, id uint) (*scoring.MatchState, error)
	SaveAll(ctx context.Context, state *scoring.MatchState) error
	// ListAll returns every match ordered by id.
	ListAll(ctx context.Context) ([]*scoring.MatchState, error)
	Delete(ctx context.Context, id uint) error

	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *GormMatchRepository) Create(ctx context.Context, state *scoring.MatchState) error {
	row := newMatchRow(state)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	state.ID = row.ID
	return nil
}

func (r *GormMatchRepository) Load(ctx context.Context, id uint) (*scoring.MatchState, error) {
	var row Match
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scoring.ErrMatchNotFound
		}
		return nil, fmt.Errorf("load match %d: %w", id, err)
	}
	return row.snapshot(), nil
}

// SaveAll overwrites the stored snapshot and its listing columns in one write.
func (r *GormMatchRepository) SaveAll(ctx context.Context, state *scoring.MatchState) error {
	var row Match
	row.fill(state)
	res := r.db.WithContext(ctx).Model(&row).
		Select("team1", "team2", "overs", "status", "state", "updated_at").
		Updates(&row)
	if res.Error != nil {
		return fmt.Errorf("save match %d: %w", state.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return scoring.ErrMatchNotFound
	}
	return nil
}

func (r *GormMatchRepository) ListAll(ctx context.Context) ([]*scoring.MatchState, error) {
	var rows []Match
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	states := make([]*scoring.MatchState, 0, len(rows))
	for i := range rows {
		states = append(states, rows[i].snapshot())
	}
	return states, nil
}

func (r *GormMatchRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Match{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete match %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return scoring.ErrMatchNotFound
	}
	return nil
}
