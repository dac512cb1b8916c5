package cli

import (
	"fmt"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"gorm.io/gorm"
)

// bootstrap loads configuration, connects and migrates the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	if err := config.Initialize(); err != nil {
		return nil, nil, err
	}
	cfg := config.GetConfig()
	if err := migrate(config.DB); err != nil {
		return nil, nil, err
	}
	return cfg, config.DB, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&team.Team{}, &match.Match{}); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

func newMatchService(cfg *config.Config, db *gorm.DB, notifier match.Notifier) *match.MatchService {
	return match.NewMatchService(
		match.NewGormMatchRepository(db),
		team.NewTeamRepository(db),
		notifier,
		match.RetryPolicy{Attempts: cfg.Store.SaveAttempts, Interval: cfg.RetryInterval()},
	)
}
