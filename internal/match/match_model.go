package match

import (
	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"gorm.io/gorm"
)

// TopicScoreUpdate is the notifier topic every successful mutation fires on.
const TopicScoreUpdate = "scoreUpdate"

// Match is the stored row for one match. The whole scoring snapshot lives in
// State; Team1, Team2, Overs and Status are copied out for listing and
// filtering without decoding it.
type Match struct {
	gorm.Model
	Team1  string             `gorm:"type:varchar(100);not null" json:"team1"`
	Team2  string             `gorm:"type:varchar(100);not null" json:"team2"`
	Overs  int                `gorm:"not null" json:"overs"`
	Status scoring.Status     `gorm:"type:varchar(20);not null;index" json:"status"`
	State  scoring.MatchState `gorm:"type:text;serializer:json" json:"state"`
}

func (Match) TableName() string {
	return "matches"
}

// newMatchRow copies a snapshot into a row. The ID is left to the caller so
// Create can let the database assign it.
func newMatchRow(st *scoring.MatchState) *Match {
	m := &Match{}
	m.fill(st)
	return m
}

func (m *Match) fill(st *scoring.MatchState) {
	m.ID = st.ID
	m.Team1 = st.Teams[0].Name
	m.Team2 = st.Teams[1].Name
	m.Overs = st.OverLimit
	m.Status = st.Status
	m.State = *st
}

// snapshot returns the stored state with its ID taken from the row.
func (m *Match) snapshot() *scoring.MatchState {
	st := m.State
	st.ID = m.ID
	return &st
}
