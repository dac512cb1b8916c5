// team/model.go
package team

import (
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"gorm.io/gorm"
)

// Team is a registered side and its ordered roster of player names.
type Team struct {
	gorm.Model
	Name    string             `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Players models.StringSlice `json:"players" gorm:"type:text"`
}

func (Team) TableName() string {
	return "teams"
}
