package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingAutoGameController gates the automatic round controller and holds
// optional per-game-type round durations. Read fresh on every tick so an
// admin toggle takes effect on the very next invocation.
const SettingAutoGameController = "auto_game_controller"

type Setting struct {
	gorm.Model

	Key   string         `gorm:"size:64;uniqueIndex" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb" json:"value"`
}
