package models

import "time"

// ScheduleEntry is one team's side of one scheduled game. The schedule
// source emits one row per participating team, so a single game between
// two teams yields two entries on the same date.
type ScheduleEntry struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	Team string    `gorm:"index;not null" json:"team"`
	Date time.Time `gorm:"index;not null" json:"date"`
}

// TableName specifies the table name for GORM
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
