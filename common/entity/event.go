package entity

import "time"

// Event 本地活动实体
type Event struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string    `gorm:"column:name;type:varchar(128);not null"`
	EventType          string    `gorm:"column:event_type;type:varchar(32);not null"`
	StartDate          time.Time `gorm:"column:start_date;not null;index:idx_start_date"`
	EndDate            time.Time `gorm:"column:end_date"`
	ExpectedAttendance int       `gorm:"column:expected_attendance"`
	ImpactMultiplier   float64   `gorm:"column:impact_multiplier;default:1.0"`
	Location           string    `gorm:"column:location;type:varchar(128)"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Event) TableName() string {
	return "events"
}
