package entity

import "time"

// Weather 天气预报实体
type Weather struct {
	ID                  int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Condition           string    `gorm:"column:weather_condition;type:varchar(32);not null"`
	TemperatureHigh     float64   `gorm:"column:temperature_high;not null"`
	TemperatureLow      float64   `gorm:"column:temperature_low"`
	PrecipitationChance float64   `gorm:"column:precipitation_chance"`
	Date                time.Time `gorm:"column:date;not null;index:idx_date"`
	CreatedAt           time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Weather) TableName() string {
	return "weather"
}
