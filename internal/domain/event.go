package domain

import "time"

// Event 追加型审计流水，应用层从不更新或删除
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Event     string    `gorm:"size:255;not null" json:"event"`
	EventTime time.Time `gorm:"column:event_time;autoCreateTime" json:"event_time"`
}

func (Event) TableName() string { return "events" }

// EventFilter 条件为合取；Event 是子串匹配
type EventFilter struct {
	Limit  int
	Offset int
	Email  string
	Event  string
	From   *time.Time
	To     *time.Time
}

type EventRepository interface {
	Append(e *Event) error
	Query(f EventFilter) ([]Event, error)
}
