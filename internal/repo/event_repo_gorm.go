package repo

import (
	"gorm.io/gorm"

	"store-console/internal/domain"
)

type EventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(e *domain.Event) error { return r.db.Create(e).Error }

func (r *EventRepo) Query(f domain.EventFilter) ([]domain.Event, error) {
	q := r.db.Model(&domain.Event{})
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.Event != "" {
		q = q.Where("event LIKE ?", "%"+f.Event+"%")
	}
	if f.From != nil {
		q = q.Where("event_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("event_time <= ?", *f.To)
	}

	var events []domain.Event
	err := q.Order("event_time DESC, id DESC").Limit(f.Limit).Offset(f.Offset).Find(&events).Error
	return events, err
}
