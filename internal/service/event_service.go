package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"store-console/internal/domain"
)

const exportCap = 10000

type EventService struct {
	events domain.EventRepository
	log    *zap.Logger
}

func NewEventService(events domain.EventRepository, log *zap.Logger) *EventService {
	return &EventService{events: events, log: log}
}

// Record 尽力而为：审计写入失败绝不影响触发它的请求
func (s *EventService) Record(email, label string) {
	if err := s.events.Append(&domain.Event{Email: email, Event: label}); err != nil {
		s.log.Error("event log write failed",
			zap.String("email", email), zap.String("event", label), zap.Error(err))
	}
}

// EventQuery from/to 接受 RFC3339、"2006-01-02 15:04:05" 或纯日期
type EventQuery struct {
	Limit  int
	Offset int
	Email  string
	Event  string
	From   string
	To     string
}

func (s *EventService) Query(actor Actor, q EventQuery) ([]domain.Event, error) {
	if actor.UserType < domain.RoleAdmin {
		return nil, Forbidden("Unauthorized")
	}
	f, err := q.toFilter()
	if err != nil {
		return nil, err
	}
	return s.events.Query(f)
}

func (s *EventService) ExportCSV(actor Actor, q EventQuery) (string, error) {
	if actor.UserType < domain.RoleAdmin {
		return "", Forbidden("Unauthorized")
	}
	q.Limit = exportCap
	q.Offset = 0
	f, err := q.toFilter()
	if err != nil {
		return "", err
	}
	events, err := s.events.Query(f)
	if err != nil {
		return "", err
	}

	// 粗粒度导出：仅裸引号包裹，不做完整 CSV 转义
	var b strings.Builder
	b.WriteString("id,email,event,event_time\n")
	for _, e := range events {
		fmt.Fprintf(&b, "%d,\"%s\",\"%s\",\"%s\"\n",
			e.ID, e.Email, e.Event, e.EventTime.Format("2006-01-02 15:04:05"))
	}
	return b.String(), nil
}

func (q EventQuery) toFilter() (domain.EventFilter, error) {
	f := domain.EventFilter{
		Limit:  q.Limit,
		Offset: q.Offset,
		Email:  q.Email,
		Event:  q.Event,
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if q.From != "" {
		t, err := parseEventTime(q.From)
		if err != nil {
			return f, Invalid("Invalid from timestamp")
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := parseEventTime(q.To)
		if err != nil {
			return f, Invalid("Invalid to timestamp")
		}
		f.To = &t
	}
	return f, nil
}

func parseEventTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable time %q", s)
}
