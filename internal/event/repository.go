// Package event reads event titles and organizers for messaging and
// notifications. Event CRUD belongs to another service.
package event

import (
	"context"
	"fmt"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type EventRepository interface {
	// TitlesByIDs maps event id to title. Unknown ids are absent from the map.
	TitlesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	Title(ctx context.Context, id string) (string, error)
	OrganizerID(ctx context.Context, id string) (string, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) TitlesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var events []dbmysql.Event
	err := r.db.WithContext(ctx).
		Select("id", "title").
		Where("id IN ?", ids).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get event titles: %w", err)
	}

	return lo.SliceToMap(events, func(e dbmysql.Event) (string, string) {
		return e.ID, e.Title
	}), nil
}

func (r *eventRepository) Title(ctx context.Context, id string) (string, error) {
	ev, err := r.byID(ctx, id, "title")
	if err != nil {
		return "", err
	}
	return ev.Title, nil
}

func (r *eventRepository) OrganizerID(ctx context.Context, id string) (string, error) {
	ev, err := r.byID(ctx, id, "user_id")
	if err != nil {
		return "", err
	}
	return ev.UserID, nil
}

func (r *eventRepository) byID(ctx context.Context, id string, column string) (*dbmysql.Event, error) {
	var ev dbmysql.Event
	err := r.db.WithContext(ctx).
		Select("id", column).
		Where("id = ?", id).
		Take(&ev).Error
	if err != nil {
		if dbmysql.IsNotFound(err) {
			return nil, fmt.Errorf("event %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &ev, nil
}
