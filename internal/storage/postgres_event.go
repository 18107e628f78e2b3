package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/observer"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/utils"
)

// EventFilter holds the optional equality filters for event listings.
type EventFilter struct {
	TenantID *uuid.UUID
	ThreadID *uuid.UUID
	Type     string
}

func (f EventFilter) apply(q *gorm.DB) *gorm.DB {
	if f.TenantID != nil {
		q = q.Where("tenant_id = ?", *f.TenantID)
	}
	if f.ThreadID != nil {
		q = q.Where("thread_id = ?", *f.ThreadID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	return q
}

// ListEvents returns one page of audit events matching the filter plus the
// unpaginated total. Events carry a single immutable ts, so ordering uses
// ts instead of created_at.
func (r *PostgresRepo) ListEvents(ctx context.Context, filter EventFilter, page Page) ([]model.Event, int64, error) {
	var (
		events []model.Event
		total  int64
	)

	startTime := utils.Now()
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Event{})).Count(&total).Error
	if err == nil {
		err = page.apply(filter.apply(r.db.WithContext(ctx)).Order("ts DESC")).Find(&events).Error
	}
	observer.ObserveDbOperationDuration("list", "event", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list events",
			zap.Any("tenant_id", filter.TenantID),
			zap.Any("thread_id", filter.ThreadID),
			zap.String("type", filter.Type),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed events",
		zap.Int64("total", total),
		zap.Int("returned", len(events)),
		zap.Any("tenant_id", filter.TenantID),
		zap.Any("thread_id", filter.ThreadID),
		zap.String("type", filter.Type),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return events, total, nil
}

// FindEventByID looks an event up by primary key.
func (r *PostgresRepo) FindEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	observer.ObserveDbOperationDuration("find_by_id", "event", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Event not found", zap.String("event_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find event",
				zap.String("event_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved event",
		zap.String("event_id", id.String()),
		zap.String("type", event.Type))
	return &event, nil
}
