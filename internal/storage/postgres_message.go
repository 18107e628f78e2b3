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

// MessageFilter holds the optional equality filters for message listings.
type MessageFilter struct {
	TenantID  *uuid.UUID
	ThreadID  *uuid.UUID
	Direction string
}

func (f MessageFilter) apply(q *gorm.DB) *gorm.DB {
	if f.TenantID != nil {
		q = q.Where("tenant_id = ?", *f.TenantID)
	}
	if f.ThreadID != nil {
		q = q.Where("thread_id = ?", *f.ThreadID)
	}
	if f.Direction != "" {
		q = q.Where("direction = ?", f.Direction)
	}
	return q
}

// ListMessages returns one page of messages matching the filter plus the
// unpaginated total, newest first. The parent thread is preloaded so the
// response can embed its summary.
func (r *PostgresRepo) ListMessages(ctx context.Context, filter MessageFilter, page Page) ([]model.Message, int64, error) {
	var (
		messages []model.Message
		total    int64
	)

	startTime := utils.Now()
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Message{})).Count(&total).Error
	if err == nil {
		err = page.apply(filter.apply(r.db.WithContext(ctx).Preload("Thread")).Order("created_at DESC")).Find(&messages).Error
	}
	observer.ObserveDbOperationDuration("list", "message", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list messages",
			zap.Any("tenant_id", filter.TenantID),
			zap.Any("thread_id", filter.ThreadID),
			zap.String("direction", filter.Direction),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed messages",
		zap.Int64("total", total),
		zap.Int("returned", len(messages)),
		zap.Any("tenant_id", filter.TenantID),
		zap.Any("thread_id", filter.ThreadID),
		zap.String("direction", filter.Direction),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return messages, total, nil
}

// FindMessageByID looks a message up by primary key, preloading the parent
// thread for the embedded summary.
func (r *PostgresRepo) FindMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var message model.Message

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Preload("Thread").Where("id = ?", id).First(&message).Error
	observer.ObserveDbOperationDuration("find_by_id", "message", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Message not found", zap.String("message_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find message",
				zap.String("message_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved message",
		zap.String("message_id", id.String()),
		zap.String("direction", message.Direction))
	return &message, nil
}
