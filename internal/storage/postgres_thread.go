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

// ThreadFilter holds the optional equality filters for thread listings.
type ThreadFilter struct {
	TenantID   *uuid.UUID
	CustomerID *uuid.UUID
	Channel    string
	Status     string
}

func (f ThreadFilter) apply(q *gorm.DB) *gorm.DB {
	if f.TenantID != nil {
		q = q.Where("tenant_id = ?", *f.TenantID)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.Channel != "" {
		q = q.Where("channel = ?", f.Channel)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

// ListThreads returns one page of threads matching the filter plus the
// unpaginated total, newest first. The linked customer is preloaded so the
// response can embed its summary.
func (r *PostgresRepo) ListThreads(ctx context.Context, filter ThreadFilter, page Page) ([]model.Thread, int64, error) {
	var (
		threads []model.Thread
		total   int64
	)

	startTime := utils.Now()
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Thread{})).Count(&total).Error
	if err == nil {
		err = page.apply(filter.apply(r.db.WithContext(ctx).Preload("Customer")).Order("created_at DESC")).Find(&threads).Error
	}
	observer.ObserveDbOperationDuration("list", "thread", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list threads",
			zap.Any("tenant_id", filter.TenantID),
			zap.String("channel", filter.Channel),
			zap.String("status", filter.Status),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed threads",
		zap.Int64("total", total),
		zap.Int("returned", len(threads)),
		zap.Any("tenant_id", filter.TenantID),
		zap.String("channel", filter.Channel),
		zap.String("status", filter.Status),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return threads, total, nil
}

// FindThreadByID looks a thread up by primary key, preloading the linked
// customer for the embedded summary.
func (r *PostgresRepo) FindThreadByID(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	var thread model.Thread

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&thread).Error
	observer.ObserveDbOperationDuration("find_by_id", "thread", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Thread not found", zap.String("thread_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find thread",
				zap.String("thread_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved thread",
		zap.String("thread_id", id.String()),
		zap.String("channel", thread.Channel),
		zap.String("status", thread.Status))
	return &thread, nil
}
