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

// LabelFilter holds the optional equality filters for label listings.
type LabelFilter struct {
	TenantID *uuid.UUID
}

func (f LabelFilter) apply(q *gorm.DB) *gorm.DB {
	if f.TenantID != nil {
		q = q.Where("tenant_id = ?", *f.TenantID)
	}
	return q
}

// ListLabels returns one page of labels matching the filter plus the
// unpaginated total, newest first.
func (r *PostgresRepo) ListLabels(ctx context.Context, filter LabelFilter, page Page) ([]model.Label, int64, error) {
	var (
		labels []model.Label
		total  int64
	)

	startTime := utils.Now()
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Label{})).Count(&total).Error
	if err == nil {
		err = page.apply(filter.apply(r.db.WithContext(ctx)).Order("created_at DESC")).Find(&labels).Error
	}
	observer.ObserveDbOperationDuration("list", "label", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list labels",
			zap.Any("tenant_id", filter.TenantID),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed labels",
		zap.Int64("total", total),
		zap.Int("returned", len(labels)),
		zap.Any("tenant_id", filter.TenantID),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return labels, total, nil
}

// FindLabelByID looks a label up by primary key.
func (r *PostgresRepo) FindLabelByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&label).Error
	observer.ObserveDbOperationDuration("find_by_id", "label", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Label not found", zap.String("label_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find label",
				zap.String("label_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved label",
		zap.String("label_id", id.String()),
		zap.String("name", label.Name))
	return &label, nil
}
