package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/observer"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/utils"
)

// ListTenants returns one page of tenants plus the unpaginated total,
// newest first.
func (r *PostgresRepo) ListTenants(ctx context.Context, page Page) ([]model.Tenant, int64, error) {
	var (
		tenants []model.Tenant
		total   int64
	)

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Model(&model.Tenant{}).Count(&total).Error
	if err == nil {
		err = page.apply(r.db.WithContext(ctx).Order("created_at DESC")).Find(&tenants).Error
	}
	observer.ObserveDbOperationDuration("list", "tenant", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list tenants",
			zap.Int("skip", page.Skip),
			zap.Int("limit", page.Limit),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed tenants",
		zap.Int64("total", total),
		zap.Int("returned", len(tenants)),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return tenants, total, nil
}

// FindTenantByID looks a tenant up by primary key.
func (r *PostgresRepo) FindTenantByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	var tenant model.Tenant

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error
	observer.ObserveDbOperationDuration("find_by_id", "tenant", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Tenant not found", zap.String("tenant_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find tenant",
				zap.String("tenant_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved tenant",
		zap.String("tenant_id", id.String()),
		zap.String("tenant_name", tenant.Name))
	return &tenant, nil
}
