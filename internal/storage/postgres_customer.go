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

// CustomerFilter holds the optional equality filters for customer listings.
type CustomerFilter struct {
	TenantID *uuid.UUID
	Platform string
}

func (f CustomerFilter) apply(q *gorm.DB) *gorm.DB {
	if f.TenantID != nil {
		q = q.Where("tenant_id = ?", *f.TenantID)
	}
	if f.Platform != "" {
		q = q.Where("platform = ?", f.Platform)
	}
	return q
}

// ListCustomers returns one page of customers matching the filter plus the
// unpaginated total, newest first. Count and page are independent reads;
// drift between them under concurrent writes is accepted.
func (r *PostgresRepo) ListCustomers(ctx context.Context, filter CustomerFilter, page Page) ([]model.Customer, int64, error) {
	var (
		customers []model.Customer
		total     int64
	)

	startTime := utils.Now()
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Customer{})).Count(&total).Error
	if err == nil {
		err = page.apply(filter.apply(r.db.WithContext(ctx)).Order("created_at DESC")).Find(&customers).Error
	}
	observer.ObserveDbOperationDuration("list", "customer", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		logger.FromContext(ctx).Error("Failed to list customers",
			zap.Any("tenant_id", filter.TenantID),
			zap.String("platform", filter.Platform),
			zap.Error(wrapped))
		return nil, 0, wrapped
	}

	logger.FromContext(ctx).Info("Listed customers",
		zap.Int64("total", total),
		zap.Int("returned", len(customers)),
		zap.Any("tenant_id", filter.TenantID),
		zap.String("platform", filter.Platform),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit))
	return customers, total, nil
}

// FindCustomerByID looks a customer up by primary key.
func (r *PostgresRepo) FindCustomerByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer

	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	observer.ObserveDbOperationDuration("find_by_id", "customer", time.Since(startTime), err)

	if err != nil {
		wrapped := translateDBError(err)
		if apperrors.IsNotFoundError(wrapped) {
			logger.FromContext(ctx).Warn("Customer not found", zap.String("customer_id", id.String()))
		} else {
			logger.FromContext(ctx).Error("Failed to find customer",
				zap.String("customer_id", id.String()),
				zap.Error(wrapped))
		}
		return nil, wrapped
	}

	logger.FromContext(ctx).Info("Retrieved customer",
		zap.String("customer_id", id.String()),
		zap.String("platform", customer.Platform),
		zap.String("platform_user_id", customer.PlatformUserID))
	return &customer, nil
}
