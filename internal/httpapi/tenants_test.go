package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

func TestListTenants_Envelope(t *testing.T) {
	ts := newTestServer(t)
	tenants := []model.Tenant{*model.NewTenant(), *model.NewTenant()}
	ts.repo.On("ListTenants", mock.Anything, storage.Page{Skip: 0, Limit: 2}).
		Return(tenants, int64(10), nil)

	rec := ts.request(http.MethodGet, "/tenants?skip=0&limit=2")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body Envelope[TenantResponse]
	decodeBody(t, rec, &body)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, int64(10), body.Total)
	assert.Equal(t, 0, body.Skip)
	assert.Equal(t, 2, body.Limit)
	assert.True(t, body.HasMore)
	assert.Equal(t, tenants[0].ID, body.Items[0].ID)
	assert.Equal(t, tenants[0].Name, body.Items[0].Name)
	ts.repo.AssertExpectations(t)
}

func TestListTenants_DefaultPagination(t *testing.T) {
	ts := newTestServer(t)
	ts.repo.On("ListTenants", mock.Anything, storage.Page{Skip: 0, Limit: storage.DefaultLimit}).
		Return([]model.Tenant{}, int64(0), nil)

	rec := ts.request(http.MethodGet, "/tenants")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body Envelope[TenantResponse]
	decodeBody(t, rec, &body)
	assert.NotNil(t, body.Items)
	assert.Empty(t, body.Items)
	assert.Equal(t, storage.DefaultLimit, body.Limit)
	assert.False(t, body.HasMore)
}

func TestListTenants_LastPage(t *testing.T) {
	ts := newTestServer(t)
	tenants := []model.Tenant{*model.NewTenant()}
	ts.repo.On("ListTenants", mock.Anything, storage.Page{Skip: 4, Limit: 5}).
		Return(tenants, int64(5), nil)

	rec := ts.request(http.MethodGet, "/tenants?skip=4&limit=5")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body Envelope[TenantResponse]
	decodeBody(t, rec, &body)
	assert.Len(t, body.Items, 1)
	assert.False(t, body.HasMore)
}

func TestListTenants_LimitTooLarge(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/tenants?limit=501")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListTenants", mock.Anything, mock.Anything)
}

func TestListTenants_NegativeSkip(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/tenants?skip=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListTenants", mock.Anything, mock.Anything)
}

func TestListTenants_ZeroLimit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/tenants?limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListTenants", mock.Anything, mock.Anything)
}

func TestGetTenant_Found(t *testing.T) {
	ts := newTestServer(t)
	tenant := model.NewTenant()
	ts.repo.On("FindTenantByID", mock.Anything, tenant.ID).Return(tenant, nil)

	rec := ts.request(http.MethodGet, "/tenants/"+tenant.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	var body TenantResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, tenant.ID, body.ID)
	assert.Equal(t, tenant.Name, body.Name)
}

func TestGetTenant_NotFound(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.repo.On("FindTenantByID", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: record not found", apperrors.ErrNotFound))

	rec := ts.request(http.MethodGet, "/tenants/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestGetTenant_BadUUID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/tenants/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "FindTenantByID", mock.Anything, mock.Anything)
}

func TestListTenants_DatabaseError(t *testing.T) {
	ts := newTestServer(t)
	ts.repo.On("ListTenants", mock.Anything, mock.Anything).
		Return(nil, int64(0), fmt.Errorf("%w: boom", apperrors.ErrDatabase))

	rec := ts.request(http.MethodGet, "/tenants")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "database error", body["error"])
}

func TestListTenants_Unavailable(t *testing.T) {
	ts := newTestServer(t)
	ts.repo.On("ListTenants", mock.Anything, mock.Anything).
		Return(nil, int64(0), fmt.Errorf("%w: too many connections", apperrors.ErrUnavailable))

	rec := ts.request(http.MethodGet, "/tenants")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "dependency unavailable", body["error"])
}
