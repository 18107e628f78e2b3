package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

func TestListThreads_FilterPassthrough(t *testing.T) {
	ts := newTestServer(t)
	tenantID := uuid.New()
	expectedFilter := storage.ThreadFilter{
		TenantID: &tenantID,
		Channel:  model.ChannelWhatsApp,
		Status:   model.ThreadStatusOpen,
	}
	ts.repo.On("ListThreads", mock.Anything, expectedFilter, storage.Page{Skip: 0, Limit: storage.DefaultLimit}).
		Return([]model.Thread{}, int64(0), nil)

	target := fmt.Sprintf("/threads?tenant_id=%s&channel=wa&status=open", tenantID)
	rec := ts.request(http.MethodGet, target)
	assert.Equal(t, http.StatusOK, rec.Code)
	ts.repo.AssertExpectations(t)
}

func TestListThreads_EmbeddedCustomer(t *testing.T) {
	ts := newTestServer(t)
	customer := model.NewCustomer()
	thread := model.NewThread(&model.Thread{CustomerID: &customer.ID})
	thread.Customer = customer
	thread.Labels = datatypes.JSON(`["vip","billing"]`)
	ts.repo.On("ListThreads", mock.Anything, storage.ThreadFilter{}, mock.Anything).
		Return([]model.Thread{*thread}, int64(1), nil)

	rec := ts.request(http.MethodGet, "/threads")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body Envelope[ThreadResponse]
	decodeBody(t, rec, &body)
	assert.Len(t, body.Items, 1)
	got := body.Items[0]
	assert.Equal(t, thread.ID, got.ID)
	assert.Equal(t, []string{"vip", "billing"}, got.Labels)
	assert.NotNil(t, got.Customer)
	assert.Equal(t, customer.ID, got.Customer.ID)
	assert.Equal(t, customer.PlatformUserID, got.Customer.PlatformUserID)
}

func TestListThreads_UnknownChannel(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/threads?channel=telegram")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListThreads", mock.Anything, mock.Anything, mock.Anything)
}

func TestListThreads_UnknownStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/threads?status=archived")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListThreads", mock.Anything, mock.Anything, mock.Anything)
}

func TestListThreads_BadTenantID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/threads?tenant_id=not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListThreads", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetThread_Found(t *testing.T) {
	ts := newTestServer(t)
	thread := model.NewThread()
	thread.Labels = nil
	ts.repo.On("FindThreadByID", mock.Anything, thread.ID).Return(thread, nil)

	rec := ts.request(http.MethodGet, "/threads/"+thread.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	var body ThreadResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, thread.ID, body.ID)
	assert.Equal(t, thread.Status, body.Status)
	// Absent labels render as an empty list, never null.
	assert.NotNil(t, body.Labels)
	assert.Empty(t, body.Labels)
}

func TestGetThread_NotFound(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.repo.On("FindThreadByID", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: record not found", apperrors.ErrNotFound))

	rec := ts.request(http.MethodGet, "/threads/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
