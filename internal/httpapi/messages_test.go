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

func TestListMessages_FilterPassthrough(t *testing.T) {
	ts := newTestServer(t)
	threadID := uuid.New()
	expectedFilter := storage.MessageFilter{ThreadID: &threadID, Direction: model.DirectionInbound}
	ts.repo.On("ListMessages", mock.Anything, expectedFilter, storage.Page{Skip: 0, Limit: storage.DefaultLimit}).
		Return([]model.Message{}, int64(0), nil)

	target := fmt.Sprintf("/messages?thread_id=%s&direction=inbound", threadID)
	rec := ts.request(http.MethodGet, target)
	assert.Equal(t, http.StatusOK, rec.Code)
	ts.repo.AssertExpectations(t)
}

func TestListMessages_UnknownDirection(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/messages?direction=sideways")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.repo.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetMessage_EmbeddedThread(t *testing.T) {
	ts := newTestServer(t)
	thread := model.NewThread()
	message := model.NewMessage(&model.Message{ThreadID: thread.ID})
	message.Thread = thread
	ts.repo.On("FindMessageByID", mock.Anything, message.ID).Return(message, nil)

	rec := ts.request(http.MethodGet, "/messages/"+message.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	var body MessageResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, message.ID, body.ID)
	assert.Equal(t, message.Direction, body.Direction)
	assert.NotNil(t, body.Thread)
	assert.Equal(t, thread.ID, body.Thread.ID)
	assert.Equal(t, thread.Channel, body.Thread.Channel)
}

func TestGetMessage_NotFound(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.repo.On("FindMessageByID", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: record not found", apperrors.ErrNotFound))

	rec := ts.request(http.MethodGet, "/messages/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
