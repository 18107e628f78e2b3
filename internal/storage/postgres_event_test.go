package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
)

func TestPostgresRepo_ListEvents_OrderedByTs(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()
	tenantID := uuid.New()
	threadID := uuid.New()
	newer := uuid.New()
	older := uuid.New()

	mock.ExpectQuery(`SELECT count(*) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "thread_id", "type", "ts"}).
		AddRow(newer, tenantID, threadID, model.EventAnswerSent, now).
		AddRow(older, tenantID, threadID, model.EventAckSent, now.Add(-time.Minute))
	mock.ExpectQuery(`SELECT * FROM "events" ORDER BY ts DESC LIMIT $1`).
		WithArgs(100).
		WillReturnRows(rows)

	events, total, err := repo.ListEvents(context.Background(), EventFilter{}, DefaultPage())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, events, 2)
	assert.Equal(t, newer, events[0].ID)
	assert.Equal(t, model.EventAnswerSent, events[0].Type)
}

func TestPostgresRepo_ListEvents_ThreadAndTypeFilter(t *testing.T) {
	repo, mock := newTestRepo(t)
	threadID := uuid.New()

	mock.ExpectQuery(`SELECT count(*) FROM "events" WHERE thread_id = $1 AND type = $2`).
		WithArgs(threadID, model.EventUrgentFlagged).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT * FROM "events" WHERE thread_id = $1 AND type = $2 ORDER BY ts DESC LIMIT $3`).
		WithArgs(threadID, model.EventUrgentFlagged, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "thread_id", "type", "ts"}))

	filter := EventFilter{ThreadID: &threadID, Type: model.EventUrgentFlagged}
	events, total, err := repo.ListEvents(context.Background(), filter, DefaultPage())
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, events)
}

func TestPostgresRepo_FindEventByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT * FROM "events" WHERE id = $1 ORDER BY "events"."id" LIMIT $2`).
		WithArgs(id, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	event, err := repo.FindEventByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, event)
}
