package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	storemock "gitlab.com/timkado/api/daisi-supportdesk/internal/storage/mock"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
)

// testServer bundles the router and its mocked dependencies.
type testServer struct {
	echo  *echo.Echo
	repo  *storemock.ReaderMock
	db    *storemock.HealthCheckerMock
	redis *storemock.HealthCheckerMock
}

func newTestServer(t *testing.T) *testServer {
	logger.Log = zaptest.NewLogger(t).Named("test")
	repo := storemock.NewReaderMock()
	db := &storemock.HealthCheckerMock{}
	redis := &storemock.HealthCheckerMock{}
	srv := NewServer(":0", Dependencies{
		Repo:     repo,
		Database: db,
		Redis:    redis,
	}, logger.Log)
	return &testServer{echo: srv.Echo(), repo: repo, db: db, redis: redis}
}

func (ts *testServer) request(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestHandleRoot(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "supportdesk", body["service"])
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, ServiceVersion, body["version"])
}

func TestHandleHealthz_AllOK(t *testing.T) {
	ts := newTestServer(t)
	ts.db.On("Ping", mock.Anything).Return(nil)
	ts.redis.On("Ping", mock.Anything).Return(nil)

	rec := ts.request(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.Checks["database"])
	assert.Equal(t, "ok", body.Checks["redis"])
	ts.db.AssertExpectations(t)
	ts.redis.AssertExpectations(t)
}

func TestHandleHealthz_DatabaseDown(t *testing.T) {
	ts := newTestServer(t)
	ts.db.On("Ping", mock.Anything).Return(errors.New("connection refused"))
	ts.redis.On("Ping", mock.Anything).Return(nil)

	rec := ts.request(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body HealthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "error", body.Checks["database"])
	assert.Equal(t, "ok", body.Checks["redis"])
}

func TestHandleHealthz_RedisDown(t *testing.T) {
	ts := newTestServer(t)
	ts.db.On("Ping", mock.Anything).Return(nil)
	ts.redis.On("Ping", mock.Anything).Return(errors.New("dial tcp: i/o timeout"))

	rec := ts.request(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body HealthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "ok", body.Checks["database"])
	assert.Equal(t, "error", body.Checks["redis"])
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-abc-123")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDGenerated(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
