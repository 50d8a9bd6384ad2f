package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"automation-srv/pkg/log"
	"automation-srv/pkg/minio"
	"automation-srv/pkg/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct{ pingErr error }

func (f fakeRedis) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (f fakeRedis) Get(context.Context, string) (string, error)                   { return "", nil }
func (f fakeRedis) Delete(context.Context, ...string) error                       { return nil }
func (f fakeRedis) Exists(context.Context, string) (bool, error)                  { return false, nil }
func (f fakeRedis) Close() error                                                  { return nil }
func (f fakeRedis) Ping(context.Context) error                                    { return f.pingErr }

type fakeProducer struct{ healthErr error }

func (f fakeProducer) Publish(_, _ []byte) error { return nil }
func (f fakeProducer) Close() error              { return nil }
func (f fakeProducer) HealthCheck() error        { return f.healthErr }

type fakeMinIO struct{ healthErr error }

func (f fakeMinIO) Connect(context.Context) error              { return nil }
func (f fakeMinIO) HealthCheck(context.Context) error          { return f.healthErr }
func (f fakeMinIO) Close() error                               { return nil }
func (f fakeMinIO) EnsureBucket(context.Context, string) error { return nil }
func (f fakeMinIO) UploadFile(context.Context, *minio.UploadRequest) (*minio.FileInfo, error) {
	return &minio.FileInfo{}, nil
}

type readiness bool

func (r readiness) IsReady() bool { return bool(r) }

func newTestServer(t *testing.T, redisErr error, rabbit, consumer bool) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, err := New(Config{
		Logger:      log.NewNop(),
		Port:        8081,
		Mode:        gin.TestMode,
		PostgresDB:  db,
		RedisClient: fakeRedis{pingErr: redisErr},
		RabbitMQ:    readiness(rabbit),
		Consumer:    readiness(consumer),
	})
	require.NoError(t, err)
	return srv, mock
}

func serve(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestHealthAndLive(t *testing.T) {
	srv, _ := newTestServer(t, nil, true, true)

	assert.Equal(t, http.StatusOK, serve(srv, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(srv, "/live").Code)
}

func TestReadyCheck(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		srv, mock := newTestServer(t, nil, true, true)
		mock.ExpectPing()

		w := serve(srv, "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis down", func(t *testing.T) {
		srv, mock := newTestServer(t, errors.New("refused"), true, true)
		mock.ExpectPing()

		w := serve(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body.Data.(map[string]any)
		assert.Equal(t, statusDisconnected, data["redis"])
		assert.Equal(t, statusConnected, data["database"])
	})

	t.Run("consumer not subscribed", func(t *testing.T) {
		srv, mock := newTestServer(t, nil, true, false)
		mock.ExpectPing()

		assert.Equal(t, http.StatusServiceUnavailable, serve(srv, "/ready").Code)
	})

	t.Run("postgres down", func(t *testing.T) {
		srv, mock := newTestServer(t, nil, true, true)
		mock.ExpectPing().WillReturnError(errors.New("conn closed"))

		assert.Equal(t, http.StatusServiceUnavailable, serve(srv, "/ready").Code)
	})
}

func TestReadyCheck_OptionalBackends(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectPing()

	srv, err := New(Config{
		Logger:        log.NewNop(),
		Port:          8081,
		Mode:          gin.TestMode,
		PostgresDB:    db,
		RedisClient:   fakeRedis{},
		RabbitMQ:      readiness(true),
		Consumer:      readiness(true),
		KafkaProducer: fakeProducer{},
		MinIOClient:   fakeMinIO{healthErr: errors.New("no route to host")},
	})
	require.NoError(t, err)

	w := serve(srv, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	var body response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body.Data.(map[string]any)
	assert.Equal(t, statusConnected, data["kafka"])
	assert.Equal(t, statusDisconnected, data["minio"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil, true, true)
	w := serve(srv, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), Mode: gin.TestMode})
	assert.Error(t, err)
}
