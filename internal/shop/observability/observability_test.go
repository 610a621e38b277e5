package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("debug")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("bogus")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestFromContextDefaultsToNop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))

	logger := zap.NewExample()
	require.Same(t, logger, FromContext(WithLogger(context.Background(), logger)))
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	router := chi.NewRouter()
	router.Use(InjectLogger(zap.New(core)))
	router.Use(RequestLogger())
	router.Get("/catalog/{id}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog/e1", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("inside").Len())

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	fields := completed[0].ContextMap()
	require.Equal(t, int64(http.StatusTeapot), fields["status"])
	require.Equal(t, "/catalog/{id}", fields["route"])
	require.Equal(t, true, fields["htmx"])
	require.Equal(t, zapcore.WarnLevel, completed[0].Level)
}

func TestRecoveryReturns500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	handler := InjectLogger(zap.New(core))(Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestMetricsWithNoopMeter(t *testing.T) {
	t.Parallel()

	m := NewMetrics(noop.NewMeterProvider().Meter("test"), nil)
	require.NotPanics(t, func() {
		m.RecordEvent(context.Background(), "search", 3)
		m.RecordOverlayOpen(context.Background(), "e1")
	})

	var nilMetrics *Metrics
	require.NotPanics(t, func() {
		nilMetrics.RecordEvent(context.Background(), "reset", 0)
		nilMetrics.RecordOverlayOpen(context.Background(), "e1")
	})
}
