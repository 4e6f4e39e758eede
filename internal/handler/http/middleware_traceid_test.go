package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mw := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	return rec
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := executeWithTraceID(h, "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := executeWithTraceID(h, "")

	got := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := newTestHandler(newTestServices())

	first := executeWithTraceID(h, "").Header().Get(traceIDHeader)
	second := executeWithTraceID(h, "").Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}
