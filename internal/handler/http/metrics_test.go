package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	m, err := metrics.New()
	require.NoError(t, err)
	m.ObserveUpload(time.Millisecond, 7, nil)
	h.metrics = m

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{name: "internal key", key: testInternalKey, wantStatus: http.StatusOK},
		{name: "wrong key", key: "nope", wantStatus: http.StatusForbidden},
		{name: "no key", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.key != "" {
				req.Header.Set(internalKeyHeader, tt.key)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "upload_keeper_uploaded_bytes_total 7")
			}
		})
	}
}

func TestMetricsRoute_DisabledWithoutMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set(internalKeyHeader, testInternalKey)

	rec := serve(h, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}
