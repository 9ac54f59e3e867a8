package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/mock"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUploadSvc(t *testing.T) (UploadService, *mock.MockUploadRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUploadRepository(ctrl)

	return NewUploadService(repo, nil, logger.Nop()), repo
}

// ── name resolution ──────────────────────────────────────────────────────────

func TestUploadService_Upload_UsesPathFileName(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()

	repo.EXPECT().Put(ctx, "releases/app-1.0.jar", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content io.Reader) (string, error) {
			b, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "bytes", string(b))
			return "K1", nil
		})

	resp, err := svc.Upload(ctx, models.UploadRequest{
		PathFileName:     "releases/app-1.0.jar",
		OriginalFileName: "local.jar",
		Content:          strings.NewReader("bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.UploadResponse{UploadKey: "K1"}, resp)
}

func TestUploadService_Upload_FallsBackToOriginalFileName(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()

	repo.EXPECT().Put(ctx, "local.jar", gomock.Any()).Return("K2", nil)

	resp, err := svc.Upload(ctx, models.UploadRequest{
		OriginalFileName: "local.jar",
		Content:          strings.NewReader("bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "K2", resp.UploadKey)
}

func TestUploadService_Upload_PathNameIsNotSanitized(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()

	repo.EXPECT().Put(ctx, "../weird name.tar.gz", gomock.Any()).Return("K3", nil)

	_, err := svc.Upload(ctx, models.UploadRequest{
		PathFileName: "../weird name.tar.gz",
		Content:      strings.NewReader(""),
	})
	require.NoError(t, err)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestUploadService_Upload_RepositoryFailure(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()
	storeErr := errors.New("disk full")

	repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).Return("", storeErr).Times(1)

	resp, err := svc.Upload(ctx, models.UploadRequest{
		PathFileName: "app.jar",
		Content:      strings.NewReader("bytes"),
	})

	require.Error(t, err)
	assert.Empty(t, resp.UploadKey)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, storeErr)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, models.CodeUploadFailed, uploadErr.Code)
	assert.Equal(t, "app.jar", uploadErr.Subject)
	assert.Equal(t, "disk full", uploadErr.Detail)
}

func TestUploadService_Upload_FailureSubjectIsResolvedName(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()

	repo.EXPECT().Put(ctx, "local.jar", gomock.Any()).Return("", errors.New("io error"))

	_, err := svc.Upload(ctx, models.UploadRequest{
		OriginalFileName: "local.jar",
		Content:          strings.NewReader("bytes"),
	})

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "local.jar", uploadErr.Subject)
	assert.Equal(t, "io error", uploadErr.Detail)
}

func TestUploadService_Upload_EveryCallReachesRepository(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).Return("K1", nil),
		repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).Return("K2", nil),
	)

	first, err := svc.Upload(ctx, models.UploadRequest{PathFileName: "app.jar", Content: strings.NewReader("a")})
	require.NoError(t, err)
	second, err := svc.Upload(ctx, models.UploadRequest{PathFileName: "app.jar", Content: strings.NewReader("a")})
	require.NoError(t, err)

	assert.NotEqual(t, first.UploadKey, second.UploadKey)
}

// ── logging ──────────────────────────────────────────────────────────────────

func TestUploadService_Upload_Logging(t *testing.T) {
	tests := []struct {
		name      string
		putKey    string
		putErr    error
		wantLines []string
	}{
		{
			name:   "success",
			putKey: "K1",
			wantLines: []string{
				`"level":"info","name":"app.jar","message":"upload received"`,
				`"level":"info","name":"app.jar","key":"K1","size":0,"message":"upload stored"`,
			},
		},
		{
			name:   "failure",
			putErr: errors.New("disk full"),
			wantLines: []string{
				`"level":"info","name":"app.jar","message":"upload received"`,
				`"level":"warn","error":"disk full","name":"app.jar","message":"upload failed"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUploadSvc(t)

			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).Return(tt.putKey, tt.putErr)

			_, _ = svc.Upload(ctx, models.UploadRequest{PathFileName: "app.jar", Content: strings.NewReader("x")})

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(tt.wantLines))
			for i, want := range tt.wantLines {
				assert.Contains(t, lines[i], want)
			}
		})
	}
}

func TestUploadService_Upload_Metrics(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	repo := mock.NewMockUploadRepository(gomock.NewController(t))
	svc := NewUploadService(repo, m, logger.Nop())
	ctx := context.Background()

	readAll := func(key string, err error) func(context.Context, string, io.Reader) (string, error) {
		return func(_ context.Context, _ string, content io.Reader) (string, error) {
			_, _ = io.Copy(io.Discard, content)
			return key, err
		}
	}
	gomock.InOrder(
		repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).DoAndReturn(readAll("K1", nil)),
		repo.EXPECT().Put(ctx, "app.jar", gomock.Any()).DoAndReturn(readAll("", errors.New("disk full"))),
	)

	_, err = svc.Upload(ctx, models.UploadRequest{PathFileName: "app.jar", Content: strings.NewReader("12345")})
	require.NoError(t, err)
	_, err = svc.Upload(ctx, models.UploadRequest{PathFileName: "app.jar", Content: strings.NewReader("678")})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `upload_keeper_uploads_total{result="stored"} 1`)
	assert.Contains(t, body, `upload_keeper_uploads_total{result="failed"} 1`)
	assert.Contains(t, body, "upload_keeper_uploaded_bytes_total 5")
	assert.Contains(t, body, "upload_keeper_upload_duration_seconds_count 2")
}

func TestUploadService_Info(t *testing.T) {
	svc, repo := newTestUploadSvc(t)
	ctx := context.Background()
	want := models.UploadedFile{Key: "K1", Name: "app.jar", Size: 3}

	repo.EXPECT().Get(ctx, "K1").Return(want, nil)
	repo.EXPECT().Get(ctx, "gone").Return(models.UploadedFile{}, store.ErrUploadNotFound)

	got, err := svc.Info(ctx, "K1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Info(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrUploadNotFound)
}

func TestUploadError_Error(t *testing.T) {
	err := NewUploadError("app.jar", errors.New("disk full"))

	assert.Equal(t, "upload failed: app.jar: disk full", err.Error())
	assert.Equal(t, models.ErrorResponse{
		Code:    models.CodeUploadFailed,
		Subject: "app.jar",
		Detail:  "disk full",
	}, err.Response())
}
