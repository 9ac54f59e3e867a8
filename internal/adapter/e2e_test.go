package adapter

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/go-upload-keeper/internal/handler/http"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the real router over a file store in a temp dir.
func newTestServer(t *testing.T) (*httptest.Server, service.AuthService) {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey: "sign-key",
			TokenIssuer:  config.DefaultTokenIssuer,
			InternalKey:  "peer",
			APIVersion:   "v1",
			Version:      "1.0.0",
		},
		Storage: config.Storage{Uploads: config.Uploads{Dir: t.TempDir(), CleanupTimeout: time.Minute}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0"},
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, nil, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv, services.AuthService
}

func TestUploadRoundTrip(t *testing.T) {
	srv, auth := newTestServer(t)

	token, err := auth.CreateToken(context.Background(), "ci", []string{models.PermissionDeploy}, time.Hour)
	require.NoError(t, err)

	a, err := NewHTTPUploadAdapter(config.ClientAdapter{
		HTTPAddress: srv.URL,
		Token:       token.SignedString,
		InternalKey: "peer",
		APIVersion:  "v1",
	}, logger.Nop())
	require.NoError(t, err)

	path := writeTempFile(t, "local.jar", "jar-bytes")

	public, err := a.Upload(context.Background(), "releases/app 1.0.jar", path, false)
	require.NoError(t, err)

	internal, err := a.Upload(context.Background(), "", path, true)
	require.NoError(t, err)

	assert.NotEqual(t, public.UploadKey, internal.UploadKey)

	file, err := a.Info(context.Background(), public.UploadKey)
	require.NoError(t, err)
	assert.Equal(t, "releases/app 1.0.jar", file.Name)
	assert.Equal(t, int64(len("jar-bytes")), file.Size)

	file, err = a.Info(context.Background(), internal.UploadKey)
	require.NoError(t, err)
	assert.Equal(t, "local.jar", file.Name)
}

func TestUploadRoundTrip_KeepsPercentInName(t *testing.T) {
	srv, _ := newTestServer(t)

	a, err := NewHTTPUploadAdapter(config.ClientAdapter{
		HTTPAddress: srv.URL,
		InternalKey: "peer",
	}, logger.Nop())
	require.NoError(t, err)

	path := writeTempFile(t, "local.jar", "x")

	for _, name := range []string{"a%41.zip", "100%25.zip", "dir/50%.zip"} {
		resp, err := a.Upload(context.Background(), name, path, true)
		require.NoError(t, err, name)

		file, err := a.Info(context.Background(), resp.UploadKey)
		require.NoError(t, err, name)
		assert.Equal(t, name, file.Name)
	}
}

func TestUploadRoundTrip_Rejected(t *testing.T) {
	srv, auth := newTestServer(t)

	readOnly, err := auth.CreateToken(context.Background(), "viewer", []string{"read"}, time.Hour)
	require.NoError(t, err)

	path := writeTempFile(t, "local.jar", "x")

	tests := []struct {
		name     string
		cfg      config.ClientAdapter
		internal bool
		wantErr  error
	}{
		{name: "no token", cfg: config.ClientAdapter{HTTPAddress: srv.URL}, wantErr: ErrUnauthorized},
		{name: "no deploy permission", cfg: config.ClientAdapter{HTTPAddress: srv.URL, Token: readOnly.SignedString}, wantErr: ErrForbidden},
		{name: "wrong internal key", cfg: config.ClientAdapter{HTTPAddress: srv.URL, InternalKey: "guess"}, internal: true, wantErr: ErrForbidden},
		{name: "wrong api version", cfg: config.ClientAdapter{HTTPAddress: srv.URL, InternalKey: "peer", APIVersion: "v2"}, internal: true, wantErr: ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPUploadAdapter(tt.cfg, logger.Nop())
			require.NoError(t, err)

			_, err = a.Upload(context.Background(), "app.jar", path, tt.internal)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = os.Stat(path)
	require.NoError(t, err)
}
