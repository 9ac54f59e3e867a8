package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/mock"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAPIVersion  = "v1"
	testInternalKey = "peer-secret"
	testToken       = "good-token"
)

type testMocks struct {
	upload  *mock.MockUploadService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

// newTestHandler returns a Handler for API version v1 with an internal key
// configured and every service mocked.
func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		upload:  mock.NewMockUploadService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			UploadService:  m.upload,
			AuthService:    m.auth,
			AppInfoService: m.appInfo,
		},
		apiVersion:  testAPIVersion,
		internalKey: testInternalKey,
		logger:      logger.Nop(),
	}

	return h, m
}

// expectDeployToken makes testToken parse into a token with the deploy
// permission.
func (m *testMocks) expectDeployToken() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{
		Subject:     "ci",
		Permissions: []string{models.PermissionDeploy},
	}, nil).AnyTimes()
}

func newMultipartBody(t *testing.T, field, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func newUploadRequest(t *testing.T, target, fileName, content string) *http.Request {
	t.Helper()

	body, contentType := newMultipartBody(t, models.UploadFileParamName, fileName, content)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)

	return req
}

func newPublicUploadRequest(t *testing.T, target, fileName, content string) *http.Request {
	t.Helper()

	req := newUploadRequest(t, target, fileName, content)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func newInternalUploadRequest(t *testing.T, target, fileName, content string) *http.Request {
	t.Helper()

	req := newUploadRequest(t, target, fileName, content)
	req.Header.Set(internalKeyHeader, testInternalKey)
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
