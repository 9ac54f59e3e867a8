package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublicUpload_AccessDenied(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setup      func(m *testMocks)
		wantStatus int
	}{
		{
			name:       "no authorization header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer expired",
			setup: func(m *testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "expired").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without deploy permission",
			authHeader: "Bearer read-only",
			setup: func(m *testMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "read-only").
					Return(models.Token{Subject: "viewer", Permissions: []string{"read"}}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			req := newUploadRequest(t, "/v1/upload/app.jar", "app.jar", "x")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), `"code":"ACCESS_DENIED"`)
		})
	}
}

func TestPublicUpload_InternalKeyIsNotEnough(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, newInternalUploadRequest(t, "/v1/upload/app.jar", "app.jar", "x"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInternalUpload_AccessDenied(t *testing.T) {
	tests := []struct {
		name        string
		serverKey   string
		requestKey  string
		bearerToken bool
		wantStatus  int
	}{
		{name: "no key header", serverKey: testInternalKey, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", serverKey: testInternalKey, requestKey: "guess", wantStatus: http.StatusForbidden},
		{name: "key prefix", serverKey: testInternalKey, requestKey: testInternalKey[:4], wantStatus: http.StatusForbidden},
		{name: "route disabled", serverKey: "", requestKey: testInternalKey, wantStatus: http.StatusForbidden},
		{name: "bearer token is not enough", serverKey: testInternalKey, bearerToken: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			h.internalKey = tt.serverKey
			m.expectDeployToken()

			req := newUploadRequest(t, "/v1/upload/internal/app.jar", "app.jar", "x")
			if tt.requestKey != "" {
				req.Header.Set(internalKeyHeader, tt.requestKey)
			}
			if tt.bearerToken {
				req.Header.Set("Authorization", "Bearer "+testToken)
			}

			rec := serve(h, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"ACCESS_DENIED"`)
		})
	}
}

func TestAuth_StoresTokenInContext(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectDeployToken()

	var got models.Token
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetTokenFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer "+testToken)

	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "ci", got.Subject)
}

func TestRequirePermission_WithoutAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.requirePermission(models.PermissionDeploy)(next).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
