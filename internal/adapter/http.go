package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	publicUploadRoute   = "/{version}/upload/{name}"
	internalUploadRoute = "/{version}/upload/internal/{name}"
	uploadInfoRoute     = "/{version}/uploads/{key}"

	internalKeyHeader = "X-Internal-Key"
)

type httpUploadAdapter struct {
	client *utils.HTTPClient

	apiVersion  string
	token       string
	internalKey string

	logger *logger.Logger
}

// NewHTTPUploadAdapter constructs an HTTP/REST implementation of
// [UploadAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPUploadAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UploadAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = config.DefaultClientAPIVersion
	}

	return &httpUploadAdapter{
		client:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiVersion:  apiVersion,
		token:       strings.TrimSpace(cfg.Token),
		internalKey: cfg.InternalKey,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [UploadAdapter]. It POSTs the file as the multipart
// field "file" to /{version}/upload/{name} (or the internal route).
func (h *httpUploadAdapter) Upload(ctx context.Context, fileName, path string, internal bool) (models.UploadResponse, error) {
	route := publicUploadRoute
	if internal {
		route = internalUploadRoute
	}

	h.logger.Debug().
		Str("name", fileName).
		Str("path", path).
		Bool("internal", internal).
		Msg("uploading file")

	resp, err := h.request(ctx, internal).
		SetFile(models.UploadFileParamName, path).
		SetPathParam("version", h.apiVersion).
		SetRawPathParam("name", escapeFileName(fileName)).
		Post(route)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var uploadResp models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &uploadResp); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}
	if uploadResp.UploadKey == "" {
		return models.UploadResponse{}, ErrEmptyUploadKey
	}

	return uploadResp, nil
}

// Info implements [UploadAdapter]. It GETs /{version}/uploads/{key}.
func (h *httpUploadAdapter) Info(ctx context.Context, key string) (models.UploadedFile, error) {
	resp, err := h.request(ctx, true).
		SetPathParam("version", h.apiVersion).
		SetPathParam("key", key).
		Get(uploadInfoRoute)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("upload info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadedFile{}, err
	}

	var file models.UploadedFile
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.UploadedFile{}, fmt.Errorf("decode upload info response: %w", err)
	}

	return file, nil
}

// request attaches the internal key for internal calls and the bearer token
// otherwise.
func (h *httpUploadAdapter) request(ctx context.Context, internal bool) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if internal {
		return req.SetHeader(internalKeyHeader, h.internalKey)
	}
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// escapeFileName escapes every segment of a slash separated file name.
func escapeFileName(name string) string {
	segments := strings.Split(name, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
