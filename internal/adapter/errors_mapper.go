package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	cause := responseCause(resp)

	var errResp models.ErrorResponse
	if errors.As(cause, &errResp) && errResp.Code == models.CodeUploadFailed {
		return fmt.Errorf("%w: %w", ErrUploadFailed, cause)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, cause)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, cause)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, cause)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, cause)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, cause)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, cause)
	default:
		return fmt.Errorf("http %d: %w", resp.StatusCode(), cause)
	}
}

// responseCause decodes the JSON error body. Bodies of other shapes are
// returned as plain text.
func responseCause(resp *resty.Response) error {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Code != "" {
		return errResp
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return errors.New(body)
}
