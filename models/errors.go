package models

// Error codes carried in [ErrorResponse.Code].
const (
	CodeUploadFailed    = "UPLOAD_FAILED"
	CodeAccessDenied    = "ACCESS_DENIED"
	CodeVersionMismatch = "VERSION_MISMATCH"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUploadNotFound  = "UPLOAD_NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body written for every failed request that
// reaches the application layer.
type ErrorResponse struct {
	// Code is a stable machine readable error identifier, e.g. UPLOAD_FAILED.
	Code string `json:"code"`

	// Subject names the entity the error refers to (the resolved file name
	// for upload failures).
	Subject string `json:"subject,omitempty"`

	// Detail is a human-readable description of the cause.
	Detail string `json:"detail,omitempty"`
}

// Error implements the error interface so that decoded responses can be
// returned directly by clients.
func (e ErrorResponse) Error() string {
	msg := e.Code
	if e.Subject != "" {
		msg += " [" + e.Subject + "]"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
