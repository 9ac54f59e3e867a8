package utils

import "github.com/google/uuid"

// UploadKeys hands out upload keys. Keys are UUIDv7 so a directory listing
// of the upload store sorts by creation time.
type UploadKeys struct{}

func NewUploadKeys() UploadKeys {
	return UploadKeys{}
}

func (UploadKeys) Generate() string {
	key, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return key.String()
}

// NewTraceID returns a random id for requests that arrive without one.
func NewTraceID() string {
	return uuid.NewString()
}
