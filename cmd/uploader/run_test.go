package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/internal/adapter"
	"github.com/MKhiriev/go-upload-keeper/internal/mock"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockUploadAdapter(ctrl)
	ctx := context.Background()

	m.EXPECT().Upload(ctx, "releases/app.jar", "build/app.jar", true).
		Return(models.UploadResponse{UploadKey: "K1"}, nil)

	var out bytes.Buffer
	err := run(ctx, m, &out, options{name: "releases/app.jar", internal: true}, []string{"build/app.jar"})

	require.NoError(t, err)
	assert.Equal(t, "K1\n", out.String())
}

func TestRun_UploadFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockUploadAdapter(ctrl)
	ctx := context.Background()
	uploadErr := errors.Join(adapter.ErrUploadFailed, models.ErrorResponse{Code: models.CodeUploadFailed})

	m.EXPECT().Upload(ctx, "", "app.jar", false).Return(models.UploadResponse{}, uploadErr)

	var out bytes.Buffer
	err := run(ctx, m, &out, options{}, []string{"app.jar"})

	assert.ErrorIs(t, err, adapter.ErrUploadFailed)
	assert.Empty(t, out.String())
}

func TestRun_Usage(t *testing.T) {
	m := mock.NewMockUploadAdapter(gomock.NewController(t))

	for _, args := range [][]string{nil, {"a.jar", "b.jar"}} {
		err := run(context.Background(), m, &bytes.Buffer{}, options{}, args)
		assert.ErrorIs(t, err, errUsage)
	}
}

func TestRun_Info(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockUploadAdapter(ctrl)
	ctx := context.Background()

	m.EXPECT().Info(ctx, "K1").Return(models.UploadedFile{Key: "K1", Name: "app.jar", Size: 3}, nil)

	var out bytes.Buffer
	err := run(ctx, m, &out, options{infoKey: "K1"}, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"key": "K1"`)
	assert.Contains(t, out.String(), `"name": "app.jar"`)
}
