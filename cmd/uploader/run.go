package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-upload-keeper/internal/adapter"
)

var errUsage = errors.New("usage: uploader [flags] <file>")

type options struct {
	name     string
	internal bool
	infoKey  string
}

// run uploads the single file named in args and prints its upload key, or
// prints upload info as JSON when opts.infoKey is set.
func run(ctx context.Context, uploadAdapter adapter.UploadAdapter, out io.Writer, opts options, args []string) error {
	if opts.infoKey != "" {
		file, err := uploadAdapter.Info(ctx, opts.infoKey)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	}

	if len(args) != 1 {
		return errUsage
	}

	resp, err := uploadAdapter.Upload(ctx, opts.name, args[0], opts.internal)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, resp.UploadKey)
	return err
}
