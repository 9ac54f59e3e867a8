// Command uploader sends a local file to an upload server and prints the
// upload key.
//
//	uploader -server localhost:8080 -token $TOKEN [-name releases/app.jar] app.jar
//	uploader -server localhost:8080 -internal-key $KEY -internal app.jar
//	uploader -server localhost:8080 -internal-key $KEY -info <upload key>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-upload-keeper/internal/adapter"
	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	var opts options
	flag.StringVar(&opts.name, "name", "", "Remote file name (the server uses the local file name when empty)")
	flag.BoolVar(&opts.internal, "internal", false, "Upload through the internal route using the internal key")
	flag.StringVar(&opts.infoKey, "info", "", "Print information about an upload key instead of uploading")

	log := logger.NewConsoleLogger("go-upload-uploader", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	uploadAdapter, err := adapter.NewHTTPUploadAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create upload adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, uploadAdapter, os.Stdout, opts, flag.Args()); err != nil {
		stop()
		log.Fatal().Err(err).Msg("uploader failed")
	}
}
