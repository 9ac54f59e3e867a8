// Command token issues a bearer token for the public upload route, signed
// with the server's token sign key.
//
//	token -token-sign-key $KEY -subject ci -ttl 24h -permissions deploy
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/models"
)

func main() {
	subject := flag.String("subject", "", "Token subject (caller identity)")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	permissions := flag.String("permissions", models.PermissionDeploy, "Comma separated permissions")

	log := logger.NewConsoleLogger("go-upload-token", os.Stderr)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.TokenSignKey == "" {
		log.Fatal().Err(config.ErrInvalidAppConfigs).Msg("token sign key is required")
	}

	token, err := service.NewAuthService(cfg.App, log).
		CreateToken(context.Background(), *subject, splitPermissions(*permissions), *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token)
}

func splitPermissions(s string) []string {
	var permissions []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			permissions = append(permissions, p)
		}
	}
	return permissions
}
