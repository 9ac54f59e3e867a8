package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line flags from flag.CommandLine into a partial
// [StructuredConfig]. Fields of unset flags stay zero so that they do not
// shadow other sources during merging.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var internalKey string
	var apiVersion string
	var appVersion string
	var logLevel string
	var uploadDir string
	var cleanupTimeout time.Duration
	var cleanupInterval time.Duration
	var requestTimeout time.Duration
	var maxUploadSize int64
	var adapterAddress string
	var adapterToken string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&internalKey, "internal-key", "", "Shared key of trusted internal callers")
	flag.StringVar(&apiVersion, "api-version", "", "Accepted API version path segment")
	flag.StringVar(&appVersion, "version", "", "Application version")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&uploadDir, "upload-dir", "", "Upload repository directory")
	flag.DurationVar(&cleanupTimeout, "cleanup-timeout", 0, "How long uploads are kept (e.g., 5m)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Period of expired upload sweeps (e.g., 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max request body size in bytes, 0 for unlimited")
	flag.StringVar(&adapterAddress, "server", "", "Upload server address for the uploader")
	flag.StringVar(&adapterToken, "token", "", "Bearer token for the uploader")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			InternalKey:  internalKey,
			APIVersion:   apiVersion,
			Version:      appVersion,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Uploads: Uploads{
				Dir:            uploadDir,
				CleanupTimeout: cleanupTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Token:       adapterToken,
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
