package config

import (
	"net/url"
	"strings"

	"enginex/internal/domain/constants"
	apperrors "enginex/internal/errors"

	"github.com/pkg/errors"
)

// insecureSecretPrefix marks the placeholder secrets shipped in config.yaml.
const insecureSecretPrefix = "change-me"

// Validate reports every setting the process cannot start with. Optional sections are checked
// only when they name a provider.
func (cfg *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.Errorf(format, args...))
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		fail("http.port %d is out of range", cfg.HTTP.Port)
	}
	if u, err := url.Parse(cfg.HTTP.PublicBaseURL); cfg.HTTP.PublicBaseURL != "" && (err != nil || u.Scheme == "" || u.Host == "") {
		fail("http.publicBaseUrl %q must be an absolute URL", cfg.HTTP.PublicBaseURL)
	}

	if cfg.Worker != nil && cfg.Worker.Port != 0 && cfg.Worker.Port == cfg.HTTP.Port {
		fail("worker.port must differ from http.port")
	}

	access, refresh := cfg.SecretKey.Access, cfg.SecretKey.Refresh
	switch {
	case access == "" || refresh == "":
		fail("secretKey.access and secretKey.refresh are required")
	case access == refresh:
		fail("secretKey.access and secretKey.refresh must differ")
	case cfg.Env.Env == constants.EnvProduction &&
		(strings.HasPrefix(access, insecureSecretPrefix) || strings.HasPrefix(refresh, insecureSecretPrefix)):
		fail("placeholder signing secrets are not allowed in production")
	}

	if cfg.Auth != nil && cfg.Auth.MaxActiveSessions < 0 {
		fail("auth.maxActiveSessions must not be negative")
	}

	if cfg.Storage != nil {
		switch cfg.Storage.Provider {
		case constants.StorageProviderMinio:
			if cfg.Storage.Minio.Endpoint == "" {
				fail("storage.minio.endpoint is required for the minio provider")
			}
		case constants.StorageProviderBlob:
			if cfg.Storage.BlobURL == "" {
				fail("storage.blobUrl is required for the blob provider")
			}
		default:
			fail("storage.provider %q is not one of minio, blob", cfg.Storage.Provider)
		}
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "", constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
		default:
			fail("pubsub.provider %q is not one of local, google", cfg.PubSub.Provider)
		}
	}

	return apperrors.Combine("invalid configuration", errs...)
}
