package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"enginex/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"publicBaseUrl": "",
			"minio": map[string]any{
				"accessKey": "",
				"useSSL":    false,
			},
		},
		"redis": map[string]any{
			"viewTTL": "24h",
		},
		"scheduler": map[string]any{
			"purgeSpec": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "STORAGE_MINIO_ACCESSKEY", want: "storage.minio.accessKey"},
		{envKey: "STORAGE_MINIO_USESSL", want: "storage.minio.useSSL"},
		{envKey: "REDIS_VIEWTTL", want: "redis.viewTTL"},
		{envKey: "SCHEDULER_PURGESPEC", want: "scheduler.purgeSpec"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "LISTING__FEATUREDLIMIT", want: "listing.featuredlimit"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  port: 8080
redis:
  addr: localhost:6379
  viewTTL: 24h
listing:
  featuredLimit: 12
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))
	t.Setenv("REDIS_VIEWTTL", "90m")
	t.Setenv("LISTING_FEATUREDLIMIT", "6")

	cfg, err := LoadWithEnv[Config]("test", relativeTo(t, dir))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 90*time.Minute, cfg.Redis.ViewTTL)
	assert.Equal(t, 6, cfg.Listing.FeaturedLimit)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", relativeTo(t, t.TempDir()))

	assert.ErrorContains(t, err, "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Listing: &ListingConfig{DefaultPageSize: 50, MaxPageSize: 10}}

	applyDefaults(cfg)

	assert.Equal(t, defaultFeaturedLimit, cfg.Listing.FeaturedLimit)
	assert.Equal(t, 50, cfg.Listing.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Listing.MaxPageSize)
	assert.Equal(t, defaultExpiryWarningWindow, cfg.Listing.ExpiryWarningWindow)
	assert.Equal(t, constants.ListingImagesBucket, cfg.Storage.Bucket)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Storage.MaxUploadSize)
	assert.Equal(t, defaultViewTTL, cfg.Redis.ViewTTL)
	assert.NotNil(t, cfg.Scheduler)
	assert.Equal(t, 6, cfg.Verification.CodeLength)
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.Port = 8080
	cfg.HTTP.PublicBaseURL = "https://enginex.ma"
	cfg.SecretKey.Access = "change-me-access"
	cfg.SecretKey.Refresh = "change-me-refresh"
	cfg.Storage = &StorageConfig{Provider: constants.StorageProviderBlob, BlobURL: "mem://"}
	cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderLocal}

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no pubsub section", mutate: func(cfg *Config) { cfg.PubSub = nil }},
		{
			name:    "port",
			mutate:  func(cfg *Config) { cfg.HTTP.Port = 0 },
			wantErr: "http.port 0 is out of range",
		},
		{
			name:    "worker shares the api port",
			mutate:  func(cfg *Config) { cfg.Worker = &WorkerConfig{Port: 8080} },
			wantErr: "worker.port must differ",
		},
		{
			name:    "relative base url",
			mutate:  func(cfg *Config) { cfg.HTTP.PublicBaseURL = "/listing" },
			wantErr: "must be an absolute URL",
		},
		{
			name:    "shared secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = cfg.SecretKey.Access },
			wantErr: "must differ",
		},
		{
			name:    "placeholder secrets in production",
			mutate:  func(cfg *Config) { cfg.Env.Env = constants.EnvProduction },
			wantErr: "placeholder signing secrets",
		},
		{
			name:    "minio without endpoint",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = constants.StorageProviderMinio },
			wantErr: "storage.minio.endpoint is required",
		},
		{
			name:    "unknown storage",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = "s3" },
			wantErr: `storage.provider "s3"`,
		},
		{
			name:    "unknown pubsub",
			mutate:  func(cfg *Config) { cfg.PubSub.Provider = "kafka" },
			wantErr: `pubsub.provider "kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = -1
	cfg.Storage.Provider = "ftp"

	err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "http.port")
	assert.ErrorContains(t, err, "storage.provider")
}

// relativeTo returns dir relative to the working directory, the form LoadWithEnv expects.
func relativeTo(t *testing.T, dir string) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	return rel
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable-gap",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}
