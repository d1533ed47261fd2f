package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"enginex/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultFeaturedLimit       = 12
	defaultPageSize            = 20
	defaultMaxPageSize         = 100
	defaultExpiryWarningWindow = 72 * time.Hour
	defaultSweepBatchSize      = 200
	defaultMaxUploadSize       = 5 << 20
	defaultViewTTL             = 24 * time.Hour
	defaultCodeTTL             = 10 * time.Minute
	defaultCodeLength          = 6
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize accepts echo body-limit values such as "100KB" or "8M".
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicBaseURL is the site origin used in share links and emails.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Listing configuration for publishing, search and expiry
	Listing *ListingConfig `json:"listing" yaml:"listing"`

	// Storage configuration for listing images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Redis configuration for view de-duplication
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Scheduler configuration for background maintenance jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the Pub/Sub push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Mail configuration for transactional emails
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Verification configuration for emailed one-time codes
	Verification *VerificationConfig `json:"verification" yaml:"verification"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int `json:"maxActiveSessions" yaml:"maxActiveSessions"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ListingConfig defines listing publishing and browsing limits
type ListingConfig struct {
	FeaturedLimit   int `json:"featuredLimit" yaml:"featuredLimit"`
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`

	// ExpiryWarningWindow is how long before expiration owners are warned.
	ExpiryWarningWindow time.Duration `json:"expiryWarningWindow" yaml:"expiryWarningWindow"`

	// SweepBatchSize caps rows handled per maintenance run.
	SweepBatchSize int `json:"sweepBatchSize" yaml:"sweepBatchSize"`
}

// StorageConfig defines object storage for listing images
type StorageConfig struct {
	// Provider type: "minio" for S3-compatible storage or "blob" for a gocloud.dev bucket URL
	Provider string `json:"provider" yaml:"provider"`

	Bucket        string `json:"bucket" yaml:"bucket"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`

	Minio MinioConfig `json:"minio" yaml:"minio"`

	// BlobURL is a gocloud.dev URL such as file:///var/lib/enginex/images or mem://
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`
}

type MinioConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
	Region    string `json:"region" yaml:"region"`
	UseSSL    bool   `json:"useSSL" yaml:"useSSL"`
}

// RedisConfig defines the cache connection. An empty Addr disables view de-duplication.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	ViewTTL  time.Duration `json:"viewTTL" yaml:"viewTTL"`
}

// SchedulerConfig defines cron specs (with seconds field) for maintenance jobs
type SchedulerConfig struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	ExpireSpec       string `json:"expireSpec" yaml:"expireSpec"`
	WarnSpec         string `json:"warnSpec" yaml:"warnSpec"`
	SubscriptionSpec string `json:"subscriptionSpec" yaml:"subscriptionSpec"`
	PurgeSpec        string `json:"purgeSpec" yaml:"purgeSpec"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push endpoint process. It listens apart from the API so both run side by side.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// MailConfig defines the transactional email endpoint called by the worker
type MailConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	From     string        `json:"from" yaml:"from"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// VerificationConfig defines emailed one-time code settings
type VerificationConfig struct {
	CodeTTL    time.Duration `json:"codeTTL" yaml:"codeTTL"`
	CodeLength int           `json:"codeLength" yaml:"codeLength"`
}

// LoadWithEnv reads <currEnv>.yaml from the first search directory that has it, then lets environment
// variables override any key. SECTION_KEY maps onto section.key using the YAML spelling of the key.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	fromYAML := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// findConfigFile looks in the working directory first, then in each dir relative to it.
func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, name)}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir, name))
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	// Read replicas are indexed lists, which the env provider cannot express.
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections left out of the YAML file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Listing.FeaturedLimit <= 0 {
		cfg.Listing.FeaturedLimit = defaultFeaturedLimit
	}
	if cfg.Listing.DefaultPageSize <= 0 {
		cfg.Listing.DefaultPageSize = defaultPageSize
	}
	if cfg.Listing.MaxPageSize < cfg.Listing.DefaultPageSize {
		cfg.Listing.MaxPageSize = defaultMaxPageSize
	}
	if cfg.Listing.ExpiryWarningWindow <= 0 {
		cfg.Listing.ExpiryWarningWindow = defaultExpiryWarningWindow
	}
	if cfg.Listing.SweepBatchSize <= 0 {
		cfg.Listing.SweepBatchSize = defaultSweepBatchSize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = constants.ListingImagesBucket
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.ViewTTL <= 0 {
		cfg.Redis.ViewTTL = defaultViewTTL
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}

	if cfg.Verification == nil {
		cfg.Verification = &VerificationConfig{}
	}
	if cfg.Verification.CodeTTL <= 0 {
		cfg.Verification.CodeTTL = defaultCodeTTL
	}
	if cfg.Verification.CodeLength <= 0 {
		cfg.Verification.CodeLength = defaultCodeLength
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// replicasFromEnv collects POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD} for n = 0, 1, ...
// and stops at the first index without a host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
