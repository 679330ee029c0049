package config

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
)

// Data store providers
const (
	DataStoreProviderPostgres = "postgres"
	DataStoreProviderREST     = "rest"
)

// Object store providers
const (
	ObjectStoreProviderS3   = "s3"
	ObjectStoreProviderBlob = "blob"
)

// Notifier providers
const (
	NotifierProviderEdge     = "edge"
	NotifierProviderResend   = "resend"
	NotifierProviderFirebase = "firebase"
	NotifierProviderLog      = "log"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderInline = "inline"
)

// EnvDevelop is the env name used for local development.
const EnvDevelop = "develop"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// DataStore selects the backend holding slots and loyalty accounts
	DataStore *DataStoreConfig `json:"dataStore" yaml:"dataStore"`

	// ObjectStore configures where finalized assets are uploaded
	ObjectStore *ObjectStoreConfig `json:"objectStore" yaml:"objectStore"`

	// Media configures decoding limits and the output encoding ceiling
	Media *MediaConfig `json:"media" yaml:"media"`

	// Loyalty configures the points and level rules
	Loyalty *LoyaltyConfig `json:"loyalty" yaml:"loyalty"`

	// Notifier configures the outbound points notification channel
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// Retry configures the bounded retry wrapped around object store and notifier calls
	Retry *RetryConfig `json:"retry" yaml:"retry"`

	// Auth configures access token validation
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// PubSub configuration for points event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DataStoreConfig defines the data store backend.
// URL and Key are the hosted project's endpoint and service key (DATA_STORE_URL, DATA_STORE_KEY).
type DataStoreConfig struct {
	Provider string        `json:"provider" yaml:"provider"`
	URL      string        `json:"url" yaml:"url"`
	Key      string        `json:"key" yaml:"key"`
	Schema   string        `json:"schema" yaml:"schema"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// ObjectStoreConfig defines the object store backend.
type ObjectStoreConfig struct {
	Provider string `json:"provider" yaml:"provider"`

	// BucketNames routes each asset category to a bucket (OBJECT_STORE_BUCKET_NAMES=banner=a,product=b)
	BucketNames map[string]string `json:"bucketNames" yaml:"bucketNames"`

	// PublicBaseURL prefixes public object URLs as <base>/<bucket>/<name>.
	// Defaults to <dataStore.url>/storage/v1/object/public, or http://localhost:<port>/assets for a file:// blob bucket.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// S3-compatible endpoint settings (s3 provider)
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	UsePathStyle    bool   `json:"usePathStyle" yaml:"usePathStyle"`

	// BlobURL is a gocloud.dev bucket URL (blob provider), e.g. file:///var/assets or gs://assets
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	CacheControl string `json:"cacheControl" yaml:"cacheControl"`

	// OrphanGracePeriod protects recent uploads that are not yet referenced from cleanup
	OrphanGracePeriod time.Duration `json:"orphanGracePeriod" yaml:"orphanGracePeriod"`
}

// MediaConfig defines the media pipeline tunables.
type MediaConfig struct {
	MaxDimension    int   `json:"maxDimension" yaml:"maxDimension"`
	MaxBytes        int   `json:"maxBytes" yaml:"maxBytes"`
	InitialQuality  int   `json:"initialQuality" yaml:"initialQuality"`
	MinQuality      int   `json:"minQuality" yaml:"minQuality"`
	QualityStep     int   `json:"qualityStep" yaml:"qualityStep"`
	MaxSourcePixels int64 `json:"maxSourcePixels" yaml:"maxSourcePixels"`
}

// LoyaltyConfig defines the points rules.
type LoyaltyConfig struct {
	PointsPerReview int `json:"pointsPerReview" yaml:"pointsPerReview"`
	PointsPerLevel  int `json:"pointsPerLevel" yaml:"pointsPerLevel"`
}

// NotifierConfig defines the outbound notification channel.
type NotifierConfig struct {
	Provider string        `json:"provider" yaml:"provider"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Token    string        `json:"token" yaml:"token"`
	From     string        `json:"from" yaml:"from"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Inline dispatcher sizing (pubsub provider "inline")
	QueueSize int `json:"queueSize" yaml:"queueSize"`
	Workers   int `json:"workers" yaml:"workers"`
}

// RetryConfig defines the bounded retry policy.
type RetryConfig struct {
	Attempts       int           `json:"attempts" yaml:"attempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
}

// AuthConfig defines access token validation
type AuthConfig struct {
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	AdminRole string `json:"adminRole" yaml:"adminRole"`

	// TokenTTL applies to tokens issued locally by the operator CLI
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "inline"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	TopicPrefix     string `json:"topicPrefix" yaml:"topicPrefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATA_STORE_URL -> dataStore.url, OBJECT_STORE_BUCKET_NAMES -> objectStore.bucketNames
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToMapHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is fine; the variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.DataStore == nil {
		cfg.DataStore = &DataStoreConfig{}
	}
	if cfg.DataStore.Provider == "" {
		cfg.DataStore.Provider = DataStoreProviderPostgres
	}
	if cfg.DataStore.Schema == "" {
		cfg.DataStore.Schema = "public"
	}
	if cfg.DataStore.Timeout <= 0 {
		cfg.DataStore.Timeout = 10 * time.Second
	}

	if cfg.ObjectStore == nil {
		cfg.ObjectStore = &ObjectStoreConfig{}
	}
	if len(cfg.ObjectStore.BucketNames) == 0 {
		cfg.ObjectStore.BucketNames = map[string]string{
			"banner":   "portadacategorias",
			"category": "categorias",
			"product":  "productos",
			"review":   "reviews",
		}
	}
	switch {
	case cfg.ObjectStore.PublicBaseURL != "":
	case cfg.DataStore.URL != "":
		cfg.ObjectStore.PublicBaseURL = strings.TrimRight(cfg.DataStore.URL, "/") + "/storage/v1/object/public"
	case cfg.ObjectStore.Provider == ObjectStoreProviderBlob && strings.HasPrefix(cfg.ObjectStore.BlobURL, "file://"):
		// A local bucket is served by the API server itself.
		cfg.ObjectStore.PublicBaseURL = fmt.Sprintf("http://localhost:%d/assets", cmp.Or(cfg.HTTP.Port, 8080))
	}
	if cfg.ObjectStore.CacheControl == "" {
		cfg.ObjectStore.CacheControl = "public, max-age=3600"
	}
	if cfg.ObjectStore.OrphanGracePeriod <= 0 {
		cfg.ObjectStore.OrphanGracePeriod = 10 * time.Minute
	}

	cfg.Media = WithMediaDefaults(cfg.Media)
	cfg.Loyalty = WithLoyaltyDefaults(cfg.Loyalty)
	cfg.Retry = WithRetryDefaults(cfg.Retry)

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{Provider: NotifierProviderLog}
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = 10 * time.Second
	}
	if cfg.Notifier.QueueSize <= 0 {
		cfg.Notifier.QueueSize = 256
	}
	if cfg.Notifier.Workers <= 0 {
		cfg.Notifier.Workers = 2
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AdminRole == "" {
		cfg.Auth.AdminRole = "admin"
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
}

// WithMediaDefaults fills zero media settings with the defaults: 1000px, 200 KiB, quality 85 down to 30.
func WithMediaDefaults(m *MediaConfig) *MediaConfig {
	if m == nil {
		m = &MediaConfig{}
	}
	if m.MaxDimension <= 0 {
		m.MaxDimension = 1000
	}
	if m.MaxBytes <= 0 {
		m.MaxBytes = 200 * 1024
	}
	if m.InitialQuality <= 0 || m.InitialQuality > 100 {
		m.InitialQuality = 85
	}
	if m.MinQuality <= 0 || m.MinQuality > m.InitialQuality {
		m.MinQuality = 30
	}
	if m.QualityStep <= 0 {
		m.QualityStep = 10
	}
	if m.MaxSourcePixels <= 0 {
		m.MaxSourcePixels = 50_000_000
	}

	return m
}

// WithLoyaltyDefaults fills zero loyalty settings: 5 points per review, 100 points per level.
func WithLoyaltyDefaults(l *LoyaltyConfig) *LoyaltyConfig {
	if l == nil {
		l = &LoyaltyConfig{}
	}
	if l.PointsPerReview <= 0 {
		l.PointsPerReview = 5
	}
	if l.PointsPerLevel <= 0 {
		l.PointsPerLevel = 100
	}

	return l
}

// WithRetryDefaults fills zero retry settings: 3 attempts, 200ms doubling up to 2s.
func WithRetryDefaults(r *RetryConfig) *RetryConfig {
	if r == nil {
		r = &RetryConfig{}
	}
	if r.Attempts <= 0 {
		r.Attempts = 3
	}
	if r.InitialBackoff <= 0 {
		r.InitialBackoff = 200 * time.Millisecond
	}
	if r.MaxBackoff <= 0 {
		r.MaxBackoff = 2 * time.Second
	}

	return r
}

// canonicalizeEnvKey maps an env var name onto the YAML key path. Consecutive segments are
// joined greedily so that DATA_STORE_URL resolves to dataStore.url when dataStore exists.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for idx := 0; idx < len(segments); {
		matched, next, width := findExistingSegment(current, segments[idx:])
		if width > 0 {
			canonical = append(canonical, matched)
			current = next
			idx += width

			continue
		}

		canonical = append(canonical, segments[idx])
		current = nil
		idx++
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment returns the existing key matching the longest run of leading segments.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, width int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for end := len(segments); end > 0; end-- {
		needle := normalizeToken(strings.Join(segments[:end], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, end
		}
	}

	return "", nil, 0
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

// stringToMapHookFunc decodes "k=v,k2=v2" into map[string]string.
func stringToMapHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
			return data, nil
		}

		return ParseKeyValueList(data.(string))
	}
}

// ParseKeyValueList parses "k=v,k2=v2". Whitespace around keys and values is ignored.
func ParseKeyValueList(raw string) (map[string]string, error) {
	result := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, errors.Errorf("invalid key=value pair %q", pair)
		}
		result[key] = value
	}

	return result, nil
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
