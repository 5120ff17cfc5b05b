package config

import (
	"io/fs"
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "3M"
	defaultDotEnvFile         = ".env"

	EnvProduction = "production"

	// SessionTTL is the fixed lifetime of a session token.
	SessionTTL = 7 * 24 * time.Hour

	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"

	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		// TrustProxy takes the client address from X-Forwarded-For instead of the socket.
		TrustProxy bool `json:"trustProxy" yaml:"trustProxy"`
		Timeouts   struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres PostgresConfig `json:"postgres" yaml:"postgres"`

	Mongo MongoConfig `json:"mongo" yaml:"mongo"`

	Redis RedisConfig `json:"redis" yaml:"redis"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Scorer is the remote classification model.
	Scorer ScorerConfig `json:"scorer" yaml:"scorer"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is "postgres" or "mongo".
	Driver string `json:"driver" yaml:"driver"`

	// OperationTimeout bounds writes that are detached from the request context.
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
}

// PostgresConfig holds the connection and pool settings for the SQL backend.
type PostgresConfig struct {
	Host            string        `json:"host" yaml:"host"`
	Port            string        `json:"port" yaml:"port"`
	UserName        string        `json:"userName" yaml:"userName"`
	Password        string        `json:"password" yaml:"password"`
	Database        string        `json:"database" yaml:"database"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
}

// DSN builds the key/value connection string understood by pgx.
func (p PostgresConfig) DSN() string {
	parts := []string{
		"host=" + p.Host,
		"port=" + p.Port,
		"user=" + p.UserName,
		"password=" + p.Password,
		"dbname=" + p.Database,
	}
	if p.SSLMode != "" {
		parts = append(parts, "sslmode="+p.SSLMode)
	}

	return strings.Join(parts, " ")
}

// MongoConfig holds the settings of the document backend.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// RedisConfig is used by the redis rate-limit backend.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines the limiter backend and its policies
type RateLimitConfig struct {
	// Backend is "memory" or "redis".
	Backend string `json:"backend" yaml:"backend"`

	// KeyPrefix namespaces counters in a shared redis.
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// JanitorInterval is how often the memory backend evicts expired windows.
	JanitorInterval time.Duration `json:"janitorInterval" yaml:"janitorInterval"`

	Global         PolicyConfig `json:"global" yaml:"global"`
	Classification PolicyConfig `json:"classification" yaml:"classification"`
}

// PolicyConfig is one fixed-window policy.
type PolicyConfig struct {
	Limit   int           `json:"limit" yaml:"limit"`
	Window  time.Duration `json:"window" yaml:"window"`
	Message string        `json:"message" yaml:"message"`
}

// ScorerConfig defines the outbound call to the classification model
type ScorerConfig struct {
	URL           string        `json:"url" yaml:"url"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	MaxConcurrent int64         `json:"maxConcurrent" yaml:"maxConcurrent"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether the service runs with env.env=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// SecureCookie reports whether the session cookie must carry the Secure flag.
func (c *Config) SecureCookie() bool {
	return c.Auth.CookieSecure || c.IsProduction()
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be provided")
	}
	if strings.TrimSpace(c.Scorer.URL) == "" {
		return errors.New("scorer.url must be provided")
	}

	if c.Auth.TokenTTL != 0 && c.Auth.TokenTTL != SessionTTL {
		return errors.Errorf("auth.tokenTTL must be %s, got %s", SessionTTL, c.Auth.TokenTTL)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMongo:
	default:
		return errors.Errorf("unsupported storage.driver %q", c.Storage.Driver)
	}

	switch c.RateLimit.Backend {
	case RateLimitBackendMemory, RateLimitBackendRedis:
	default:
		return errors.Errorf("unsupported rateLimit.backend %q", c.RateLimit.Backend)
	}

	for name, policy := range map[string]PolicyConfig{
		"global":         c.RateLimit.Global,
		"classification": c.RateLimit.Classification,
	} {
		if policy.Limit <= 0 || policy.Window <= 0 {
			return errors.Errorf("rateLimit.%s needs a positive limit and window", name)
		}
	}

	return nil
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file. SCORER_MAXCONCURRENT -> scorer.maxConcurrent
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)
			// A scalar must not replace a whole section (e.g. a shell's ENV variable).
			if isSection(existingConfigMap, key) {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// New loads .env, then config.yaml with environment overrides, applies
// defaults and validates the result.
func New() (*Config, error) {
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// loadDotEnv exports the variables of a dotenv file without overriding the
// real environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = SessionTTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "token"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Storage.OperationTimeout == 0 {
		cfg.Storage.OperationTimeout = 5 * time.Second
	}
	if cfg.RateLimit.Backend == "" {
		cfg.RateLimit.Backend = RateLimitBackendMemory
	}
	if cfg.RateLimit.JanitorInterval == 0 {
		cfg.RateLimit.JanitorInterval = time.Minute
	}
	if cfg.Scorer.Timeout == 0 {
		cfg.Scorer.Timeout = 15 * time.Second
	}
	if cfg.Scorer.MaxConcurrent == 0 {
		cfg.Scorer.MaxConcurrent = 32
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
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

func isSection(existing map[string]any, key string) bool {
	current := existing
	for _, segment := range strings.Split(key, ".") {
		value, ok := current[segment]
		if !ok {
			return false
		}
		child, isMap := value.(map[string]any)
		if !isMap {
			return false
		}
		current = child
	}

	return true
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
