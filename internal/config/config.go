package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Dataset source kinds
const (
	SourceSynthetic = "synthetic"
	SourceFixture   = "fixture"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Dataset   DatasetConfig
	Report    ReportConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// DatasetConfig selects where the engagement records come from.
// The dataset is loaded once at startup and never modified.
type DatasetConfig struct {
	// Source is "synthetic" (seeded generator) or "fixture" (YAML file)
	Source string
	// Seed drives the synthetic generator; the same seed always yields the same records
	Seed int64
	// Count is the number of synthetic records
	Count int
	// StartDate is the first possible contract date (YYYY-MM-DD), empty for the generator default
	StartDate string
	// SpanDays is the number of days contract dates are spread over
	SpanDays int
	// FixturePath is the YAML file read when Source is "fixture"
	FixturePath string
	// StageOrder is the default pipeline table order: "lexicographic" or "funnel"
	StageOrder string
}

// ReportConfig controls the scheduled summary job
type ReportConfig struct {
	Enabled bool
	// Cron is a robfig/cron expression, e.g. "@every 1h" or "0 0 * * * *"
	Cron string
	// Timeout bounds a single run (seconds)
	Timeout int
	// RunOnStartup runs the job once right after the scheduler starts
	RunOnStartup bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests
	// Use "*" to allow all origins (not recommended for production)
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	// AllowCredentials indicates whether credentials are allowed
	AllowCredentials bool
	// MaxAge is the max age (in seconds) for preflight cache
	MaxAge int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	// FrameOptions sets the X-Frame-Options header (DENY, SAMEORIGIN, or empty to disable)
	FrameOptions       string
	ContentTypeNosniff bool
	XSSProtection      string
	ReferrerPolicy     string
	PermissionsPolicy  string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the limit per client IP
	RequestsPerMinute int
	// WhitelistIPs is a list of IPs that bypass rate limiting
	WhitelistIPs []string
	// WhitelistPaths is a list of paths that bypass rate limiting (e.g., /health).
	// A trailing /* matches every path under the prefix.
	WhitelistPaths []string
	// TrustProxyHeaders keys clients by X-Forwarded-For / X-Real-IP instead of
	// the connection address. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// TimeoutDuration returns the per-run timeout as duration
func (r *ReportConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// Flags returns the command line flags understood by Load.
// Flag names are config keys, so --dataset.seed overrides dataset.seed.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("app.port", 8080, "HTTP listen port")
	fs.String("dataset.source", SourceSynthetic, "record source: synthetic or fixture")
	fs.Int64("dataset.seed", 42, "synthetic generator seed")
	fs.Int("dataset.count", 30, "number of synthetic records")
	fs.String("dataset.fixturePath", "", "YAML fixture read when dataset.source is fixture")
	fs.String("dataset.stageOrder", "lexicographic", "default pipeline order: lexicographic or funnel")
	fs.String("logging.level", "info", "log level")
	fs.Bool("report.enabled", true, "run the scheduled summary job")
	return fs
}

// Load loads configuration from file, environment variables and, when flags is
// non-nil, the flags that were explicitly set on the command line.
// Precedence: flags > environment > config file > defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindChangedFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindChangedFlags binds only flags set by the user so that flag defaults do
// not shadow config file and environment values
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.Visit(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceSynthetic:
		if c.Dataset.Count < 0 {
			return fmt.Errorf("dataset.count must not be negative, got %d", c.Dataset.Count)
		}
		if c.Dataset.SpanDays < 0 {
			return fmt.Errorf("dataset.spanDays must not be negative, got %d", c.Dataset.SpanDays)
		}
	case SourceFixture:
		if c.Dataset.FixturePath == "" {
			return fmt.Errorf("dataset.fixturePath is required when dataset.source is %q", SourceFixture)
		}
	default:
		return fmt.Errorf("unsupported dataset.source %q (want %q or %q)", c.Dataset.Source, SourceSynthetic, SourceFixture)
	}

	switch c.Dataset.StageOrder {
	case "", "lexicographic", "funnel":
	default:
		return fmt.Errorf("unsupported dataset.stageOrder %q", c.Dataset.StageOrder)
	}

	if c.Report.Enabled && c.Report.Cron == "" {
		return fmt.Errorf("report.cron is required when report.enabled is true")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Customer Engagement Dashboard")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Dataset defaults match the synthetic generator
	v.SetDefault("dataset.source", SourceSynthetic)
	v.SetDefault("dataset.seed", 42)
	v.SetDefault("dataset.count", 30)
	v.SetDefault("dataset.startDate", "2024-01-01")
	v.SetDefault("dataset.spanDays", 250)
	v.SetDefault("dataset.fixturePath", "")
	v.SetDefault("dataset.stageOrder", "lexicographic")

	// Summary report defaults
	v.SetDefault("report.enabled", true)
	v.SetDefault("report.cron", "@every 1h")
	v.SetDefault("report.timeout", 30)
	v.SetDefault("report.runOnStartup", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"X-Request-ID"})
	v.SetDefault("cors.allowCredentials", false)
	v.SetDefault("cors.maxAge", 300) // 5 minutes

	// Security header defaults
	v.SetDefault("security.enableHSTS", false) // enable in production with HTTPS
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/ready", "/swagger/*"})
	v.SetDefault("rateLimit.trustProxyHeaders", false)
}
