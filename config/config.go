package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Geocache backends.
const (
	GeocacheBackendLRU   = "lru"
	GeocacheBackendRedis = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Providers
	Gemini    GeminiConfig
	Places    PlacesConfig
	Geocoding GeocodingConfig
	Nominatim NominatimConfig

	// Place search
	Search   SearchConfig
	Geocache GeocacheConfig
	Redis    RedisConfig

	// Itinerary import and export
	Import         ImportConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type PlacesConfig struct {
	APIKey       string
	LanguageCode string
	RegionCode   string
	Timeout      time.Duration
}

type GeocodingConfig struct {
	APIKey   string
	Language string
	Timeout  time.Duration
}

type NominatimConfig struct {
	Enabled     bool
	URL         string
	UserAgent   string
	Email       string
	Language    string
	MinInterval time.Duration
	Timeout     time.Duration
}

type SearchConfig struct {
	ThrottleWindow time.Duration
	MaxClients     int
}

type GeocacheConfig struct {
	Backend string
	Size    int
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type ImportConfig struct {
	MaxTextChars      int
	MaxScreenshots    int
	MaxImageBytes     int
	MaxImageDimension int
	FetchTimeout      time.Duration
	FetchMaxBytes     int64
	PageMaxChars      int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: trip-planner.yaml, searched in ., ./config and /etc/trip-planner/.
func Load() (*Config, error) {
	viper.SetConfigName("trip-planner")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/trip-planner/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.MaxBodyBytes = viper.GetInt64("http_server.max_body_bytes")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Providers
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.RetryAttempts = viper.GetInt("gemini.retry_attempts")
	cfg.Gemini.RetryDelay = viper.GetDuration("gemini.retry_delay")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.Places.APIKey = viper.GetString("places.api_key")
	cfg.Places.LanguageCode = viper.GetString("places.language_code")
	cfg.Places.RegionCode = viper.GetString("places.region_code")
	cfg.Places.Timeout = viper.GetDuration("places.timeout")
	if key := viper.GetString("google_places_api_key"); key != "" {
		cfg.Places.APIKey = key
	}

	cfg.Geocoding.APIKey = viper.GetString("geocoding.api_key")
	cfg.Geocoding.Language = viper.GetString("geocoding.language")
	cfg.Geocoding.Timeout = viper.GetDuration("geocoding.timeout")
	if key := viper.GetString("google_geocoding_api_key"); key != "" {
		cfg.Geocoding.APIKey = key
	}
	// A single Maps key usually covers both APIs.
	if cfg.Geocoding.APIKey == "" {
		cfg.Geocoding.APIKey = cfg.Places.APIKey
	}

	cfg.Nominatim.Enabled = viper.GetBool("nominatim.enabled")
	cfg.Nominatim.URL = viper.GetString("nominatim.url")
	cfg.Nominatim.UserAgent = viper.GetString("nominatim.user_agent")
	cfg.Nominatim.Email = viper.GetString("nominatim.email")
	cfg.Nominatim.Language = viper.GetString("nominatim.language")
	cfg.Nominatim.MinInterval = viper.GetDuration("nominatim.min_interval")
	cfg.Nominatim.Timeout = viper.GetDuration("nominatim.timeout")

	// Place search
	cfg.Search.ThrottleWindow = viper.GetDuration("search.throttle_window")
	cfg.Search.MaxClients = viper.GetInt("search.max_clients")

	cfg.Geocache.Backend = strings.ToLower(viper.GetString("geocache.backend"))
	cfg.Geocache.Size = viper.GetInt("geocache.size")
	cfg.Geocache.TTL = viper.GetDuration("geocache.ttl")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Prefix = viper.GetString("redis.prefix")
	if pw := viper.GetString("redis_password"); pw != "" {
		cfg.Redis.Password = pw
	}

	// Import and export
	cfg.Import.MaxTextChars = viper.GetInt("import.max_text_chars")
	cfg.Import.MaxScreenshots = viper.GetInt("import.max_screenshots")
	cfg.Import.MaxImageBytes = viper.GetInt("import.max_image_bytes")
	cfg.Import.MaxImageDimension = viper.GetInt("import.max_image_dimension")
	cfg.Import.FetchTimeout = viper.GetDuration("import.fetch_timeout")
	cfg.Import.FetchMaxBytes = viper.GetInt64("import.fetch_max_bytes")
	cfg.Import.PageMaxChars = viper.GetInt("import.page_max_chars")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.max_body_bytes", 64<<20)
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "60s")
	viper.SetDefault("gemini.retry_attempts", 2)
	viper.SetDefault("gemini.retry_delay", "1s")
	viper.SetDefault("places.timeout", "10s")
	viper.SetDefault("geocoding.timeout", "10s")
	viper.SetDefault("nominatim.enabled", true)
	viper.SetDefault("nominatim.url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("nominatim.user_agent", "trip-planner/1.0")
	viper.SetDefault("nominatim.min_interval", "1100ms")
	viper.SetDefault("nominatim.timeout", "10s")

	viper.SetDefault("search.throttle_window", "1s")
	viper.SetDefault("search.max_clients", 1000)
	viper.SetDefault("geocache.backend", GeocacheBackendLRU)
	viper.SetDefault("geocache.size", 5000)
	viper.SetDefault("geocache.ttl", "24h")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.prefix", "trip-planner:geocode:")

	viper.SetDefault("import.max_text_chars", 20000)
	viper.SetDefault("import.max_screenshots", 10)
	viper.SetDefault("import.max_image_bytes", 10<<20)
	viper.SetDefault("import.max_image_dimension", 2000)
	viper.SetDefault("import.fetch_timeout", "15s")
	viper.SetDefault("import.fetch_max_bytes", 2<<20)
	viper.SetDefault("import.page_max_chars", 30000)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	switch c.Geocache.Backend {
	case GeocacheBackendLRU, GeocacheBackendRedis:
	default:
		return fmt.Errorf("geocache.backend must be %q or %q, got %q", GeocacheBackendLRU, GeocacheBackendRedis, c.Geocache.Backend)
	}
	if c.Geocache.Backend == GeocacheBackendRedis && c.Redis.Addr == "" {
		return errors.New("redis.addr is required for the redis geocache backend")
	}
	if c.Search.ThrottleWindow < 0 {
		return errors.New("search.throttle_window must not be negative")
	}
	if c.Nominatim.Enabled && c.Nominatim.UserAgent == "" {
		return errors.New("nominatim.user_agent is required by the Nominatim usage policy")
	}
	if c.Import.MaxScreenshots < 0 || c.Import.MaxImageBytes < 0 || c.Import.MaxTextChars < 0 {
		return errors.New("import limits must not be negative")
	}
	return nil
}
