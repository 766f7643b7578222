package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrSnakeDoc/songjournal/internal/oembed"
	"github.com/MrSnakeDoc/songjournal/internal/store"
)

// Storage backends for the journal slot.
const (
	BackendRedis  = "redis"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Journal
	StorageBackend string         // "redis" | "file" | "memory"
	StorageKey     string         // slot name (redis key), ex: "songJournal.entries"
	StorageFile    string         // slot path for the file backend
	Location       *time.Location // calendar used for the "today" view
	TimeZone       string         // name Location was loaded from

	// Metadata lookup
	OEmbedEndpoint string        // ex: "https://open.spotify.com/oembed"
	OEmbedTimeout  time.Duration // 0 = wait until the request settles
	MetadataCache  bool          // cache lookups in redis (redis backend only)
	CacheTTL       time.Duration // TTL of cached metadata

	// Moods
	MoodsFile      string        // optional YAML file with preset moods (empty = built-in list)
	ReloadInterval time.Duration // interval to reload the moods file (default: 1h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// HTTP access
	CORSOrigin      string   // optional, "*" or a single origin
	AllowedHosts    []string // optional, restrict access to specific Host headers
	AllowedCIDRS    []string // optional, restrict access to ops endpoints (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy      bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	RateLimitBurst  int      // POST /api/entries burst per client IP
	RateLimitPerMin int      // POST /api/entries refill per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("JOURNAL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("JOURNAL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("JOURNAL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("JOURNAL_PRETTY_LOG", true),

		// Journal
		StorageBackend: strings.ToLower(getenv("JOURNAL_STORAGE_BACKEND", BackendRedis)),
		StorageKey:     getenv("JOURNAL_STORAGE_KEY", store.DefaultSlotKey),
		StorageFile:    getenv("JOURNAL_STORAGE_FILE", "/data/journal.json"),
		TimeZone:       getenv("JOURNAL_TIMEZONE", "Local"),

		// Metadata
		OEmbedEndpoint: getenv("JOURNAL_OEMBED_ENDPOINT", oembed.DefaultEndpoint),
		OEmbedTimeout:  mustDuration("JOURNAL_OEMBED_TIMEOUT", 5*time.Second),
		MetadataCache:  mustBool("JOURNAL_METADATA_CACHE", true),
		CacheTTL:       mustDuration("JOURNAL_METADATA_CACHE_TTL", 24*time.Hour),

		// Moods
		MoodsFile:      getenv("JOURNAL_MOODS_FILE", ""), // Optional, empty = built-in moods
		ReloadInterval: mustDuration("JOURNAL_MOODS_RELOAD_INTERVAL", time.Hour),

		// Redis settings
		RedisAddr:             getenv("JOURNAL_REDIS_ADDR", ""),
		RedisUser:             getenv("JOURNAL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("JOURNAL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("JOURNAL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("JOURNAL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		CORSOrigin:      getenv("JOURNAL_CORS_ORIGIN", ""),
		AllowedHosts:    splitAndTrim(getenv("JOURNAL_ALLOWED_HOSTS", "")),
		AllowedCIDRS:    parseAllowedIPs(getenv("JOURNAL_ALLOWED_CIDRS", "")),
		TrustProxy:      mustBool("JOURNAL_TRUST_PROXY", false),
		RateLimitBurst:  getenvInt("JOURNAL_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("JOURNAL_RATE_LIMIT_PER_MIN", 30),
	}

	switch cfg.StorageBackend {
	case BackendRedis:
		cfg.RedisAddr = requireEnv("JOURNAL_REDIS_ADDR")
	case BackendFile, BackendMemory:
		// Redis only backs the metadata cache when it is the storage backend
		cfg.MetadataCache = false
	default:
		panic(fmt.Sprintf("❌ FATAL: JOURNAL_STORAGE_BACKEND must be one of redis, file, memory (got %q)", cfg.StorageBackend))
	}

	loc, err := loadLocation(cfg.TimeZone)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid JOURNAL_TIMEZONE %q: %v", cfg.TimeZone, err))
	}
	cfg.Location = loc

	// Validate Redis password configuration
	if cfg.StorageBackend == BackendRedis && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: JOURNAL_REDIS_PASSWORD is required when JOURNAL_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// LoadDotEnv imports variables from an env file before Load runs.
// Variables already set in the process win, and a missing file is not an error.
// An empty path means ".env" in the working directory.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// loadLocation accepts "Local", "UTC" or an IANA name like "Europe/Paris".
func loadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local", "local":
		return time.Local, nil
	default:
		return time.LoadLocation(name)
	}
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
