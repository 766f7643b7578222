package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/songjournal/internal/index"
	"github.com/MrSnakeDoc/songjournal/internal/journal"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	AllowedHosts    []string           // Host headers allowed to access the API
	AllowedCIDRS    []string           // IPs allowed to access ops endpoints
	TrustProxy      bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Journal         *journal.Journal   // Application state: the ordered entries
	Admitter        *journal.Admitter  // Turns submissions into entries
	Moods           *index.MoodCatalog // Preset mood tags
	RedisClient     *redis.Client      // Redis client connection (nil unless the redis backend is used)
	OEmbedEndpoint  string             // Metadata endpoint, reported by /infra
	MetadataCache   bool               // Metadata cache enabled, reported by /infra
	ReloadTrigger   chan struct{}      // Channel to trigger manual moods reload (nil if no moods file)
	RateLimitBurst  int                // POST /api/entries burst per client IP
	RateLimitPerMin int                // POST /api/entries refill per client IP per minute
}
