package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/minewars/sessiontrack/internal/config"
	"github.com/minewars/sessiontrack/internal/dependencies/clock"
	"github.com/minewars/sessiontrack/internal/dependencies/random"
	"github.com/minewars/sessiontrack/internal/services/catalog"
	"github.com/minewars/sessiontrack/internal/services/identity"
	"github.com/minewars/sessiontrack/internal/services/match"
	"github.com/minewars/sessiontrack/internal/services/stats"
	"github.com/minewars/sessiontrack/internal/storage"
	"github.com/minewars/sessiontrack/internal/storage/memory"
	redisstorage "github.com/minewars/sessiontrack/internal/storage/redis"
	sqlitestorage "github.com/minewars/sessiontrack/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService *identity.Service
	MatchController *match.Controller
	CatalogService  *catalog.Service
	StatsService    *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis", or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case config.StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', or 'sqlite'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random) *App {
	// Create services
	identityService := identity.New(store, clk)
	matchController := match.NewController(store, clk, rnd)
	catalogService := catalog.New(store, clk)
	statsService := stats.New(store, catalogService)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IdentityService: identityService,
		MatchController: matchController,
		CatalogService:  catalogService,
		StatsService:    statsService,
	}
}
