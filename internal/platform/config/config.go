package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	defaultBatchLockTTL  = 2 * time.Minute
	rateOverridePrefix   = "DEPRECIATION_RATE_"
	defaultRateLimit     = "100-M"
	defaultMigrationsDir = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	DBMaxConns         int32 // 0 keeps the pgx default
	JWTSecret          string
	MigrationsPath     string
	RedisAddress       string // empty disables the batch run lock
	BatchLockTTL       time.Duration
	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	// BootstrapWorkplaceID and BootstrapAdminUserID seed a workplace with an
	// admin member at startup. Both must be set.
	BootstrapWorkplaceID string
	BootstrapAdminUserID string

	// DepreciationRates is the category default rate table with any overrides applied.
	DepreciationRates accounting.RateTable
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_MAX_CONNS", 0)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsDir)
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("BATCH_LOCK_TTL", defaultBatchLockTTL.String())
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("BOOTSTRAP_WORKPLACE_ID", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_USER_ID", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:     viper.GetInt32("DB_MAX_CONNS"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		RedisAddress:   viper.GetString("REDIS_ADDRESS"),
		RateLimit:      viper.GetString("RATE_LIMIT"),

		BootstrapWorkplaceID: viper.GetString("BOOTSTRAP_WORKPLACE_ID"),
		BootstrapAdminUserID: viper.GetString("BOOTSTRAP_ADMIN_USER_ID"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Falling back to the in-memory store.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	lockTTLStr := viper.GetString("BATCH_LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = defaultBatchLockTTL
		log.Printf("Warning: Invalid value for BATCH_LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL)
	}
	cfg.BatchLockTTL = lockTTL

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DepreciationRates = accounting.DefaultRateTable().WithOverrides(loadRateOverrides())

	return cfg, nil
}

// loadRateOverrides reads DEPRECIATION_RATE_<CATEGORY> values. Unparseable or
// negative values are skipped with a warning.
func loadRateOverrides() map[domain.AssetCategory]decimal.Decimal {
	overrides := make(map[domain.AssetCategory]decimal.Decimal)
	for _, category := range domain.AssetCategories {
		key := rateOverridePrefix + string(category)
		raw := strings.TrimSpace(viper.GetString(key))
		if raw == "" {
			continue
		}
		rate, err := decimal.NewFromString(raw)
		if err != nil || rate.IsNegative() {
			log.Printf("Warning: Invalid value for %s ('%s'). Keeping the default rate.\n", key, raw)
			continue
		}
		overrides[category] = rate
	}
	return overrides
}
