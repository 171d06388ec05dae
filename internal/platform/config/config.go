package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Backend drivers.
const (
	DriverREST  = "rest"
	DriverPgSQL = "pgsql"
	DriverBolt  = "bolt"
)

// Config holds application configuration.
type Config struct {
	// Engine
	TaxRate          decimal.Decimal
	BalanceTolerance domain.Money
	CurrencySymbol   string
	PostingRules     accounting.PostingRules

	// Backend collaborator
	BackendDriver       string `validate:"oneof=rest pgsql bolt"`
	BackendURL          string `validate:"omitempty,url"`
	BackendTimeout      time.Duration
	BackendClientID     string
	BackendClientSecret string
	BackendTokenURL     string `validate:"omitempty,url"`
	DatabaseURL         string `validate:"required_if=BackendDriver pgsql"`
	EnableDBCheck       bool
	MigrationsPath      string
	BoltPath            string `validate:"required_if=BackendDriver bolt"`

	// HTTP
	Port               string `validate:"required,numeric"`
	IsProduction       bool
	JWTSecret          string `validate:"required,min=16"`
	JWTIssuer          string
	APIKeyHash         string
	RateLimit          string `validate:"required"`
	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

var validate = validator.New()

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TAX_RATE", "0.15")
	v.SetDefault("BALANCE_TOLERANCE", "0.01")
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.SetDefault("POSTING_RULES_FILE", "")
	v.SetDefault("BACKEND_DRIVER", DriverREST)
	v.SetDefault("BACKEND_URL", "http://localhost:5000")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("BACKEND_CLIENT_ID", "")
	v.SetDefault("BACKEND_CLIENT_SECRET", "")
	v.SetDefault("BACKEND_TOKEN_URL", "")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("BOLT_PATH", "ledger.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "ledger-engine")
	v.SetDefault("API_KEY_HASH", "")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	taxRate, err := decimal.NewFromString(v.GetString("TAX_RATE"))
	if err != nil || taxRate.IsNegative() {
		return nil, fmt.Errorf("invalid TAX_RATE %q", v.GetString("TAX_RATE"))
	}
	cfg.TaxRate = taxRate

	tolerance, err := domain.NewMoneyFromString(v.GetString("BALANCE_TOLERANCE"))
	if err != nil || tolerance.IsNegative() {
		return nil, fmt.Errorf("invalid BALANCE_TOLERANCE %q", v.GetString("BALANCE_TOLERANCE"))
	}
	cfg.BalanceTolerance = tolerance
	cfg.CurrencySymbol = v.GetString("CURRENCY_SYMBOL")

	cfg.PostingRules = accounting.DefaultPostingRules()
	if path := v.GetString("POSTING_RULES_FILE"); path != "" {
		rules, err := LoadPostingRules(path)
		if err != nil {
			return nil, err
		}
		cfg.PostingRules = rules
	}

	cfg.BackendDriver = strings.ToLower(v.GetString("BACKEND_DRIVER"))
	cfg.BackendURL = strings.TrimRight(v.GetString("BACKEND_URL"), "/")
	if cfg.BackendDriver == DriverREST && cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required for the %s backend driver", DriverREST)
	}
	backendTimeoutStr := v.GetString("BACKEND_TIMEOUT")
	cfg.BackendTimeout, err = time.ParseDuration(backendTimeoutStr)
	if err != nil || cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for BACKEND_TIMEOUT ('%s'). Defaulting to %s.\n", backendTimeoutStr, cfg.BackendTimeout)
	}
	cfg.BackendClientID = v.GetString("BACKEND_CLIENT_ID")
	cfg.BackendClientSecret = v.GetString("BACKEND_CLIENT_SECRET")
	cfg.BackendTokenURL = v.GetString("BACKEND_TOKEN_URL")
	if cfg.BackendClientID != "" && cfg.BackendTokenURL == "" {
		log.Println("Warning: BACKEND_CLIENT_ID set without BACKEND_TOKEN_URL. Backend requests will not be authenticated.")
	}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.BoltPath = v.GetString("BOLT_PATH")

	cfg.Port = v.GetString("PORT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.APIKeyHash = v.GetString("API_KEY_HASH")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
