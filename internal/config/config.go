package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	Wizard   WizardConfig
	Payments PaymentsConfig
}

type ServerConfig struct {
	Port            int
	GinMode         string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	// TrustedProxies lists the IPs/CIDRs whose forwarding headers are honored.
	TrustedProxies []string
}

type LogConfig struct {
	Level string
}

// DynamoDBConfig points at AWS or at a local DynamoDB when Endpoint is set.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BookingsTable   string
	PaymentsTable   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WizardConfig selects where booking wizards live between requests.
type WizardConfig struct {
	Store string
	TTL   time.Duration
}

type PaymentsConfig struct {
	Currency             string
	Mock                 bool
	StripeSecretKey      string
	MercadoPagoToken     string
	SandboxPayerEmail    string
	SandboxPayerTestUser string
}

const (
	WizardStoreRedis  = "redis"
	WizardStoreMemory = "memory"
)

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("DYNAMODB_ENDPOINT", "")
	viper.SetDefault("DYNAMODB_BOOKINGS_TABLE", "bookings")
	viper.SetDefault("DYNAMODB_PAYMENTS_TABLE", "deposit_payments")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("WIZARD_STORE", WizardStoreRedis)
	viper.SetDefault("WIZARD_TTL", "2h")
	viper.SetDefault("PAYMENT_CURRENCY", "eur")
	viper.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	viper.SetDefault("MP_SANDBOX_PAYER_EMAIL", "")
	viper.SetDefault("MP_SANDBOX_TEST_USER_ID", "")

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	wizardTTL, err := time.ParseDuration(viper.GetString("WIZARD_TTL"))
	if err != nil {
		return nil, fmt.Errorf("WIZARD_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetInt("SERVER_PORT"),
			GinMode:         viper.GetString("GIN_MODE"),
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitRPS:    viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:  viper.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies:  splitList(viper.GetString("TRUSTED_PROXIES")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          viper.GetString("AWS_REGION"),
			Endpoint:        viper.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			BookingsTable:   viper.GetString("DYNAMODB_BOOKINGS_TABLE"),
			PaymentsTable:   viper.GetString("DYNAMODB_PAYMENTS_TABLE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Wizard: WizardConfig{
			Store: strings.ToLower(strings.TrimSpace(viper.GetString("WIZARD_STORE"))),
			TTL:   wizardTTL,
		},
		Payments: PaymentsConfig{
			Currency:             strings.ToLower(viper.GetString("PAYMENT_CURRENCY")),
			Mock:                 viper.GetBool("PAYMENT_GATEWAY_MOCK"),
			StripeSecretKey:      viper.GetString("STRIPE_SECRET_KEY"),
			MercadoPagoToken:     viper.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			SandboxPayerEmail:    strings.TrimSpace(viper.GetString("MP_SANDBOX_PAYER_EMAIL")),
			SandboxPayerTestUser: strings.TrimSpace(viper.GetString("MP_SANDBOX_TEST_USER_ID")),
		},
	}

	if cfg.Wizard.Store != WizardStoreRedis && cfg.Wizard.Store != WizardStoreMemory {
		return nil, fmt.Errorf("WIZARD_STORE must be %q or %q, got %q", WizardStoreRedis, WizardStoreMemory, cfg.Wizard.Store)
	}

	for _, p := range cfg.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: %q is neither an IP nor a CIDR", p)
			}
		}
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
