package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	GigaChat GigaChatConfig
	Mechanic MechanicConfig
	Catalog  CatalogConfig
	Search   SearchConfig
	Lead     LeadConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

// Enabled reports whether an API key was supplied.
func (c GigaChatConfig) Enabled() bool {
	return c.APIKey != ""
}

type MechanicConfig struct {
	BudgetFloor float64
	// ReferenceYear is used to compute vehicle age. Zero means the current year.
	ReferenceYear int
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

type SearchConfig struct {
	PageSize    int
	MaxPageSize int
}

type LeadConfig struct {
	WhatsAppNumber string
	FeatureFee     string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	jwtExp := getEnvInt("JWT_EXPIRATION_HOURS", 24)
	cacheTTL := getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300)
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	budgetFloor, err := strconv.ParseFloat(getEnv("MECHANIC_BUDGET_FLOOR", "10000"), 64)
	if err != nil {
		budgetFloor = 10000
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "carmarket"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Mechanic: MechanicConfig{
			BudgetFloor:   budgetFloor,
			ReferenceYear: getEnvInt("MECHANIC_REFERENCE_YEAR", 0),
		},
		Catalog: CatalogConfig{
			CacheTTL: time.Duration(cacheTTL) * time.Second,
		},
		Search: SearchConfig{
			PageSize:    getEnvInt("SEARCH_PAGE_SIZE", 6),
			MaxPageSize: getEnvInt("SEARCH_MAX_PAGE_SIZE", 50),
		},
		Lead: LeadConfig{
			WhatsAppNumber: getEnv("LEAD_WHATSAPP_NUMBER", "5519993626264"),
			FeatureFee:     getEnv("LEAD_FEATURE_FEE", "15,00"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
