package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// OAuthProvider holds the client registration for one identity provider.
// A provider with an empty ClientID is treated as disabled. The URL fields
// replace the public endpoints when set, e.g. for GitHub Enterprise.
type OAuthProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
}

type OAuth struct {
	Google             OAuthProvider
	Facebook           OAuthProvider
	GitHub             OAuthProvider
	FrontendSuccessURL string
	FrontendFailureURL string
}

type Seed struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	DataDir       string
}

type Config struct {
	ServerPort           int
	LogLevel             string
	DB                   DB
	Redis                Redis
	MinIO                MinIO
	OAuth                OAuth
	Seed                 Seed
	JWTSecretKey         string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	AllowedOrigins       []string
	MaxUploadSize        int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "portfolio"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func LoadMinIO() MinIO {
	endpoint := getEnv("MINIO_ENDPOINT", "localhost:9000")
	useSSL := getEnvBool("MINIO_USE_SSL", false)
	scheme := "http://"
	if useSSL {
		scheme = "https://"
	}
	return MinIO{
		Endpoint:   endpoint,
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     useSSL,
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  strings.TrimSuffix(getEnv("MINIO_PUBLIC_URL", scheme+endpoint), "/"),
	}
}

func loadProvider(prefix string) OAuthProvider {
	return OAuthProvider{
		ClientID:     getEnv(prefix+"_CLIENT_ID", ""),
		ClientSecret: getEnv(prefix+"_CLIENT_SECRET", ""),
		RedirectURL:  getEnv(prefix+"_REDIRECT_URL", ""),
		AuthURL:      getEnv(prefix+"_AUTH_URL", ""),
		TokenURL:     getEnv(prefix+"_TOKEN_URL", ""),
		UserInfoURL:  getEnv(prefix+"_USERINFO_URL", ""),
	}
}

func LoadOAuth() OAuth {
	return OAuth{
		Google:             loadProvider("OAUTH_GOOGLE"),
		Facebook:           loadProvider("OAUTH_FACEBOOK"),
		GitHub:             loadProvider("OAUTH_GITHUB"),
		FrontendSuccessURL: getEnv("OAUTH_FRONTEND_SUCCESS_URL", "http://localhost:5173/login"),
		FrontendFailureURL: getEnv("OAUTH_FRONTEND_FAILURE_URL", "http://localhost:5173/login"),
	}
}

func LoadSeed() Seed {
	return Seed{
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password123"),
		DataDir:       getEnv("SEED_DATA_DIR", "data"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:           getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DB:                   LoadDB(),
		Redis:                LoadRedis(),
		MinIO:                LoadMinIO(),
		OAuth:                LoadOAuth(),
		Seed:                 LoadSeed(),
		JWTSecretKey:         getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration:  parseDuration(getEnv("ACCESS_TOKEN_DURATION", "24h"), 24*time.Hour),
		RefreshTokenDuration: parseDuration(getEnv("REFRESH_TOKEN_DURATION", "168h"), 168*time.Hour),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
		}),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}
}
