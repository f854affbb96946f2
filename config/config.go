package config

import (
	"log"
	"os"
	"time"

	"siddeshlogistics/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL    string
	MongoURL       string
	MongoDB        string
	DBType         string
	MigrationsPath string
	Port           string

	BillPrefix     string
	PDFPrefix      string
	PDFSavePath    string
	DefaultOwnerID string

	JWTSecret string
	JWTTTL    time.Duration

	R2 utils.R2Config
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		MongoDB:        getEnv("MONGO_DB", "siddeshlogistics"),
		DBType:         getEnv("DB_TYPE", "mongo"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://db/migrations"),
		Port:           getEnv("PORT", "8080"),
		BillPrefix:     getEnv("BILL_PREFIX", "SL"),
		PDFPrefix:      getEnv("PDF_PREFIX", "SIDDESH_LOGISTICS"),
		PDFSavePath:    os.Getenv("PDF_SAVE_PATH"),
		DefaultOwnerID: getEnv("DEFAULT_OWNER_ID", "default"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         24 * time.Hour,
		R2: utils.R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			Bucket:          os.Getenv("R2_BUCKET"),
			PublicURL:       os.Getenv("R2_PUBLIC_URL"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		},
	}

	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			log.Printf("[WARN] invalid JWT_TTL %q, keeping %s", raw, cfg.JWTTTL)
		} else {
			cfg.JWTTTL = ttl
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
