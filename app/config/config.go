package config

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB          *sql.DB
	SecretKey   string
	Env         string
	Port        string
	UploadDir   string
	CORSOrigins string
}

var AppConfig *Config

// Load reads configuration from the environment and opens the database pool.
// The signing secret has no default: startup fails without it.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	secret := os.Getenv("ARISTA_SECRET_KEY")
	if secret == "" {
		log.Fatal("ARISTA_SECRET_KEY must be set")
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		psqlInfo = "host=localhost port=5432 user=postgres dbname=arista sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	uploadDir := os.Getenv("ARISTA_UPLOADS_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create uploads directory: ", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	origins := os.Getenv("ARISTA_CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "http://localhost:8000,http://127.0.0.1:8000"
	}

	AppConfig = &Config{
		DB:          db,
		SecretKey:   secret,
		Env:         os.Getenv("ARISTA_ENV"),
		Port:        port,
		UploadDir:   uploadDir,
		CORSOrigins: strings.TrimSpace(origins),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetSecretKey() []byte {
	return []byte(AppConfig.SecretKey)
}

// IsProduction controls the Secure attribute on the auth cookie.
func IsProduction() bool {
	return AppConfig.Env == "production"
}
