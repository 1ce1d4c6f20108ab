package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	DBDriver string // sqlite (default) or postgres
	DataDir  string // directory for the sqlite file and session.json
	DBName   string

	// Postgres (only when DBDriver=postgres)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	JWTSecret  string
	ServerPort string

	// External collaborators
	GeminiAPIKey      string
	GeminiModel       string
	DriveCredentials  string // path to a service-account JSON file
	DefaultLectureURL string // fallback when a course has no media link
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		DBName:            getEnv("DB_NAME", "history_portal"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		DriveCredentials:  getEnv("DRIVE_CREDENTIALS", ""),
		DefaultLectureURL: getEnv("DEFAULT_LECTURE_URL", "https://www.youtube.com/embed/videoseries?list=history-lectures"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
