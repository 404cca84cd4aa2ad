package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// When true, the email/phone existence checks ignore soft-deleted
	// users, so a departed employee's contacts can be handed to a new
	// account. Default false: deleted users keep occupying both.
	ReuseDeletedContacts bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	ttlHours := 24
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			ttlHours = h
		}
	}

	return &Config{
		DBDriver:             getEnv("DB_DRIVER", "sqlite"),
		DBSource:             getEnv("DB_SOURCE", "coffeeshop.db"),
		Port:                 getEnv("PORT", "8000"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               time.Duration(ttlHours) * time.Hour,
		ReuseDeletedContacts: getEnv("REUSE_DELETED_CONTACTS", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
