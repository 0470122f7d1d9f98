package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne toda la configuración del servidor, tomada del entorno.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSOrigins string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

// LoadConfig carga la configuración desde variables de entorno. Un archivo
// .env es opcional; si existe, se carga primero.
func LoadConfig() (*Config, error) {
	// .env opcional: en despliegue las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: envOrDefault("PORT", "8080"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "hotel_db"),
		DBSSLMode:  envOrDefault("DB_SSLMODE", "disable"),

		CORSOrigins: envOrDefault("CORS_ORIGINS", "http://localhost:3000"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      envOrDefault("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  envOrDefault("SMTP_FROM_NAME", "Hotel Management"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("la variable DB_PASSWORD es requerida")
	}

	return cfg, nil
}

// GetDBConnString arma la cadena de conexión de Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// EmailConfigurado indica si hay suficiente configuración SMTP para enviar
// correos de confirmación.
func (c *Config) EmailConfigurado() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
