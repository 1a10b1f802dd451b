package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Calendar  CalendarConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name string
}

type HTTPConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string // text | json
}

type DatabaseConfig struct {
	DSN string // vacío => repositorio en memoria
}

type CalendarConfig struct {
	Timezone string
	Location *time.Location
}

type AuthConfig struct {
	JWTSecret  string
	IdPBaseURL string
	IdPAPIKey  string
	IdPTimeout time.Duration
}

type RateLimitConfig struct {
	MutationsPerMin int // 0 => sin límite
}

// Load lee .env (si existe), config.yaml (./config, ., /etc/personal-calendar)
// y variables de entorno, en ese orden de menor a mayor prioridad.
// Las claves anidadas se mapean a env con "_": http.port => HTTP_PORT.
func Load(searchPaths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{"./config", ".", "/etc/personal-calendar/"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Nombres heredados.
	_ = v.BindEnv("database.dsn", "DATABASE_DSN", "DB_DSN")
	_ = v.BindEnv("logger.level", "LOGGER_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("logger.format", "LOGGER_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", "APP_NAME")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Name = v.GetString("app.name")

	cfg.HTTP.Port = v.GetInt("http.port")
	cfg.HTTP.ReadTimeout = v.GetDuration("http.read_timeout")
	cfg.HTTP.WriteTimeout = v.GetDuration("http.write_timeout")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Format = v.GetString("logger.format")

	cfg.Database.DSN = strings.TrimSpace(v.GetString("database.dsn"))

	cfg.Calendar.Timezone = strings.TrimSpace(v.GetString("calendar.timezone"))
	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar.timezone %q: %w", cfg.Calendar.Timezone, err)
	}
	cfg.Calendar.Location = loc

	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.IdPBaseURL = strings.TrimSpace(v.GetString("auth.idp_base_url"))
	cfg.Auth.IdPAPIKey = v.GetString("auth.idp_api_key")
	cfg.Auth.IdPTimeout = v.GetDuration("auth.idp_timeout")

	cfg.RateLimit.MutationsPerMin = v.GetInt("rate_limit.mutations_per_min")

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("invalid http.port %d", cfg.HTTP.Port)
	}
	return cfg, nil
}

// Addr devuelve ":<port>".
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "personal-calendar")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", "5s")
	// 0 => sin límite de escritura; el stream SSE es de larga duración.
	v.SetDefault("http.write_timeout", "0s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("auth.idp_timeout", "5s")
	v.SetDefault("rate_limit.mutations_per_min", 120)
}
