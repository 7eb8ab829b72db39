package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App APPConfig
	API APIConfig
	Log LogConfig
}

// APPConfig configuración general de la aplicación.
type APPConfig struct {
	Env       string // development, production
	Name      string
	TokenPath string // archivo donde se persiste el token portador
	Locale    string // etiqueta BCP 47 para ordenación ("it", "es", ...)
}

// APIConfig apunta al colaborador REST remoto.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int // timeout del transporte; no hay reintentos automáticos
}

// Timeout devuelve el timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad. Nombres
// esperados: APP_ENV, API_BASE_URL, API_TIMEOUT_SECONDS, TOKEN_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: APPConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "wolf"),
			TokenPath: getString(v, "TOKEN_PATH", defaultTokenPath()),
			Locale:    getString(v, "APP_LOCALE", "it"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://127.0.0.1:8000"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	return cfg, nil
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wolf-token"
	}
	return filepath.Join(home, ".wolf", "token")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
