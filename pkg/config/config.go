package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	HTTP   HTTPConfig
	Ledger LedgerConfig
	Agg    AggConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LedgerConfig selecciona el backend del Ledger Store.
type LedgerConfig struct {
	Backend string // "postgres" | "memory"
}

// AggConfig configuración del núcleo de agregación.
//
// Timezone y Locale fijan el par (tz, locale) con el que se renderizan las
// claves de bucket mensual; debe ser el mismo en producción y tests para
// que las claves no diverjan. StrictNumeric activa el rechazo de montos
// ilegibles en el ingreso (el modo permisivo legado solo aplica a lectura).
type AggConfig struct {
	Timezone      string // nombre IANA, ej. "America/Bogota"; vacío = UTC
	Locale        string // BCP-47, ej. "en", "es"
	StrictNumeric bool
}

// Location resuelve la zona horaria configurada.
func (c AggConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("zona horaria %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LocaleTag parsea el locale configurado.
func (c AggConfig) LocaleTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido,
// si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Ledger: LedgerConfig{
			Backend: strings.ToLower(v.GetString("LEDGER_BACKEND")),
		},
		Agg: AggConfig{
			Timezone:      v.GetString("AGG_TIMEZONE"),
			Locale:        v.GetString("AGG_LOCALE"),
			StrictNumeric: v.GetBool("AGG_STRICT_NUMERIC"),
		},
	}

	if cfg.Ledger.Backend != "postgres" && cfg.Ledger.Backend != "memory" {
		return nil, fmt.Errorf("LEDGER_BACKEND inválido: %q", cfg.Ledger.Backend)
	}
	// Validar temprano: una tz o locale mal escritos deben tumbar el
	// arranque, no aparecer como claves de bucket erróneas en producción.
	if _, err := cfg.Agg.Location(); err != nil {
		return nil, err
	}
	if _, err := cfg.Agg.LocaleTag(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "retail-ledger")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "retail_ledger")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("LEDGER_BACKEND", "postgres")
	v.SetDefault("AGG_TIMEZONE", "")
	v.SetDefault("AGG_LOCALE", "en")
	v.SetDefault("AGG_STRICT_NUMERIC", false)
}
