package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Import      Import      `mapstructure:",squash"`
	SummarySync SummarySync `mapstructure:",squash"`
	Mail        Mail        `mapstructure:",squash"`
	Terms       Terms       `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Redis é opcional: sem endereço a consulta geral não é cacheada
type Redis struct {
	Addr            string        `mapstructure:"redis_addr"`
	Password        string        `mapstructure:"redis_password"`
	DB              int           `mapstructure:"redis_db"`
	ConsultationTTL time.Duration `mapstructure:"consultation_cache_ttl"`
}

type Import struct {
	MaxRows int `mapstructure:"import_max_rows"`
}

type SummarySync struct {
	CronSchedule string `mapstructure:"summary_sync_cron"`
	Enabled      bool   `mapstructure:"summary_sync_enabled"`
}

// Mail é opcional: sem chave do SendGrid os códigos só vão para o log
type Mail struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	From           string `mapstructure:"mail_from"`
	FromName       string `mapstructure:"mail_from_name"`
}

type Terms struct {
	Version string        `mapstructure:"terms_version"`
	File    string        `mapstructure:"terms_file"`
	CodeTTL time.Duration `mapstructure:"verification_code_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencers?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CONSULTATION_CACHE_TTL", "5m")

	viper.SetDefault("IMPORT_MAX_ROWS", 5000) // 0 desativa o limite

	viper.SetDefault("SUMMARY_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "parceria@localhost")
	viper.SetDefault("MAIL_FROM_NAME", "Programa de Parceria")

	viper.SetDefault("TERMS_VERSION", "parceria-v1")
	viper.SetDefault("TERMS_FILE", "")
	viper.SetDefault("VERIFICATION_CODE_TTL", "5m")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	if config.Database.Driver != DriverPostgres && config.Database.Driver != DriverMemory {
		return nil, fmt.Errorf("DATABASE_DRIVER inválido: %q (use %s ou %s)", config.Database.Driver, DriverPostgres, DriverMemory)
	}

	if config.Import.MaxRows < 0 {
		config.Import.MaxRows = 0
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		DriverPostgres,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
