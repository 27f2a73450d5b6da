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

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Redis                 Redis                 `mapstructure:",squash"`
	Commission            Commission            `mapstructure:",squash"`
	CommissionRankingSync CommissionRankingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth guarda o segredo compartilhado com o serviço de autenticação que emite os tokens
type Auth struct {
	JWTSecret string `mapstructure:"auth_jwt_secret"`
}

type Redis struct {
	Addr       string        `mapstructure:"redis_addr"`
	Password   string        `mapstructure:"redis_password"`
	DB         int           `mapstructure:"redis_db"`
	RankingTTL time.Duration `mapstructure:"redis_ranking_ttl"`
}

// Enabled indica se o cache do ranking deve usar Redis
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Commission struct {
	// Tarifas por unidade que sobrescrevem a tabela padrão, formato "Produto=valor"
	RateOverrides []string `mapstructure:"commission_rate_overrides"`
}

type CommissionRankingSync struct {
	CronSchedule      string `mapstructure:"commission_ranking_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"commission_ranking_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"commission_ranking_sync_enabled"`
}

// Location retorna o fuso horário usado para montar janelas de período
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando horário local", a.Timezone)
		return time.Local
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,https://klean-daily.vercel.app")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/klean?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_JWT_SECRET", "your_jwt_secret") // ONLY LOCAL

	viper.SetDefault("REDIS_ADDR", "") // Vazio desabilita o cache
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_RANKING_TTL", "10m")

	viper.SetDefault("COMMISSION_RATE_OVERRIDES", "")

	viper.SetDefault("COMMISSION_RANKING_SYNC_CRON", "0 5 * * *")      // Todos os dias às 5h da manhã
	viper.SetDefault("COMMISSION_RANKING_SYNC_MAX_CONCURRENT_JOBS", 4) // 4 vendedores processados em paralelo
	viper.SetDefault("COMMISSION_RANKING_SYNC_ENABLED", false)         // Habilitar ranking de comissões

	viper.SetDefault("APP_TIMEZONE", "America/Bogota")
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

	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)
	config.Commission.RateOverrides = compact(config.Commission.RateOverrides)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
