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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	TikTok     TikTok     `mapstructure:",squash"`
	NewsBreak  NewsBreak  `mapstructure:",squash"`
	Google     Google     `mapstructure:",squash"`
	Live       Live       `mapstructure:",squash"`
	LiveResync LiveResync `mapstructure:",squash"`
	Webhook    Webhook    `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Meta struct {
	BaseURL               string    `mapstructure:"meta_base_url"`
	URL                   string    `mapstructure:"meta_url"`
	Version               string    `mapstructure:"meta_version"`
	AccessToken           string    `mapstructure:"meta_access_token"`
	AppID                 string    `mapstructure:"meta_app_id"`
	AppSecret             string    `mapstructure:"meta_app_secret"`
	AdAccountIDs          []string  `mapstructure:"meta_ad_account_ids"`
	ConversionActionTypes []string  `mapstructure:"meta_conversion_action_types"`
	TokenRefreshEnabled   bool      `mapstructure:"meta_token_refresh_enabled"`
	LongLivedToken        string    `mapstructure:"-"`
	TokenExpiresAt        time.Time `mapstructure:"-"`
}

type TikTok struct {
	BaseURL       string   `mapstructure:"tiktok_base_url"`
	AccessToken   string   `mapstructure:"tiktok_access_token"`
	AdvertiserIDs []string `mapstructure:"tiktok_advertiser_ids"`
}

type NewsBreak struct {
	BaseURL      string   `mapstructure:"newsbreak_base_url"`
	AccessToken  string   `mapstructure:"newsbreak_access_token"`
	AdAccountIDs []string `mapstructure:"newsbreak_ad_account_ids"`
}

type Google struct {
	BaseURL         string   `mapstructure:"google_ads_base_url"`
	DeveloperToken  string   `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string   `mapstructure:"google_ads_login_customer_id"`
	CustomerIDs     []string `mapstructure:"google_ads_customer_ids"`
	ClientID        string   `mapstructure:"google_ads_client_id"`
	ClientSecret    string   `mapstructure:"google_ads_client_secret"`
	RefreshToken    string   `mapstructure:"google_ads_refresh_token"`
	TokenURL        string   `mapstructure:"google_ads_token_url"`
}

// Live agrupa os parâmetros do motor de sincronização de campanhas ao vivo
type Live struct {
	MinBudgetCents      int64         `mapstructure:"live_min_budget_cents"`
	FetchTimeout        time.Duration `mapstructure:"live_fetch_timeout"`
	MutationTimeout     time.Duration `mapstructure:"live_mutation_timeout"`
	PlatformConcurrency int64         `mapstructure:"live_platform_concurrency"`
	HTTPRetries         uint64        `mapstructure:"live_http_retries"`
	HTTPRetryBackoff    time.Duration `mapstructure:"live_http_retry_backoff"`
	HTTPTimeout         time.Duration `mapstructure:"live_http_timeout"`
}

type LiveResync struct {
	DebounceWindow time.Duration `mapstructure:"live_resync_debounce"`
	MinInterval    time.Duration `mapstructure:"live_resync_min_interval"`
	JobTimeout     time.Duration `mapstructure:"live_resync_job_timeout"`
	CronSchedule   string        `mapstructure:"live_resync_cron"`
	CronEnabled    bool          `mapstructure:"live_resync_cron_enabled"`
}

type Webhook struct {
	Secret string `mapstructure:"webhook_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_ops?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_IDS", "")
	viper.SetDefault("META_CONVERSION_ACTION_TYPES", "purchase,offsite_conversion.fb_pixel_purchase")
	viper.SetDefault("META_TOKEN_REFRESH_ENABLED", false)

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "")
	viper.SetDefault("TIKTOK_ADVERTISER_IDS", "")

	viper.SetDefault("NEWSBREAK_BASE_URL", "https://business.newsbreak.com/business-api/v1")
	viper.SetDefault("NEWSBREAK_ACCESS_TOKEN", "")
	viper.SetDefault("NEWSBREAK_AD_ACCOUNT_IDS", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_IDS", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("LIVE_MIN_BUDGET_CENTS", 500)   // $5.00
	viper.SetDefault("LIVE_FETCH_TIMEOUT", "30s")    // Expansões e resyncs
	viper.SetDefault("LIVE_MUTATION_TIMEOUT", "45s") // Mutações continuam mesmo se o cliente desconectar
	viper.SetDefault("LIVE_PLATFORM_CONCURRENCY", 4) // Chamadas simultâneas por plataforma
	viper.SetDefault("LIVE_HTTP_RETRIES", 3)         // Apenas GETs
	viper.SetDefault("LIVE_HTTP_RETRY_BACKOFF", "500ms")
	viper.SetDefault("LIVE_HTTP_TIMEOUT", "30s")

	viper.SetDefault("LIVE_RESYNC_DEBOUNCE", "3s")
	viper.SetDefault("LIVE_RESYNC_MIN_INTERVAL", "10s")
	viper.SetDefault("LIVE_RESYNC_JOB_TIMEOUT", "2m")
	viper.SetDefault("LIVE_RESYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("LIVE_RESYNC_CRON_ENABLED", false)

	viper.SetDefault("WEBHOOK_SECRET", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode()
}

func decode() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.AdAccountIDs = compact(config.Meta.AdAccountIDs)
	config.Meta.ConversionActionTypes = compact(config.Meta.ConversionActionTypes)
	config.TikTok.AdvertiserIDs = compact(config.TikTok.AdvertiserIDs)
	config.NewsBreak.AdAccountIDs = compact(config.NewsBreak.AdAccountIDs)
	config.Google.CustomerIDs = compact(config.Google.CustomerIDs)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove entradas vazias geradas por listas separadas por vírgula
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MetaEnabled indica se há credenciais suficientes para registrar o adaptador
func (c *Config) MetaEnabled() bool {
	return c.Meta.AccessToken != "" && len(c.Meta.AdAccountIDs) > 0
}

func (c *Config) TikTokEnabled() bool {
	return c.TikTok.AccessToken != "" && len(c.TikTok.AdvertiserIDs) > 0
}

func (c *Config) NewsBreakEnabled() bool {
	return c.NewsBreak.AccessToken != "" && len(c.NewsBreak.AdAccountIDs) > 0
}

func (c *Config) GoogleEnabled() bool {
	return c.Google.DeveloperToken != "" && c.Google.RefreshToken != "" && len(c.Google.CustomerIDs) > 0
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
