package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Загрузка конфигурации: .env (если есть) -> config.yaml -> переменные окружения, через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Cache     CacheConfig     `yaml:"cache"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	// RequestTimeout - таймаут одной команды дашборда (включая поход в CoinGecko)
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"10s"`
}

// SchedulerConfig - автообновление листинга, пока дашборд на экране.
type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled" env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"REFRESH_INTERVAL" env-default:"2m"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"` // memory|postgres
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"12s"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"PG_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"PG_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"PG_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"PG_DBNAME" env-default:"crypto"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"4"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	APIKey    string        `yaml:"api_key" env:"COINGECKO_API_KEY"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"crypto-viewer/1.0"`
	// SearchLimit - сколько id из /search запрашивать в /coins/markets
	SearchLimit int `yaml:"search_limit" env-default:"20"`
}

// DashboardConfig - начальное состояние и параметры индикаторов.
type DashboardConfig struct {
	Currency      string   `yaml:"currency" env:"DASHBOARD_CURRENCY" env-default:"brl"`
	Currencies    []string `yaml:"currencies" env-default:"brl,usd,eur,gbp,jpy"`
	Count         int      `yaml:"count" env-default:"18"`
	TimeframeDays int      `yaml:"timeframe_days" env-default:"7"`
	MAPeriod      int      `yaml:"ma_period" env-default:"20"`
	BBPeriod      int      `yaml:"bb_period" env-default:"21"`
	BBMultiplier  float64  `yaml:"bb_multiplier" env-default:"2"`
}

type TelegramConfig struct {
	Enabled         bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token           string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID          int64         `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
