package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "HWSTORE_CONFIG_FILE"

type Config struct {
	Port    string `mapstructure:"port"`
	DBDSN   string `mapstructure:"db_dsn"`
	LogFile string `mapstructure:"log_file"`

	StoreBackend string `mapstructure:"store_backend"` // sqlite | redis
	RedisURL     string `mapstructure:"redis_url"`
	RedisPrefix  string `mapstructure:"redis_prefix"`

	EURRate float64 `mapstructure:"eur_rate"`

	CartNotifyTimeout     time.Duration `mapstructure:"cart_notify_timeout"`
	WishlistNotifyTimeout time.Duration `mapstructure:"wishlist_notify_timeout"`

	AdminToken string `mapstructure:"admin_token"`
}

func Load() Config {
	return LoadFrom(os.Args[1:])
}

// LoadFrom reads defaults, then an optional config file, then the
// environment (PORT, DB_DSN, STORE_BACKEND, ...), later sources winning.
func LoadFrom(args []string) Config {
	v := viper.New()
	v.SetDefault("port", "8081")
	v.SetDefault("db_dsn", "hwstore.db") // sqlite file in project root
	v.SetDefault("log_file", "./hwstore.log")
	v.SetDefault("store_backend", "sqlite")
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("redis_prefix", "hwstore:")
	v.SetDefault("eur_rate", 0.92)
	v.SetDefault("cart_notify_timeout", 3*time.Second)
	v.SetDefault("wishlist_notify_timeout", 3*time.Second)
	v.SetDefault("admin_token", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := configFilepath(args); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("[warn] could not read config file %s: %v", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("[warn] bad config, using defaults: %v", err)
		cfg = Config{
			Port: "8081", DBDSN: "hwstore.db", LogFile: "./hwstore.log",
			StoreBackend: "sqlite", EURRate: 0.92,
			CartNotifyTimeout: 3 * time.Second, WishlistNotifyTimeout: 3 * time.Second,
		}
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	log.Printf("[config] PORT=%s DB_DSN=%s STORE_BACKEND=%s LOG_FILE=%s EUR_RATE=%.4f",
		cfg.Port, cfg.DBDSN, cfg.StoreBackend, cfg.LogFile, cfg.EURRate)
	return cfg
}

func configFilepath(args []string) string {
	fs := pflag.NewFlagSet("hwstore", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(nopWriter{})
	path := fs.String("config", "", "config file (yaml, json or toml)")
	_ = fs.Parse(args)
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *path
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
