package config

import (
	"errors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"io/fs"
	"os"
	"strings"
)

const defaultConfigPath = "./configs/config.yml"

type Config struct {
	DB           PostgresConfig `mapstructure:"db"`
	ServerConfig ServerConfig   `mapstructure:"server"`
	Log          LogConfig      `mapstructure:"log"`
	Seed         SeedConfig     `mapstructure:"seed"`
}

type PostgresConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Name       string `mapstructure:"name"`
	Password   string `mapstructure:"password"`
	SSL        string `mapstructure:"sslmode"`
	Migrations string `mapstructure:"migrations"`
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"ginmode"`
	Pprof   bool   `mapstructure:"pprof"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SeedConfig struct {
	Users int `mapstructure:"users"`
}

var GlobalConfig Config

// Init reads .env (if any), the YAML config file and DB_*/SERVER_* style
// environment overrides into c.
func (c *Config) Init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("can't load .env: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	if err := Load(path, c); err != nil {
		log.Fatalf("can't read config: %+v", err)
	}
}

// Load decodes the config file at path into c, applying defaults and
// environment overrides.
func Load(path string, c *Config) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.migrations", "./migrations")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("seed.users", 3)
}
