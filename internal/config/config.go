package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the cmd binaries. Values come from defaults,
// then the YAML file, then environment overrides, in that order.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Client  ClientConfig  `yaml:"client"`
}

type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

type StorageConfig struct {
	// Driver selects the reference server's repository: "memory" or "mysql".
	Driver   string `yaml:"driver"`
	MySQLDSN string `yaml:"mysql_dsn"`
	// RedisAddr enables the stock-counter front when non-empty.
	RedisAddr string `yaml:"redis_addr"`
}

type ClientConfig struct {
	RemoteURL string `yaml:"remote_url"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPAddr: ":3000",
			GRPCAddr: ":50051",
		},
		Storage: StorageConfig{
			Driver:   "memory",
			MySQLDSN: "root:root@tcp(localhost:3306)/shopsync?parseTime=true",
		},
		Client: ClientConfig{
			RemoteURL: "http://localhost:3000",
		},
	}
}

// Load reads path over the defaults; an empty path skips the file. Known
// environment variables win over both.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Storage.Driver != "memory" && cfg.Storage.Driver != "mysql" {
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHOPSYNC_HTTP_ADDR"); v != "" {
		cfg.Server.HTTPAddr = v
	}
	if v := os.Getenv("SHOPSYNC_GRPC_ADDR"); v != "" {
		cfg.Server.GRPCAddr = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.Storage.MySQLDSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("REMOTE_URL"); v != "" {
		cfg.Client.RemoteURL = v
	}
}
