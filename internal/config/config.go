// Package config loads runtime configuration from YAML.
package config

import (
	"bytes"
	"fmt"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 4000
	defaultEnv        = "development"
	defaultUploadDir  = "./uploads"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "scts_institute"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	BaseURL        string                `yaml:"base_url"`
	UploadDir      string                `yaml:"upload_dir"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	JWT            JWTRuntimeConfig      `yaml:"jwt"`
	Mail           MailRuntimeConfig     `yaml:"mail"`
	S3             S3RuntimeConfig       `yaml:"s3"`
	AdminEmail     string                `yaml:"admin_email"`
	SiteName       string                `yaml:"site_name"`
}

type DatabaseRuntimeConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type JWTRuntimeConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
}

type MailRuntimeConfig struct {
	Enable bool   `yaml:"enable"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	From   string `yaml:"from"`
}

type S3RuntimeConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	PublicURL       string `yaml:"public_url"`
}

type rawAppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"`
	BaseURL        string                `yaml:"base_url"`
	UploadDir      string                `yaml:"upload_dir"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	DSN            string                `yaml:"dsn"`
	RedisURL       string                `yaml:"redis_url"`
	JWT            JWTRuntimeConfig      `yaml:"jwt"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Mail           MailRuntimeConfig     `yaml:"mail"`
	S3             S3RuntimeConfig       `yaml:"s3"`
	AdminEmail     string                `yaml:"admin_email"`
	SiteName       string                `yaml:"site_name"`
}

// Load reads and validates the YAML config at configPath.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	applyRaw(&cfg, raw)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Env != "development" && cfg.Env != "production" {
		return nil, fmt.Errorf("invalid env %q in %q, expected development or production", cfg.Env, path)
	}
	if cfg.BaseURL != "" {
		if u, err := neturl.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid base_url %q in %q", cfg.BaseURL, path)
		}
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:      defaultPort,
		Env:       defaultEnv,
		UploadDir: defaultUploadDir,
		SiteName:  "SCTS Institute",
		Database: DatabaseRuntimeConfig{
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
			Loc:      defaultDBLoc,
		},
	}
}

func applyRaw(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(raw.BaseURL), "/")
	if v := strings.TrimSpace(raw.UploadDir); v != "" {
		cfg.UploadDir = v
	}
	cfg.AllowedOrigins = raw.AllowedOrigins
	cfg.RedisURL = strings.TrimSpace(raw.RedisURL)
	cfg.AdminEmail = strings.TrimSpace(raw.AdminEmail)
	if v := strings.TrimSpace(raw.SiteName); v != "" {
		cfg.SiteName = v
	}

	applyDatabase(&cfg.Database, raw)
	cfg.JWT = raw.JWT
	// legacy single-secret key signs both token families
	if raw.JWTSecret != "" {
		if cfg.JWT.AccessSecret == "" {
			cfg.JWT.AccessSecret = raw.JWTSecret
		}
		if cfg.JWT.RefreshSecret == "" {
			cfg.JWT.RefreshSecret = raw.JWTSecret
		}
	}
	cfg.Mail = raw.Mail
	cfg.S3 = raw.S3
}

func applyDatabase(db *DatabaseRuntimeConfig, raw rawAppConfig) {
	in := raw.Database
	if v := strings.TrimSpace(raw.DSN); v != "" && in.DSN == "" {
		in.DSN = v
	}
	if in.DSN != "" {
		db.DSN = strings.TrimSpace(in.DSN)
	}
	if v := strings.TrimSpace(in.Host); v != "" {
		db.Host = v
	}
	if in.Port != 0 {
		db.Port = in.Port
	}
	if v := strings.TrimSpace(in.User); v != "" {
		db.User = v
	}
	if v := strings.TrimSpace(in.Password); v != "" {
		db.Password = v
	}
	if v := strings.TrimSpace(in.Name); v != "" {
		db.Name = v
	}
	if v := strings.TrimSpace(in.Charset); v != "" {
		db.Charset = v
	}
	if v := strings.TrimSpace(in.Loc); v != "" {
		db.Loc = v
	}
}

// DSNValue returns the MySQL DSN, either verbatim from config or built
// from the individual fields.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if c.DSN != "" {
		return c.DSN
	}

	params := neturl.Values{}
	params.Set("charset", c.Charset)
	params.Set("parseTime", "True")
	params.Set("loc", c.Loc)

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		c.User, c.Password,
		c.Host+":"+strconv.Itoa(c.Port),
		c.Name, params.Encode())
}

// IsProduction reports whether the app runs in production mode.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
