// Package config загрузка конфигурации клиента и сервера.
//
// Значения берутся в порядке приоритета: явно заданные флаги командной
// строки, YAML-файл, значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/casesync/internal/models"
)

// ErrInvalidConfig базовая ошибка валидации конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Client настройки клиента
type Client struct {
	ServerURL  string            `yaml:"server_url"`
	PushURL    string            `yaml:"push_url,omitempty"`
	DBPath     string            `yaml:"db_path"`
	ClientType models.ClientType `yaml:"client_type"`
	LogLevel   string            `yaml:"log_level"`
	Debounce   time.Duration     `yaml:"debounce"`
}

// Server настройки сервера
type Server struct {
	Addr         string        `yaml:"addr"`
	DBPath       string        `yaml:"db_path"`
	JWTSecret    string        `yaml:"jwt_secret"`
	SeedUser     string        `yaml:"seed_user,omitempty"`
	SeedPassword string        `yaml:"seed_password,omitempty"`
	LogLevel     string        `yaml:"log_level"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	LoginWindow  time.Duration `yaml:"login_window"`
	LoginRate    int           `yaml:"login_rate"`
}

// DefaultClient значения по умолчанию для клиента
func DefaultClient() Client {
	return Client{
		ServerURL:  "http://localhost:8080",
		DBPath:     "casesync-client.db",
		ClientType: models.ClientTypeField,
		LogLevel:   "warn",
		Debounce:   time.Second,
	}
}

// DefaultServer значения по умолчанию для сервера
func DefaultServer() Server {
	return Server{
		Addr:        ":8080",
		DBPath:      "casesync.db",
		LogLevel:    "info",
		TokenTTL:    12 * time.Hour,
		LoginRate:   5,
		LoginWindow: time.Minute,
	}
}

// LoadClient читает конфигурацию клиента из path поверх значений по умолчанию.
// Пустой path означает "только значения по умолчанию".
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadServer читает конфигурацию сервера из path поверх значений по умолчанию
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// Ключи, отсутствующие в файле, сохраняют значения по умолчанию
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Set применяет значение флага name к конфигурации клиента
func (c *Client) Set(name, value string) error {
	switch name {
	case "server":
		c.ServerURL = value
	case "push":
		c.PushURL = value
	case "db":
		c.DBPath = value
	case "client-type":
		c.ClientType = models.ClientType(value)
	case "log-level":
		c.LogLevel = value
	case "debounce":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid debounce %q: %w", value, err)
		}
		c.Debounce = d
	default:
		return fmt.Errorf("unknown client option %q", name)
	}
	return nil
}

// Set применяет значение флага name к конфигурации сервера
func (s *Server) Set(name, value string) error {
	switch name {
	case "addr":
		s.Addr = value
	case "db":
		s.DBPath = value
	case "jwt-secret":
		s.JWTSecret = value
	case "seed-user":
		s.SeedUser = value
	case "seed-password":
		s.SeedPassword = value
	case "log-level":
		s.LogLevel = value
	case "token-ttl", "login-window":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
		if name == "token-ttl" {
			s.TokenTTL = d
		} else {
			s.LoginWindow = d
		}
	case "login-rate":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid login-rate %q: %w", value, err)
		}
		s.LoginRate = n
	default:
		return fmt.Errorf("unknown server option %q", name)
	}
	return nil
}

// Validate проверяет конфигурацию клиента и выводит PushURL из ServerURL, если он не задан
func (c *Client) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server url %q must be http(s)://host", ErrInvalidConfig, c.ServerURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db path is required", ErrInvalidConfig)
	}
	switch c.ClientType {
	case models.ClientTypeField, models.ClientTypeFieldHospital:
	default:
		return fmt.Errorf("%w: unknown client type %q", ErrInvalidConfig, c.ClientType)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PushURL == "" {
		c.PushURL = PushURL(u)
	}
	return nil
}

// Validate проверяет конфигурацию сервера
func (s *Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidConfig)
	}
	if s.DBPath == "" {
		return fmt.Errorf("%w: db path is required", ErrInvalidConfig)
	}
	if len(s.JWTSecret) < 16 {
		return fmt.Errorf("%w: jwt secret must be at least 16 characters", ErrInvalidConfig)
	}
	if s.TokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalidConfig)
	}
	if s.LoginRate <= 0 || s.LoginWindow <= 0 {
		return fmt.Errorf("%w: login rate and window must be positive", ErrInvalidConfig)
	}
	if (s.SeedUser == "") != (s.SeedPassword == "") {
		return fmt.Errorf("%w: seed user and seed password must be set together", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// PushURL адрес WebSocket-канала уведомлений для сервера u
func PushURL(u *url.URL) string {
	push := *u
	if u.Scheme == "https" {
		push.Scheme = "wss"
	} else {
		push.Scheme = "ws"
	}
	push.Path = strings.TrimRight(u.Path, "/") + "/api/v1/push"
	push.RawQuery = ""
	return push.String()
}

// ParseLogLevel разбирает уровень логирования (debug, info, warn, error)
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
