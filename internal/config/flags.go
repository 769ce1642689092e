package config

import (
	"flag"
	"slices"

	"github.com/spf13/pflag"
)

var (
	clientOptions = []string{"server", "push", "db", "client-type", "log-level", "debounce"}
	serverOptions = []string{"addr", "db", "jwt-secret", "seed-user", "seed-password",
		"log-level", "token-ttl", "login-rate", "login-window"}
)

// RegisterClientFlags регистрирует флаги клиента. Значения по умолчанию
// показываются в справке, но применяются только явно заданные флаги.
func RegisterClientFlags(fs *pflag.FlagSet) {
	d := DefaultClient()
	fs.String("server", d.ServerURL, "Server URL")
	fs.String("push", "", "Push notifications URL (default: derived from --server)")
	fs.String("db", d.DBPath, "Path to local database")
	fs.String("client-type", string(d.ClientType), "Client type (CLIENT_FIELD, CLIENT_FIELD_HOSPITAL)")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Duration("debounce", d.Debounce, "Delay before pushing local changes")
}

// ApplyFlags переносит явно заданные флаги в конфигурацию
func (c *Client) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || !slices.Contains(clientOptions, f.Name) {
			return
		}
		err = c.Set(f.Name, f.Value.String())
	})
	return err
}

// RegisterServerFlags регистрирует флаги сервера
func RegisterServerFlags(fs *flag.FlagSet) {
	d := DefaultServer()
	fs.String("addr", d.Addr, "Listen address")
	fs.String("db", d.DBPath, "Path to sqlite database")
	fs.String("jwt-secret", "", "Secret for signing access tokens")
	fs.String("seed-user", "", "Username created on startup")
	fs.String("seed-password", "", "Password of the seed user")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Duration("token-ttl", d.TokenTTL, "Access token lifetime")
	fs.Int("login-rate", d.LoginRate, "Login attempts allowed per window and client")
	fs.Duration("login-window", d.LoginWindow, "Login rate limit window")
}

// ApplyFlags переносит явно заданные флаги в конфигурацию
func (s *Server) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || !slices.Contains(serverOptions, f.Name) {
			return
		}
		err = s.Set(f.Name, f.Value.String())
	})
	return err
}
